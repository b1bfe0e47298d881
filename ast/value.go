package ast

import (
	"encoding/hex"
	"hash/fnv"
	"strconv"
	"time"

	"github.com/Konsultn-Engineering/sqlgen/utils"
)

// Null renders as the SQL NULL literal, or a null bind parameter in bound
// mode. Omitting a column entirely is a statement-level decision and never
// expressed through this node.
type Null struct{}

func (n *Null) Type() NodeType         { return NodeNull }
func (n *Null) Accept(v Visitor) error { return v.VisitNull(n) }
func (n *Null) Fingerprint() uint64    { return utils.FingerprintString("null") }

type Bool struct {
	V bool
}

func (b *Bool) Type() NodeType         { return NodeBool }
func (b *Bool) Accept(v Visitor) error { return v.VisitBool(b) }
func (b *Bool) Fingerprint() uint64 {
	return utils.FingerprintString("bool:" + strconv.FormatBool(b.V))
}

// Number keeps both the original Go value (handed to the driver in bound
// mode) and its canonical text (emitted inline).
type Number struct {
	Val  any
	Text string
}

func (n *Number) Type() NodeType         { return NodeNumber }
func (n *Number) Accept(v Visitor) error { return v.VisitNumber(n) }
func (n *Number) Fingerprint() uint64    { return utils.FingerprintString("num:" + n.Text) }

type Str struct {
	V string
}

func (s *Str) Type() NodeType         { return NodeStr }
func (s *Str) Accept(v Visitor) error { return v.VisitStr(s) }
func (s *Str) Fingerprint() uint64    { return utils.FingerprintString("str:" + s.V) }

type Bytes struct {
	V []byte
}

func (b *Bytes) Type() NodeType         { return NodeBytes }
func (b *Bytes) Accept(v Visitor) error { return v.VisitBytes(b) }
func (b *Bytes) Fingerprint() uint64 {
	return utils.FingerprintString("bytes:" + hex.EncodeToString(b.V))
}

type Time struct {
	V time.Time
}

func (t *Time) Type() NodeType         { return NodeTime }
func (t *Time) Accept(v Visitor) error { return v.VisitTime(t) }
func (t *Time) Fingerprint() uint64 {
	return utils.FingerprintString("time:" + strconv.FormatInt(t.V.UnixNano(), 10))
}

// Array renders inline only, as ARRAY[...] with an optional element-type cast
// suffix. A containment operator forces a cast when none is pinned.
type Array struct {
	Elems []Node
	Cast  string
}

func (a *Array) Type() NodeType         { return NodeArray }
func (a *Array) Accept(v Visitor) error { return v.VisitArray(a) }
func (a *Array) Fingerprint() uint64 {
	h := fnv.New64a()
	h.Write([]byte("array:" + a.Cast))
	for _, e := range a.Elems {
		h.Write(utils.U64ToBytes(e.Fingerprint()))
	}
	return h.Sum64()
}

type Column struct {
	Table string
	Name  string
}

func (c *Column) Type() NodeType         { return NodeColumn }
func (c *Column) Accept(v Visitor) error { return v.VisitColumn(c) }
func (c *Column) Fingerprint() uint64 {
	return utils.FingerprintString("col:" + c.Table + "." + c.Name)
}

type Function struct {
	Name string
	Args []Node
}

func (f *Function) Type() NodeType         { return NodeFunction }
func (f *Function) Accept(v Visitor) error { return v.VisitFunction(f) }
func (f *Function) Fingerprint() uint64 {
	h := fnv.New64a()
	h.Write([]byte("func:" + f.Name))
	for _, arg := range f.Args {
		h.Write(utils.U64ToBytes(arg.Fingerprint()))
	}
	return h.Sum64()
}

// Raw is a caller-supplied SQL fragment emitted verbatim, never escaped or
// bound. Callers must not place user-controlled input in it.
type Raw struct {
	SQL string
}

func (r *Raw) Type() NodeType         { return NodeRaw }
func (r *Raw) Accept(v Visitor) error { return v.VisitRaw(r) }
func (r *Raw) Fingerprint() uint64    { return utils.FingerprintString("raw:" + r.SQL) }

package ast

import (
	"hash/fnv"

	"github.com/Konsultn-Engineering/sqlgen/utils"
)

type Field struct {
	Column string
	Value  Node
}

// Record is an ordered column->value mapping. Iteration order is first
// appearance, which is what makes "mapping order" deterministic for field
// records and flat WHERE descriptors. Setting an existing column replaces its
// value in place.
type Record struct {
	fields []Field
	index  map[string]int
}

func NewRecord() *Record {
	return &Record{index: make(map[string]int, 8)}
}

// Set stores a Go value for column, coerced through NewValue.
func (r *Record) Set(column string, value any) *Record {
	return r.SetExpr(column, NewValue(value))
}

// SetExpr stores an already-built expression for column, e.g. a Function or
// Raw fragment.
func (r *Record) SetExpr(column string, value Node) *Record {
	if i, ok := r.index[column]; ok {
		r.fields[i].Value = value
		return r
	}
	r.index[column] = len(r.fields)
	r.fields = append(r.fields, Field{Column: column, Value: value})
	return r
}

func (r *Record) Get(column string) (Node, bool) {
	if i, ok := r.index[column]; ok {
		return r.fields[i].Value, true
	}
	return nil, false
}

func (r *Record) Fields() []Field { return r.fields }

func (r *Record) Len() int { return len(r.fields) }

func (r *Record) Columns() []string {
	cols := make([]string, len(r.fields))
	for i, f := range r.fields {
		cols[i] = f.Column
	}
	return cols
}

func (r *Record) Fingerprint() uint64 {
	h := fnv.New64a()
	h.Write([]byte("record:"))
	for _, f := range r.fields {
		h.Write([]byte(f.Column))
		h.Write(utils.U64ToBytes(f.Value.Fingerprint()))
	}
	return h.Sum64()
}

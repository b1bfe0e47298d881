package ast

import (
	"hash/fnv"

	"github.com/Konsultn-Engineering/sqlgen/utils"
)

type BinaryExpr struct {
	Left     Node
	Operator string
	Right    Node
}

func (b *BinaryExpr) Type() NodeType         { return NodeBinaryExpr }
func (b *BinaryExpr) Accept(v Visitor) error { return v.VisitBinaryExpr(b) }
func (b *BinaryExpr) Fingerprint() uint64 {
	h := fnv.New64a()
	h.Write([]byte("bin:" + b.Operator))
	if b.Left != nil {
		h.Write(utils.U64ToBytes(b.Left.Fingerprint()))
	}
	if b.Right != nil {
		h.Write(utils.U64ToBytes(b.Right.Fingerprint()))
	}
	return h.Sum64()
}

type Grouped struct {
	Expr Node
}

func (g *Grouped) Type() NodeType         { return NodeGrouped }
func (g *Grouped) Accept(v Visitor) error { return v.VisitGrouped(g) }
func (g *Grouped) Fingerprint() uint64 {
	if g.Expr == nil {
		return 0
	}
	h := fnv.New64a()
	h.Write([]byte("grp:"))
	h.Write(utils.U64ToBytes(g.Expr.Fingerprint()))
	return h.Sum64()
}

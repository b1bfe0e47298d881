package ast

import (
	"hash/fnv"

	"github.com/Konsultn-Engineering/sqlgen/utils"
)

// OrderItem is one ORDER BY entry. Dir is emitted verbatim after the
// expression when non-empty; no case normalization is applied.
type OrderItem struct {
	Expr Node
	Dir  string
}

type OrderByClause struct {
	Items []OrderItem
}

func (o *OrderByClause) Type() NodeType         { return NodeOrderBy }
func (o *OrderByClause) Accept(v Visitor) error { return v.VisitOrderBy(o) }
func (o *OrderByClause) Fingerprint() uint64 {
	h := fnv.New64a()
	h.Write([]byte("order:"))
	for _, it := range o.Items {
		h.Write(utils.U64ToBytes(it.Expr.Fingerprint()))
		h.Write([]byte(it.Dir))
	}
	return h.Sum64()
}

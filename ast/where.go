package ast

import (
	"hash/fnv"

	"github.com/Konsultn-Engineering/sqlgen/utils"
)

// WhereClause is the predicate tree root: an AND-combined list of comparison
// leaves, Raw fragments, or grouped sub-expressions. No parentheses are added
// beyond what a Grouped node carries.
type WhereClause struct {
	Conds []Node
}

func (w *WhereClause) Type() NodeType         { return NodeWhere }
func (w *WhereClause) Accept(v Visitor) error { return v.VisitWhereClause(w) }
func (w *WhereClause) Fingerprint() uint64 {
	h := fnv.New64a()
	h.Write([]byte("where:"))
	for _, c := range w.Conds {
		h.Write(utils.U64ToBytes(c.Fingerprint()))
	}
	return h.Sum64()
}

func (w *WhereClause) Empty() bool {
	return w == nil || len(w.Conds) == 0
}

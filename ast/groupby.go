package ast

import (
	"hash/fnv"

	"github.com/Konsultn-Engineering/sqlgen/utils"
)

// GroupByClause keeps grouping keys in input order, comma-joined without
// deduplication. Entries are column references or raw fragments.
type GroupByClause struct {
	Exprs []Node
}

func (g *GroupByClause) Type() NodeType         { return NodeGroupBy }
func (g *GroupByClause) Accept(v Visitor) error { return v.VisitGroupBy(g) }
func (g *GroupByClause) Fingerprint() uint64 {
	h := fnv.New64a()
	h.Write([]byte("groupby:"))
	for _, e := range g.Exprs {
		h.Write(utils.U64ToBytes(e.Fingerprint()))
	}
	return h.Sum64()
}

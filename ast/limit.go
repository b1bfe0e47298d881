package ast

import (
	"hash/fnv"
	"strconv"
)

type LimitClause struct {
	Count  int
	Offset *int
}

func (l *LimitClause) Type() NodeType         { return NodeLimit }
func (l *LimitClause) Accept(v Visitor) error { return v.VisitLimit(l) }
func (l *LimitClause) Fingerprint() uint64 {
	h := fnv.New64a()
	h.Write([]byte("limit:" + strconv.Itoa(l.Count)))
	if l.Offset != nil {
		h.Write([]byte("offset:" + strconv.Itoa(*l.Offset)))
	}
	return h.Sum64()
}

package ast

import (
	"hash/fnv"

	"github.com/Konsultn-Engineering/sqlgen/utils"
)

type SelectStmt struct {
	From    Table
	Columns []Node
	Where   *WhereClause
	GroupBy *GroupByClause
	OrderBy *OrderByClause
	Limit   *LimitClause
}

func (s *SelectStmt) Type() NodeType         { return NodeSelect }
func (s *SelectStmt) Accept(v Visitor) error { return v.VisitSelect(s) }
func (s *SelectStmt) Fingerprint() uint64 {
	h := fnv.New64a()
	h.Write([]byte("select:"))
	h.Write(utils.U64ToBytes(s.From.Fingerprint()))
	for _, c := range s.Columns {
		h.Write(utils.U64ToBytes(c.Fingerprint()))
	}
	if s.Where != nil {
		h.Write(utils.U64ToBytes(s.Where.Fingerprint()))
	}
	if s.GroupBy != nil {
		h.Write(utils.U64ToBytes(s.GroupBy.Fingerprint()))
	}
	if s.OrderBy != nil {
		h.Write(utils.U64ToBytes(s.OrderBy.Fingerprint()))
	}
	if s.Limit != nil {
		h.Write(utils.U64ToBytes(s.Limit.Fingerprint()))
	}
	return h.Sum64()
}

type InsertStmt struct {
	Table            Table
	Row              *Record
	OmitNull         bool
	IgnoreDuplicates bool
	Returning        []string
}

func (i *InsertStmt) Type() NodeType         { return NodeInsert }
func (i *InsertStmt) Accept(v Visitor) error { return v.VisitInsert(i) }
func (i *InsertStmt) Fingerprint() uint64 {
	h := fnv.New64a()
	h.Write([]byte("insert:"))
	h.Write(utils.U64ToBytes(i.Table.Fingerprint()))
	if i.Row != nil {
		h.Write(utils.U64ToBytes(i.Row.Fingerprint()))
	}
	return h.Sum64()
}

type BulkInsertStmt struct {
	Table             Table
	Rows              []*Record
	IgnoreDuplicates  bool
	UpsertKeys        []string
	UpdateOnDuplicate []string
	Returning         []string
}

func (b *BulkInsertStmt) Type() NodeType         { return NodeBulkInsert }
func (b *BulkInsertStmt) Accept(v Visitor) error { return v.VisitBulkInsert(b) }
func (b *BulkInsertStmt) Fingerprint() uint64 {
	h := fnv.New64a()
	h.Write([]byte("bulkinsert:"))
	h.Write(utils.U64ToBytes(b.Table.Fingerprint()))
	for _, r := range b.Rows {
		h.Write(utils.U64ToBytes(r.Fingerprint()))
	}
	return h.Sum64()
}

type UpdateStmt struct {
	Table     Table
	Set       *Record
	Where     *WhereClause
	OmitNull  bool
	Returning []string
}

func (u *UpdateStmt) Type() NodeType         { return NodeUpdate }
func (u *UpdateStmt) Accept(v Visitor) error { return v.VisitUpdate(u) }
func (u *UpdateStmt) Fingerprint() uint64 {
	h := fnv.New64a()
	h.Write([]byte("update:"))
	h.Write(utils.U64ToBytes(u.Table.Fingerprint()))
	if u.Set != nil {
		h.Write(utils.U64ToBytes(u.Set.Fingerprint()))
	}
	if u.Where != nil {
		h.Write(utils.U64ToBytes(u.Where.Fingerprint()))
	}
	return h.Sum64()
}

type DeleteStmt struct {
	Table     Table
	Where     *WhereClause
	Returning []string
}

func (d *DeleteStmt) Type() NodeType         { return NodeDelete }
func (d *DeleteStmt) Accept(v Visitor) error { return v.VisitDelete(d) }
func (d *DeleteStmt) Fingerprint() uint64 {
	h := fnv.New64a()
	h.Write([]byte("delete:"))
	h.Write(utils.U64ToBytes(d.Table.Fingerprint()))
	if d.Where != nil {
		h.Write(utils.U64ToBytes(d.Where.Fingerprint()))
	}
	return h.Sum64()
}

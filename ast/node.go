package ast

type NodeType int

const (
	NodeNull NodeType = iota
	NodeBool
	NodeNumber
	NodeStr
	NodeBytes
	NodeTime
	NodeArray
	NodeColumn
	NodeFunction
	NodeRaw
	NodeBinaryExpr
	NodeGrouped
	NodeWhere
	NodeOrderBy
	NodeGroupBy
	NodeLimit
	NodeTable
	NodeSelect
	NodeInsert
	NodeBulkInsert
	NodeUpdate
	NodeDelete
)

type Node interface {
	Type() NodeType
	Accept(v Visitor) error
	Fingerprint() uint64
}

// Visitor is implemented by renderers. The node set is closed: adding a node
// kind means adding a method here, so every renderer matches exhaustively
// instead of sniffing runtime types.
type Visitor interface {
	VisitNull(*Null) error
	VisitBool(*Bool) error
	VisitNumber(*Number) error
	VisitStr(*Str) error
	VisitBytes(*Bytes) error
	VisitTime(*Time) error
	VisitArray(*Array) error
	VisitColumn(*Column) error
	VisitFunction(*Function) error
	VisitRaw(*Raw) error
	VisitBinaryExpr(*BinaryExpr) error
	VisitGrouped(*Grouped) error

	VisitWhereClause(*WhereClause) error
	VisitOrderBy(*OrderByClause) error
	VisitGroupBy(*GroupByClause) error
	VisitLimit(*LimitClause) error
	VisitTable(*Table) error

	VisitSelect(*SelectStmt) error
	VisitInsert(*InsertStmt) error
	VisitBulkInsert(*BulkInsertStmt) error
	VisitUpdate(*UpdateStmt) error
	VisitDelete(*DeleteStmt) error
}

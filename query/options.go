package query

import "github.com/Konsultn-Engineering/sqlgen/ast"

// Options is the transient per-call descriptor for statement generation.
// A zero Options is valid for every operation.
type Options struct {
	// Attributes is the SELECT column list; empty means *.
	Attributes []string

	// Where is the predicate tree. Build it with ast.Where/ast.Cond, or from
	// a flat ordered mapping with ast.WhereRecord.
	Where *ast.WhereClause

	// Order lists ORDER BY terms in input order.
	Order []Order

	// Group lists GROUP BY keys in input order: column names or raw
	// fragments (GroupCols / GroupRaw).
	Group []ast.Node

	// Returning adds a RETURNING clause; "*" entries render unquoted.
	Returning []string

	// IgnoreDuplicates appends ON CONFLICT DO NOTHING.
	IgnoreDuplicates bool

	// UpdateOnDuplicate with UpsertKeys turns a bulk insert into an upsert:
	// ON CONFLICT (keys) DO UPDATE SET col=EXCLUDED.col, ...
	UpdateOnDuplicate []string
	UpsertKeys        []string

	// OmitNull drops explicit-null and absent fields from single-row INSERT
	// and UPDATE column lists. Bulk insert never honors it.
	OmitNull bool

	// Alias aliases the table in SELECT and qualifies bare ORDER BY columns.
	Alias string

	Limit  *int
	Offset *int
}

// Order is one ORDER BY term.
type Order struct {
	expr string
	dir  string
	raw  bool
}

// OrderCol orders by a column. A dotted name ("table.column") is qualified
// per segment and never re-qualified by the alias context.
func OrderCol(column string) Order {
	return Order{expr: column}
}

// OrderDir orders by a column with an explicit direction token, emitted
// exactly as given.
func OrderDir(column, direction string) Order {
	return Order{expr: column, dir: direction}
}

// OrderRaw passes a pre-formed entry (e.g. "id DESC") through untouched.
func OrderRaw(fragment string) Order {
	return Order{expr: fragment, raw: true}
}

// GroupCols builds GROUP BY entries from column names. A single name is one
// grouping key, never decomposed.
func GroupCols(columns ...string) []ast.Node {
	nodes := make([]ast.Node, len(columns))
	for i, c := range columns {
		nodes[i] = ast.Col(c)
	}
	return nodes
}

// GroupRaw builds a GROUP BY entry from a raw fragment such as a function
// call.
func GroupRaw(fragment string) ast.Node {
	return ast.RawSQL(fragment)
}

package query

import "github.com/Konsultn-Engineering/sqlgen/ast"

// BulkInsertQuery renders a multi-row INSERT with every value inlined, so the
// output is text only. The column set is the union of row keys ordered by
// first appearance; rows missing a column render NULL. OmitNull is never
// honored here, deliberately asymmetric with single-row insert.
func (g *Generator) BulkInsertQuery(table ast.Table, rows []*ast.Record, opts Options) (string, error) {
	stmt := &ast.BulkInsertStmt{
		Table:             table,
		Rows:              rows,
		IgnoreDuplicates:  opts.IgnoreDuplicates,
		UpsertKeys:        opts.UpsertKeys,
		UpdateOnDuplicate: opts.UpdateOnDuplicate,
		Returning:         opts.Returning,
	}

	v := g.newVisitor()
	defer v.Release()
	sql, _, err := v.Build(stmt)
	return sql, err
}

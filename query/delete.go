package query

import "github.com/Konsultn-Engineering/sqlgen/ast"

// DeleteQuery renders a DELETE with bound WHERE values.
func (g *Generator) DeleteQuery(table ast.Table, where *ast.WhereClause, opts Options) (string, []any, error) {
	stmt := &ast.DeleteStmt{
		Table:     table,
		Where:     where,
		Returning: opts.Returning,
	}

	v := g.newVisitor()
	defer v.Release()
	return v.Build(stmt)
}

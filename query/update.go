package query

import "github.com/Konsultn-Engineering/sqlgen/ast"

// UpdateQuery renders an UPDATE. SET values are bound except raw fragments;
// WHERE placeholders continue the same numbering the SET clause started, one
// counter per statement. OmitNull mirrors single-row insert.
func (g *Generator) UpdateQuery(table ast.Table, set *ast.Record, where *ast.WhereClause, opts Options) (string, []any, error) {
	stmt := &ast.UpdateStmt{
		Table:     table,
		Set:       set,
		Where:     where,
		OmitNull:  opts.OmitNull,
		Returning: opts.Returning,
	}

	v := g.newVisitor()
	defer v.Release()
	return v.Build(stmt)
}

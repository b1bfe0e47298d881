package query

import "github.com/Konsultn-Engineering/sqlgen/ast"

// InsertQuery renders a single-row INSERT. Plain values are bound, raw
// fragments are inlined, and an empty record becomes DEFAULT VALUES. The
// returned slice is the positional bind mapping.
func (g *Generator) InsertQuery(table ast.Table, row *ast.Record, opts Options) (string, []any, error) {
	stmt := &ast.InsertStmt{
		Table:            table,
		Row:              row,
		OmitNull:         opts.OmitNull,
		IgnoreDuplicates: opts.IgnoreDuplicates,
		Returning:        opts.Returning,
	}

	v := g.newVisitor()
	defer v.Release()
	return v.Build(stmt)
}

package query

import (
	"strings"

	"github.com/Konsultn-Engineering/sqlgen/ast"
)

// SelectQuery renders a SELECT statement. All values encode inline, so the
// output is text only.
func (g *Generator) SelectQuery(table ast.Table, opts Options) (string, error) {
	if opts.Alias != "" {
		table.Alias = opts.Alias
	}

	stmt := &ast.SelectStmt{
		From:    table,
		Columns: attributeNodes(opts.Attributes),
		Where:   opts.Where,
		GroupBy: buildGroup(opts.Group),
		OrderBy: buildOrder(opts.Order, opts.Alias),
		Limit:   buildLimit(opts.Limit, opts.Offset),
	}

	v := g.newVisitor()
	defer v.Release()
	sql, _, err := v.Build(stmt)
	return sql, err
}

func attributeNodes(attrs []string) []ast.Node {
	if len(attrs) == 0 {
		return nil
	}
	nodes := make([]ast.Node, len(attrs))
	for i, a := range attrs {
		nodes[i] = ast.Col(a)
	}
	return nodes
}

func buildGroup(exprs []ast.Node) *ast.GroupByClause {
	if len(exprs) == 0 {
		return nil
	}
	return &ast.GroupByClause{Exprs: exprs}
}

func buildOrder(terms []Order, alias string) *ast.OrderByClause {
	if len(terms) == 0 {
		return nil
	}
	clause := &ast.OrderByClause{Items: make([]ast.OrderItem, 0, len(terms))}
	for _, t := range terms {
		item := ast.OrderItem{Dir: t.dir}
		switch {
		case t.raw:
			item.Expr = ast.RawSQL(t.expr)
		case strings.ContainsRune(t.expr, '.'):
			// Already qualified; never re-qualified by the alias context.
			item.Expr = ast.Col(t.expr)
		case alias != "":
			item.Expr = &ast.Column{Table: alias, Name: t.expr}
		default:
			item.Expr = &ast.Column{Name: t.expr}
		}
		clause.Items = append(clause.Items, item)
	}
	return clause
}

func buildLimit(limit, offset *int) *ast.LimitClause {
	if limit == nil {
		return nil
	}
	return &ast.LimitClause{Count: *limit, Offset: offset}
}

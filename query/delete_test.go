package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Konsultn-Engineering/sqlgen/ast"
)

func TestDeleteWithWhere(t *testing.T) {
	g := newTestGenerator()
	where := ast.Where(ast.Eq("name", "foo"), ast.Cond("age", "lt", 18))
	sql, binds, err := g.DeleteQuery(ast.NewTable("users"), where, Options{})
	require.NoError(t, err)
	assert.Equal(t, `DELETE FROM "users" WHERE "name" = $1 AND "age" < $2;`, sql)
	assert.Equal(t, []any{"foo", 18}, binds)
}

func TestDeleteWithoutWhere(t *testing.T) {
	g := newTestGenerator()
	sql, binds, err := g.DeleteQuery(ast.NewTable("users"), nil, Options{})
	require.NoError(t, err)
	assert.Equal(t, `DELETE FROM "users";`, sql)
	assert.Empty(t, binds)
}

func TestDeleteReturning(t *testing.T) {
	g := newTestGenerator()
	where := ast.Where(ast.Eq("id", 7))
	sql, binds, err := g.DeleteQuery(ast.NewTable("users"), where, Options{Returning: []string{"id"}})
	require.NoError(t, err)
	assert.Equal(t, `DELETE FROM "users" WHERE "id" = $1 RETURNING "id";`, sql)
	assert.Equal(t, []any{7}, binds)
}

func TestDeleteGroupedPredicate(t *testing.T) {
	g := newTestGenerator()
	where := ast.Where(ast.Or(ast.Eq("a", 1), ast.Eq("b", 2)))
	sql, binds, err := g.DeleteQuery(ast.NewTable("t"), where, Options{})
	require.NoError(t, err)
	assert.Equal(t, `DELETE FROM "t" WHERE ("a" = $1 OR "b" = $2);`, sql)
	assert.Equal(t, []any{1, 2}, binds)
}

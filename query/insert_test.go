package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Konsultn-Engineering/sqlgen/ast"
)

func TestInsertSingleBoundValue(t *testing.T) {
	g := newTestGenerator()
	row := ast.NewRecord().Set("name", "foo")
	sql, binds, err := g.InsertQuery(ast.NewTable("myTable"), row, Options{})
	require.NoError(t, err)
	assert.Equal(t, `INSERT INTO "myTable" ("name") VALUES ($1);`, sql)
	assert.Equal(t, []any{"foo"}, binds)
}

func TestInsertMultipleColumnsKeepMappingOrder(t *testing.T) {
	g := newTestGenerator()
	row := ast.NewRecord().Set("b", 2).Set("a", "x").Set("c", nil)
	sql, binds, err := g.InsertQuery(ast.NewTable("t"), row, Options{})
	require.NoError(t, err)
	assert.Equal(t, `INSERT INTO "t" ("b","a","c") VALUES ($1,$2,$3);`, sql)
	assert.Equal(t, []any{2, "x", nil}, binds)
}

func TestInsertEmptyRecordDefaultValues(t *testing.T) {
	g := newTestGenerator()
	sql, binds, err := g.InsertQuery(ast.NewTable("t"), ast.NewRecord(), Options{})
	require.NoError(t, err)
	assert.Equal(t, `INSERT INTO "t" DEFAULT VALUES;`, sql)
	assert.Empty(t, binds)
}

func TestInsertOmitNullDropsNullFields(t *testing.T) {
	g := newTestGenerator()
	row := ast.NewRecord().Set("name", "foo").Set("deleted_at", nil)
	sql, binds, err := g.InsertQuery(ast.NewTable("t"), row, Options{OmitNull: true})
	require.NoError(t, err)
	assert.Equal(t, `INSERT INTO "t" ("name") VALUES ($1);`, sql)
	assert.Equal(t, []any{"foo"}, binds)
}

func TestInsertOmitNullAllNullBecomesDefaultValues(t *testing.T) {
	g := newTestGenerator()
	row := ast.NewRecord().Set("a", nil).Set("b", nil)
	sql, binds, err := g.InsertQuery(ast.NewTable("t"), row, Options{OmitNull: true})
	require.NoError(t, err)
	assert.Equal(t, `INSERT INTO "t" DEFAULT VALUES;`, sql)
	assert.Empty(t, binds)
}

func TestInsertRawValueOccupiesColumnSlot(t *testing.T) {
	g := newTestGenerator()
	row := ast.NewRecord().
		Set("name", "foo").
		SetExpr("created_at", ast.RawSQL("now()"))
	sql, binds, err := g.InsertQuery(ast.NewTable("t"), row, Options{})
	require.NoError(t, err)
	assert.Equal(t, `INSERT INTO "t" ("name","created_at") VALUES ($1,now());`, sql)
	assert.Equal(t, []any{"foo"}, binds)
}

func TestInsertFunctionValueInlines(t *testing.T) {
	g := newTestGenerator()
	row := ast.NewRecord().SetExpr("slug", ast.Fn("lower", ast.NewValue("ABC")))
	sql, binds, err := g.InsertQuery(ast.NewTable("t"), row, Options{})
	require.NoError(t, err)
	assert.Equal(t, `INSERT INTO "t" ("slug") VALUES (lower('ABC'));`, sql)
	assert.Empty(t, binds)
}

func TestInsertIgnoreDuplicates(t *testing.T) {
	g := newTestGenerator()
	row := ast.NewRecord().Set("name", "foo")
	sql, _, err := g.InsertQuery(ast.NewTable("t"), row, Options{IgnoreDuplicates: true})
	require.NoError(t, err)
	assert.Equal(t, `INSERT INTO "t" ("name") VALUES ($1) ON CONFLICT DO NOTHING;`, sql)
}

func TestInsertReturning(t *testing.T) {
	g := newTestGenerator()
	row := ast.NewRecord().Set("name", "foo")
	sql, _, err := g.InsertQuery(ast.NewTable("t"), row, Options{Returning: []string{"id", "*"}})
	require.NoError(t, err)
	assert.Equal(t, `INSERT INTO "t" ("name") VALUES ($1) RETURNING "id",*;`, sql)
}

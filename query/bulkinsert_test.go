package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Konsultn-Engineering/sqlgen/ast"
)

func TestBulkInsertInlinesAllValues(t *testing.T) {
	g := newTestGenerator()
	rows := []*ast.Record{
		ast.NewRecord().Set("name", "foo"),
		ast.NewRecord().Set("name", "bar"),
	}
	sql, err := g.BulkInsertQuery(ast.NewTable("myTable"), rows, Options{})
	require.NoError(t, err)
	assert.Equal(t, `INSERT INTO "myTable" ("name") VALUES ('foo'),('bar');`, sql)
}

func TestBulkInsertColumnUnionByFirstAppearance(t *testing.T) {
	g := newTestGenerator()
	rows := []*ast.Record{
		ast.NewRecord().Set("a", 1),
		ast.NewRecord().Set("b", 2).Set("a", 3),
		ast.NewRecord().Set("c", "x"),
	}
	sql, err := g.BulkInsertQuery(ast.NewTable("t"), rows, Options{})
	require.NoError(t, err)
	assert.Equal(t, `INSERT INTO "t" ("a","b","c") VALUES (1,NULL,NULL),(3,2,NULL),(NULL,NULL,'x');`, sql)
}

func TestBulkInsertNeverHonorsOmitNull(t *testing.T) {
	g := newTestGenerator()
	rows := []*ast.Record{
		ast.NewRecord().Set("name", "foo").Set("bio", nil),
	}
	sql, err := g.BulkInsertQuery(ast.NewTable("t"), rows, Options{OmitNull: true})
	require.NoError(t, err)
	assert.Equal(t, `INSERT INTO "t" ("name","bio") VALUES ('foo',NULL);`, sql)
}

func TestBulkInsertIgnoreDuplicates(t *testing.T) {
	g := newTestGenerator()
	rows := []*ast.Record{ast.NewRecord().Set("name", "foo")}
	sql, err := g.BulkInsertQuery(ast.NewTable("t"), rows, Options{IgnoreDuplicates: true})
	require.NoError(t, err)
	assert.Equal(t, `INSERT INTO "t" ("name") VALUES ('foo') ON CONFLICT DO NOTHING;`, sql)
}

func TestBulkInsertUpsert(t *testing.T) {
	g := newTestGenerator()
	rows := []*ast.Record{
		ast.NewRecord().Set("id", 1).Set("name", "foo"),
	}
	sql, err := g.BulkInsertQuery(ast.NewTable("t"), rows, Options{
		UpsertKeys:        []string{"id"},
		UpdateOnDuplicate: []string{"name"},
	})
	require.NoError(t, err)
	assert.Equal(t, `INSERT INTO "t" ("id","name") VALUES (1,'foo') ON CONFLICT ("id") DO UPDATE SET "name"=EXCLUDED."name";`, sql)
}

func TestBulkInsertReturning(t *testing.T) {
	g := newTestGenerator()
	rows := []*ast.Record{ast.NewRecord().Set("name", "foo")}
	sql, err := g.BulkInsertQuery(ast.NewTable("t"), rows, Options{Returning: []string{"id"}})
	require.NoError(t, err)
	assert.Equal(t, `INSERT INTO "t" ("name") VALUES ('foo') RETURNING "id";`, sql)
}

func TestBulkInsertNoRows(t *testing.T) {
	g := newTestGenerator()
	_, err := g.BulkInsertQuery(ast.NewTable("t"), nil, Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least one row")
}

func TestBulkInsertConflictingOptions(t *testing.T) {
	g := newTestGenerator()
	rows := []*ast.Record{ast.NewRecord().Set("a", 1)}
	_, err := g.BulkInsertQuery(ast.NewTable("t"), rows, Options{
		IgnoreDuplicates:  true,
		UpdateOnDuplicate: []string{"a"},
		UpsertKeys:        []string{"a"},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mutually exclusive")
}

func TestBulkInsertUpsertRequiresKeys(t *testing.T) {
	g := newTestGenerator()
	rows := []*ast.Record{ast.NewRecord().Set("a", 1)}
	_, err := g.BulkInsertQuery(ast.NewTable("t"), rows, Options{
		UpdateOnDuplicate: []string{"a"},
	})
	require.Error(t, err)
}

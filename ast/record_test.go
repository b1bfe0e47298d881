package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordPreservesInsertionOrder(t *testing.T) {
	r := NewRecord().Set("z", 1).Set("a", 2).Set("m", 3)
	assert.Equal(t, []string{"z", "a", "m"}, r.Columns())
	assert.Equal(t, 3, r.Len())
}

func TestRecordSetReplacesInPlace(t *testing.T) {
	r := NewRecord().Set("a", 1).Set("b", 2).Set("a", 9)
	assert.Equal(t, []string{"a", "b"}, r.Columns())

	v, ok := r.Get("a")
	require.True(t, ok)
	num, ok := v.(*Number)
	require.True(t, ok)
	assert.Equal(t, "9", num.Text)
}

func TestRecordGetMissing(t *testing.T) {
	_, ok := NewRecord().Get("nope")
	assert.False(t, ok)
}

func TestRecordFingerprintOrderSensitive(t *testing.T) {
	a := NewRecord().Set("x", 1).Set("y", 2)
	b := NewRecord().Set("y", 2).Set("x", 1)
	c := NewRecord().Set("x", 1).Set("y", 2)

	assert.NotEqual(t, a.Fingerprint(), b.Fingerprint())
	assert.Equal(t, a.Fingerprint(), c.Fingerprint())
}

func TestOperatorSQL(t *testing.T) {
	cases := map[string]string{
		"eq":          "=",
		"ne":          "!=",
		"gte":         ">=",
		"like":        "LIKE",
		"iLike":       "ILIKE",
		"in":          "IN",
		"is":          "IS",
		"contains":    "@>",
		"containedBy": "<@",
		"overlap":     "&&",
	}
	for symbol, want := range cases {
		got, err := OperatorSQL(symbol)
		require.NoError(t, err, "symbol %q", symbol)
		assert.Equal(t, want, got)
	}

	_, err := OperatorSQL("spaceship")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown operator")
}

func TestKnownOperator(t *testing.T) {
	assert.True(t, KnownOperator("="))
	assert.True(t, KnownOperator("@>"))
	assert.False(t, KnownOperator("!!"))
}

func TestContainmentOperator(t *testing.T) {
	assert.True(t, ContainmentOperator("@>"))
	assert.True(t, ContainmentOperator("<@"))
	assert.True(t, ContainmentOperator("&&"))
	assert.False(t, ContainmentOperator("="))
}

func TestColSplitsDottedName(t *testing.T) {
	c := Col("users.name")
	assert.Equal(t, "users", c.Table)
	assert.Equal(t, "name", c.Name)

	bare := Col("name")
	assert.Empty(t, bare.Table)
	assert.Equal(t, "name", bare.Name)
}

func TestNewValueCoercions(t *testing.T) {
	assert.IsType(t, &Null{}, NewValue(nil))
	assert.IsType(t, &Bool{}, NewValue(true))
	assert.IsType(t, &Number{}, NewValue(int64(1)))
	assert.IsType(t, &Number{}, NewValue(1.5))
	assert.IsType(t, &Str{}, NewValue("s"))
	assert.IsType(t, &Bytes{}, NewValue([]byte{1}))
	assert.IsType(t, &Array{}, NewValue([]string{"a"}))
	assert.IsType(t, &Array{}, NewValue([]any{1, "b"}))

	// Nodes pass through untouched.
	raw := RawSQL("now()")
	assert.Same(t, raw, NewValue(raw).(*Raw))
}

func TestStatementFingerprintsDiffer(t *testing.T) {
	sel := &SelectStmt{From: NewTable("t")}
	selAttr := &SelectStmt{From: NewTable("t"), Columns: []Node{Col("id")}}
	ins := &InsertStmt{Table: NewTable("t"), Row: NewRecord().Set("a", 1)}

	assert.NotEqual(t, sel.Fingerprint(), selAttr.Fingerprint())
	assert.NotEqual(t, sel.Fingerprint(), ins.Fingerprint())
}

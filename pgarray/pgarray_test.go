package pgarray

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	cases := []struct {
		wire string
		want []string
	}{
		{`{"foo bar",foo,bar}`, []string{"foo bar", "foo", "bar"}},
		{`{a,b,c}`, []string{"a", "b", "c"}},
		{`{single}`, []string{"single"}},
		{`{}`, []string{}},
		{`{"a,b",c}`, []string{"a,b", "c"}},
		{`{"he said \"hi\""}`, []string{`he said "hi"`}},
		{`{"back\\slash"}`, []string{`back\slash`}},
		{`{"{curly}"}`, []string{"{curly}"}},
		{`{"",x}`, []string{"", "x"}},
	}
	for _, tc := range cases {
		got, err := Parse(tc.wire)
		require.NoError(t, err, "wire %q", tc.wire)
		assert.Equal(t, tc.want, got, "wire %q", tc.wire)
	}
}

func TestParseEmptyArrayNonNil(t *testing.T) {
	got, err := Parse(`{}`)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Len(t, got, 0)
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		wire string
		msg  string
	}{
		{``, "missing opening brace"},
		{`foo`, "missing opening brace"},
		{`{a,b`, "missing closing brace"},
		{`a,b}`, "missing opening brace"},
		{`{a,{b}}`, "unbalanced brace"},
		{`{"abc}`, "unterminated quoted element"},
		{`{"abc\"}`, "unterminated quoted element"},
	}
	for _, tc := range cases {
		got, err := Parse(tc.wire)
		require.Error(t, err, "wire %q", tc.wire)
		assert.Nil(t, got)
		assert.Contains(t, err.Error(), tc.msg)
	}
}

func TestFormat(t *testing.T) {
	cases := []struct {
		elems []string
		want  string
	}{
		{[]string{"foo bar", "foo", "bar"}, `{"foo bar",foo,bar}`},
		{[]string{"a", "b"}, `{a,b}`},
		{[]string{}, `{}`},
		{[]string{""}, `{""}`},
		{[]string{`quote"inside`}, `{"quote\"inside"}`},
		{[]string{`back\slash`}, `{"back\\slash"}`},
		{[]string{"a,b"}, `{"a,b"}`},
		{[]string{"{curly}"}, `{"{curly}"}`},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Format(tc.elems))
	}
}

func TestRoundTrip(t *testing.T) {
	inputs := [][]string{
		{"plain"},
		{"with space", "plain", ""},
		{`"quoted"`, `trailing\`},
		{"a,b", "{brace}", "tab\there"},
	}
	for _, elems := range inputs {
		got, err := Parse(Format(elems))
		require.NoError(t, err)
		assert.Equal(t, elems, got)
	}
}

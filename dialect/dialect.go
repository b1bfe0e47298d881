package dialect

import "time"

// Dialect is the read-only configuration shared across generation calls:
// identifier quoting style, placeholder syntax, and literal escaping rules.
// Implementations are never mutated after construction and are safe for
// concurrent use.
type Dialect interface {
	// QuoteIdentifier quotes a single identifier segment. Qualified names are
	// quoted per segment by the caller, never as a whole.
	QuoteIdentifier(name string) string

	// Placeholder returns the bind placeholder token for 1-based position n.
	Placeholder(n int) string

	// QuoteString renders s as an inline SQL string literal with every
	// embedded quote escaped.
	QuoteString(s string) string

	// QuoteBytes renders b as an inline escaped byte literal.
	QuoteBytes(b []byte) string

	// FormatTime normalizes t to the dialect's timestamp wire text:
	// fixed millisecond precision with an explicit signed UTC offset. The
	// result is quoted by the caller in inline mode and passed verbatim as a
	// bind value in bound mode.
	FormatTime(t time.Time) string
}

package dialect

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// timeLayout is millisecond precision with an explicit signed offset, e.g.
// "2024-03-01 08:15:30.250 +00:00". FormatTime converts to UTC first so the
// offset is always +00:00; the layout must not change, callers round-trip it.
const timeLayout = "2006-01-02 15:04:05.000 -07:00"

type Postgres struct {
	bare bool
}

// NewPostgresDialect returns the standard PostgreSQL dialect with identifier
// quoting enabled.
func NewPostgresDialect() Dialect {
	return &Postgres{}
}

// NewUnquotedPostgresDialect returns a PostgreSQL dialect that passes
// identifiers through unquoted.
func NewUnquotedPostgresDialect() Dialect {
	return &Postgres{bare: true}
}

func (p *Postgres) QuoteIdentifier(name string) string {
	if p.bare {
		return name
	}
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

func (p *Postgres) Placeholder(n int) string {
	return "$" + strconv.Itoa(n)
}

// QuoteString doubles embedded single quotes; no backslash escaping, so the
// literal is safe under standard_conforming_strings.
func (p *Postgres) QuoteString(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

func (p *Postgres) QuoteBytes(b []byte) string {
	return fmt.Sprintf(`E'\\x%x'`, b)
}

func (p *Postgres) FormatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

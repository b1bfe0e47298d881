package visitor

import "github.com/Konsultn-Engineering/sqlgen/dialect"

// Binds accumulates bind parameters for one statement call. Placeholders are
// allocated in strictly increasing order starting at $1, matching first
// textual appearance. Values are never deduplicated or reordered: repeated
// identical inputs get distinct placeholders.
//
// Each statement call owns its own Binds, so numbering is continuous across
// clauses (an UPDATE's WHERE continues where its SET left off) and concurrent
// calls never interfere.
type Binds struct {
	d      dialect.Dialect
	values []any
}

func NewBinds(d dialect.Dialect) *Binds {
	return &Binds{d: d, values: make([]any, 0, 8)}
}

// Register stores v and returns the placeholder token for its position.
func (b *Binds) Register(v any) string {
	b.values = append(b.values, v)
	return b.d.Placeholder(len(b.values))
}

func (b *Binds) Len() int { return len(b.values) }

// Values returns the positional mapping: index i resolves placeholder i+1.
// The returned slice is the live backing array; callers copy before reuse.
func (b *Binds) Values() []any { return b.values }

func (b *Binds) reset(d dialect.Dialect) {
	b.d = d
	b.values = b.values[:0]
}

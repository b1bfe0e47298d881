// Package query assembles complete SQL statements from structured
// descriptors. It never executes anything: every operation is a pure
// transformation from descriptor to {SQL text, bind mapping}.
package query

import (
	"github.com/Konsultn-Engineering/sqlgen/cache"
	"github.com/Konsultn-Engineering/sqlgen/dialect"
	"github.com/Konsultn-Engineering/sqlgen/visitor"
)

// Generator renders statements for one dialect. The dialect and cache are
// read-only after construction, so a Generator is safe for concurrent use;
// each call owns its own visitor and bind accumulator.
type Generator struct {
	dialect dialect.Dialect
	qcache  cache.QueryCache
}

type Option func(*Generator)

// WithCache caches rendered bind-free SELECT text by descriptor fingerprint.
func WithCache(c cache.QueryCache) Option {
	return func(g *Generator) { g.qcache = c }
}

func New(d dialect.Dialect, opts ...Option) *Generator {
	g := &Generator{dialect: d}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func (g *Generator) Dialect() dialect.Dialect { return g.dialect }

func (g *Generator) newVisitor() *visitor.SQLVisitor {
	return visitor.NewSQLVisitor(g.dialect, g.qcache)
}

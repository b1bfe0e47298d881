// Package database is the execution boundary: it takes the {SQL text, bind
// mapping} pairs the generator produces and runs them. The generator never
// calls into this package.
package database

import "context"

// Statement pairs rendered SQL text with its positional bind values.
type Statement struct {
	SQL   string
	Binds []any
}

type Rows interface {
	Next() bool
	Scan(dest ...any) error
	Close() error
	Columns() ([]string, error)
}

// Runner executes generated statements against a live connection.
type Runner interface {
	Query(ctx context.Context, stmt Statement) (Rows, error)
	Exec(ctx context.Context, stmt Statement) (int64, error)
	Close() error
}

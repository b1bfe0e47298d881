package database

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxRunner executes statements on a pgx connection pool.
type PgxRunner struct {
	pool *pgxpool.Pool
}

func NewPgxRunner(pool *pgxpool.Pool) *PgxRunner {
	return &PgxRunner{pool: pool}
}

func (r *PgxRunner) Query(ctx context.Context, stmt Statement) (Rows, error) {
	rows, err := r.pool.Query(ctx, stmt.SQL, stmt.Binds...)
	if err != nil {
		return nil, err
	}
	return &pgxRows{rows: rows}, nil
}

func (r *PgxRunner) Exec(ctx context.Context, stmt Statement) (int64, error) {
	tag, err := r.pool.Exec(ctx, stmt.SQL, stmt.Binds...)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *PgxRunner) Close() error {
	r.pool.Close()
	return nil
}

type pgxRows struct {
	rows   pgx.Rows
	fields []pgconn.FieldDescription
}

func (p *pgxRows) Next() bool { return p.rows.Next() }

func (p *pgxRows) Scan(dest ...any) error { return p.rows.Scan(dest...) }

func (p *pgxRows) Close() error {
	p.rows.Close()
	return nil
}

func (p *pgxRows) Columns() ([]string, error) {
	if p.fields == nil {
		p.fields = p.rows.FieldDescriptions()
	}
	columns := make([]string, len(p.fields))
	for i, fd := range p.fields {
		columns[i] = fd.Name
	}
	return columns, nil
}

var _ Runner = (*PgxRunner)(nil)

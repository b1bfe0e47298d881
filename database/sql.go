package database

import (
	"context"
	"database/sql"
)

// SQLRunner executes statements on a database/sql handle, for drivers not
// speaking the pgx native protocol.
type SQLRunner struct {
	db *sql.DB
}

func NewSQLRunner(db *sql.DB) *SQLRunner {
	return &SQLRunner{db: db}
}

func (r *SQLRunner) Query(ctx context.Context, stmt Statement) (Rows, error) {
	rows, err := r.db.QueryContext(ctx, stmt.SQL, stmt.Binds...)
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *SQLRunner) Exec(ctx context.Context, stmt Statement) (int64, error) {
	res, err := r.db.ExecContext(ctx, stmt.SQL, stmt.Binds...)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *SQLRunner) Close() error { return r.db.Close() }

var _ Runner = (*SQLRunner)(nil)

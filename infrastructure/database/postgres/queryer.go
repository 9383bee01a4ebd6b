package postgres

import (
	"context"
	"database/sql"
)

// Queryer abstrai *sql.DB e *sql.Tx para as camadas de armazenamento
type Queryer interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

package store

import (
	"context"
	"database/sql"
)

type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	PrepareContext(ctx context.Context, query string) (*sql.Stmt, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func New(db DBTX) *Queries {
	return &Queries{db: db}
}

type Queries struct {
	db DBTX
}

func (q *Queries) WithTx(tx *sql.Tx) *Queries {
	return &Queries{db: tx}
}

const getValue = `SELECT value FROM kv WHERE key = ?`

// GetValue returns sql.ErrNoRows when the key has never been written.
func (q *Queries) GetValue(ctx context.Context, key string) (string, error) {
	row := q.db.QueryRowContext(ctx, getValue, key)
	var value string
	err := row.Scan(&value)

	return value, err
}

const getUpdatedOn = `SELECT updated_on FROM kv WHERE key = ?`

// GetUpdatedOn returns the unix millisecond timestamp of the last write to key.
func (q *Queries) GetUpdatedOn(ctx context.Context, key string) (int64, error) {
	row := q.db.QueryRowContext(ctx, getUpdatedOn, key)
	var updatedOn int64
	err := row.Scan(&updatedOn)

	return updatedOn, err
}

const setValue = `INSERT INTO kv (key, value, updated_on) VALUES (?, ?, ?)
ON CONFLICT (key) DO UPDATE SET value = excluded.value, updated_on = excluded.updated_on`

type SetValueParams struct {
	Key       string
	Value     string
	UpdatedOn int64
}

func (q *Queries) SetValue(ctx context.Context, arg SetValueParams) error {
	_, err := q.db.ExecContext(ctx, setValue, arg.Key, arg.Value, arg.UpdatedOn)

	return err
}

const deleteValue = `DELETE FROM kv WHERE key = ?`

func (q *Queries) DeleteValue(ctx context.Context, key string) error {
	_, err := q.db.ExecContext(ctx, deleteValue, key)

	return err
}

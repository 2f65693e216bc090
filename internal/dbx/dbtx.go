// Package dbx holds the database/sql helpers of the token store. Logout
// must drop the access and refresh tokens of one API origin together, so
// deletes of several keys run as one unit through WithTx and ExecEach.
package dbx

import (
	"context"
	"database/sql"
	"fmt"
)

// DBTX is the subset of database/sql the stores use.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// WithTx runs fn inside a transaction. It commits when fn returns nil and
// rolls back on error or panic; panics are re-raised after the rollback.
//
//	err := dbx.WithTx(ctx, db, nil, func(ctx context.Context, tx dbx.DBTX) error {
//	    return dbx.ExecEach(ctx, tx, "DELETE FROM tokens WHERE scope = ? AND key = ?",
//	        []any{scope, "token"}, []any{scope, "refresh_token"})
//	})
func WithTx(ctx context.Context, db *sql.DB, opts *sql.TxOptions, fn func(ctx context.Context, tx DBTX) error) (err error) {
	tx, err := db.BeginTx(ctx, opts)
	if err != nil {
		return err
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			_ = tx.Rollback()
			return
		}
		err = tx.Commit()
	}()

	return fn(ctx, tx)
}

// ExecEach runs query once per argument set and stops at the first
// failure, reporting which set it was.
func ExecEach(ctx context.Context, q DBTX, query string, argSets ...[]any) error {
	for i, args := range argSets {
		if _, err := q.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("exec %d of %d: %w", i+1, len(argSets), err)
		}
	}
	return nil
}

// Package dbx holds small database helpers shared by the repositories:
// the DBTX interface satisfied by both *sql.DB and *sql.Tx, transaction
// scoping, and Postgres error classification.
package dbx

import (
	"context"
	"database/sql"
)

// DBTX is the subset of database/sql the repositories operate on. Passing
// a *sql.Tx scopes a repository to that transaction; passing a *sql.DB
// runs each statement standalone.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// WithTx runs fn inside a transaction: commit when fn returns nil, rollback
// on error or panic. Panics are rethrown after rollback.
//
//	err := dbx.WithTx(ctx, db, nil, func(ctx context.Context, tx dbx.DBTX) error {
//	    if err := m.Categories(tx).Ensure(ctx, userID, name, tipo); err != nil {
//	        return err
//	    }
//	    _, err := m.Transactions(tx).Create(ctx, t)
//	    return err
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

	err = fn(ctx, tx)
	return err
}

package db

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// WriteFunc performs database writes inside a transaction.
type WriteFunc func(ctx context.Context, tx DBExecutor) error

// TxBeginner starts transactions; *sqlx.DB implements it.
type TxBeginner interface {
	BeginTxx(ctx context.Context, opts *sql.TxOptions) (*sqlx.Tx, error)
}

// RunInTx runs writes in order inside one transaction, rolling back on the
// first error.
func RunInTx(ctx context.Context, db TxBeginner, writes ...WriteFunc) error {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback() // ignored if committed
	}()

	for _, w := range writes {
		if err := w(ctx, tx); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit (%d writes): %w", len(writes), err)
	}
	return nil
}

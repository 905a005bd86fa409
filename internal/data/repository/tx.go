package repository

import (
	"context"
	"fmt"

	"feedback-desk/pkg/database"

	"go.uber.org/zap"
)

// TxRunner executes several repository calls as one unit: all or none.
type TxRunner interface {
	WithinTx(ctx context.Context, fn func(repo *Repository) error) error
}

type txRunner struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewTxRunner(db database.PgxIface, log *zap.Logger) TxRunner {
	return &txRunner{
		db:  db,
		log: log.With(zap.String("repository", "tx")),
	}
}

// WithinTx commits when fn returns nil and rolls back otherwise.
func (r *txRunner) WithinTx(ctx context.Context, fn func(repo *Repository) error) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		r.log.Error("Failed to begin transaction", zap.Error(err))
		return fmt.Errorf("begin transaction: %w", err)
	}

	if err := fn(newRepositories(tx, r.log)); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			r.log.Error("Failed to rollback transaction", zap.Error(rbErr))
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		r.log.Error("Failed to commit transaction", zap.Error(err))
		return fmt.Errorf("commit transaction: %w", err)
	}

	return nil
}

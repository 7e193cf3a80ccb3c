package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"fakturo/internal/core/apperror"
	"fakturo/internal/core/tx"
	"fakturo/pkg/logger"
)

// Compile-time check that TxManager implements tx.Manager interface.
var _ tx.Manager = (*TxManager)(nil)

const (
	// maxBusyRetries bounds retries of a whole transaction when sqlite
	// reports the database busy or locked beyond the driver's busy_timeout.
	maxBusyRetries = 3

	busyRetryBackoff = 25 * time.Millisecond
)

// txKey is the context key for active transaction.
type txKey struct{}

// Querier is the query surface shared by *sql.DB and *sql.Tx; repositories
// always go through it so they work both inside and outside transactions.
type Querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// TxManager manages database transactions with nested reuse: a function
// started inside an existing transaction joins it instead of opening a new
// one. Transient lock contention is retried a bounded number of times, then
// surfaced as StorageUnavailable.
type TxManager struct {
	db *sql.DB
}

// NewTxManager creates a new transaction manager.
func NewTxManager(db *sql.DB) *TxManager {
	return &TxManager{db: db}
}

// RunInTransaction executes fn within a transaction.
// If a transaction already exists in ctx, it is reused.
func (m *TxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.getTx(ctx) != nil {
		return fn(ctx)
	}

	var err error
	for attempt := 0; attempt <= maxBusyRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(busyRetryBackoff * time.Duration(attempt)):
			}
			logger.Debug(ctx, "retrying transaction after lock contention", "attempt", attempt)
		}

		err = m.runOnce(ctx, fn)
		if err == nil || !isTransient(err) {
			return err
		}
	}

	return apperror.NewStorageUnavailable("transaction", err)
}

func (m *TxManager) runOnce(ctx context.Context, fn func(ctx context.Context) error) error {
	dbTx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	txCtx := context.WithValue(ctx, txKey{}, dbTx)

	if err := fn(txCtx); err != nil {
		if rbErr := dbTx.Rollback(); rbErr != nil && rbErr != sql.ErrTxDone {
			logger.Error(ctx, "rollback failed", "error", rbErr, "original_error", err)
		}
		return err
	}

	if err := dbTx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// getTx returns the current transaction from context, or nil if none.
func (m *TxManager) getTx(ctx context.Context) *sql.Tx {
	if dbTx, ok := ctx.Value(txKey{}).(*sql.Tx); ok {
		return dbTx
	}
	return nil
}

// GetQuerier returns the active transaction if the context carries one,
// otherwise the bare connection.
func (m *TxManager) GetQuerier(ctx context.Context) Querier {
	if dbTx := m.getTx(ctx); dbTx != nil {
		return dbTx
	}
	return m.db
}

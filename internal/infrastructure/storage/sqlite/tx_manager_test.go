package sqlite

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) *TxManager {
	t.Helper()

	db, err := Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	_, err = db.Exec(`CREATE TABLE scratch (id INTEGER PRIMARY KEY, label TEXT NOT NULL)`)
	require.NoError(t, err)

	return NewTxManager(db)
}

func countRows(t *testing.T, txm *TxManager, ctx context.Context) int {
	t.Helper()
	var n int
	err := txm.GetQuerier(ctx).QueryRowContext(ctx, `SELECT COUNT(*) FROM scratch`).Scan(&n)
	require.NoError(t, err)
	return n
}

func insertRow(ctx context.Context, txm *TxManager, label string) error {
	_, err := txm.GetQuerier(ctx).ExecContext(ctx, `INSERT INTO scratch (label) VALUES (?)`, label)
	return err
}

func TestTransactionCommits(t *testing.T) {
	txm := newTestDB(t)
	ctx := context.Background()

	err := txm.RunInTransaction(ctx, func(ctx context.Context) error {
		return insertRow(ctx, txm, "a")
	})
	require.NoError(t, err)
	assert.Equal(t, 1, countRows(t, txm, ctx))
}

func TestTransactionRollsBackOnError(t *testing.T) {
	txm := newTestDB(t)
	ctx := context.Background()

	boom := errors.New("boom")
	err := txm.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := insertRow(ctx, txm, "a"); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 0, countRows(t, txm, ctx))
}

func TestNestedTransactionJoinsOuter(t *testing.T) {
	txm := newTestDB(t)
	ctx := context.Background()

	boom := errors.New("boom")
	err := txm.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := insertRow(ctx, txm, "outer"); err != nil {
			return err
		}
		// the inner call must reuse the outer transaction, so its write
		// disappears with the outer rollback
		if err := txm.RunInTransaction(ctx, func(ctx context.Context) error {
			return insertRow(ctx, txm, "inner")
		}); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 0, countRows(t, txm, ctx))
}

func TestQuerierOutsideTransactionIsConnection(t *testing.T) {
	txm := newTestDB(t)
	ctx := context.Background()

	require.NoError(t, insertRow(ctx, txm, "direct"))
	assert.Equal(t, 1, countRows(t, txm, ctx))
}

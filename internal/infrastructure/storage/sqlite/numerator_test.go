package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fakturo/internal/core/numerator"
)

func newTestNumerator(t *testing.T) *Numerator {
	t.Helper()

	db, err := Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewNumerator(NewTxManager(db))
}

func TestNextNumberSequence(t *testing.T) {
	num := newTestNumerator(t)
	ctx := context.Background()
	cfg := numerator.DefaultConfig("INV")
	period := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)

	first, err := num.NextNumber(ctx, cfg, period)
	require.NoError(t, err)
	assert.Equal(t, "INV-2026-00001", first)

	second, err := num.NextNumber(ctx, cfg, period)
	require.NoError(t, err)
	assert.Equal(t, "INV-2026-00002", second)
}

func TestNextNumberResetsPerYear(t *testing.T) {
	num := newTestNumerator(t)
	ctx := context.Background()
	cfg := numerator.DefaultConfig("INV")

	n2026, err := num.NextNumber(ctx, cfg, time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, "INV-2026-00001", n2026)

	n2027, err := num.NextNumber(ctx, cfg, time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, "INV-2027-00001", n2027)
}

func TestNextNumberIndependentPrefixes(t *testing.T) {
	num := newTestNumerator(t)
	ctx := context.Background()
	period := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

	inv, err := num.NextNumber(ctx, numerator.DefaultConfig("INV"), period)
	require.NoError(t, err)
	dlv, err := num.NextNumber(ctx, numerator.DefaultConfig("DLV"), period)
	require.NoError(t, err)

	assert.Equal(t, "INV-2026-00001", inv)
	assert.Equal(t, "DLV-2026-00001", dlv)
}

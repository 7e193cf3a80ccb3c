package sqlite

import (
	"context"
	"fmt"
	"time"

	"fakturo/internal/core/numerator"
)

var _ numerator.Generator = (*Numerator)(nil)

// Numerator issues sequential document numbers from the sequences table.
// Callers run it inside the transaction that creates the document, so a
// rolled-back create never leaks a gap beyond what sqlite reuses naturally.
type Numerator struct {
	txm *TxManager
}

// NewNumerator creates a sequence-backed number generator.
func NewNumerator(txm *TxManager) *Numerator {
	return &Numerator{txm: txm}
}

// NextNumber increments and returns the sequence for the prefix and year of
// period, formatted per cfg.
func (n *Numerator) NextNumber(ctx context.Context, cfg numerator.Config, period time.Time) (string, error) {
	key := cfg.SequenceKey(period)

	const query = `
		INSERT INTO sequences (key, value) VALUES (?, 1)
		ON CONFLICT(key) DO UPDATE SET value = value + 1
		RETURNING value`

	var value int64
	if err := n.txm.GetQuerier(ctx).QueryRowContext(ctx, query, key).Scan(&value); err != nil {
		return "", fmt.Errorf("next sequence %s: %w", key, err)
	}

	return cfg.Format(period, value), nil
}

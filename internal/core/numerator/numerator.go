// Package numerator provides the domain contract for document auto-numbering.
// The SQLite-backed implementation lives in infrastructure/storage/sqlite.
package numerator

import (
	"context"
	"fmt"
	"time"
)

// Generator generates sequential document numbers.
type Generator interface {
	// NextNumber generates the next document number for the configured
	// prefix and period. Pattern: PREFIX-YEAR-NNNNN (e.g. INV-2026-00001).
	// Sequences reset per prefix+year.
	NextNumber(ctx context.Context, cfg Config, period time.Time) (string, error)
}

// Config configures number generation for one document type.
type Config struct {
	// Prefix identifies the document type (e.g. "INV", "PRO", "DLV")
	Prefix string

	// Digits is the zero-padded width of the sequence part
	Digits int
}

// DefaultConfig returns the standard numbering configuration for a prefix.
func DefaultConfig(prefix string) Config {
	return Config{
		Prefix: prefix,
		Digits: 5,
	}
}

// SequenceKey returns the storage key for the prefix+year sequence.
func (c Config) SequenceKey(period time.Time) string {
	return fmt.Sprintf("%s-%d", c.Prefix, period.Year())
}

// Format renders a sequence value as a document number.
func (c Config) Format(period time.Time, value int64) string {
	return fmt.Sprintf("%s-%d-%0*d", c.Prefix, period.Year(), c.Digits, value)
}

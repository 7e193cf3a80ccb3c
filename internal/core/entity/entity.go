// Package entity provides the base types shared by catalogs and documents.
package entity

import (
	"context"
	"time"

	"fakturo/internal/core/id"
)

// Validatable is implemented by entities that support self-validation.
// Validation checks internal invariants only, without storage access.
type Validatable interface {
	// Validate checks entity invariants.
	// Returns nil if valid, an AppError with details otherwise.
	Validate(ctx context.Context) error
}

// Base contains the fields every persistent entity carries.
type Base struct {
	// ID is the primary key (UUIDv7)
	ID id.ID `db:"id" json:"id"`

	// CreatedAt is the creation timestamp (UTC)
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}

// NewBase creates a Base with a generated ID and current timestamp.
func NewBase() Base {
	return Base{
		ID:        id.New(),
		CreatedAt: time.Now().UTC(),
	}
}

// EntityID returns the primary key.
func (b *Base) EntityID() id.ID {
	return b.ID
}

// EnsureIdentity assigns an ID and creation timestamp if missing.
// Repositories call this before insert so callers may leave both zero.
func (b *Base) EnsureIdentity() {
	if id.IsNil(b.ID) {
		b.ID = id.New()
	}
	if b.CreatedAt.IsZero() {
		b.CreatedAt = time.Now().UTC()
	}
}

// Identifiable is the contract the generic repositories rely on.
type Identifiable interface {
	EntityID() id.ID
	EnsureIdentity()
}

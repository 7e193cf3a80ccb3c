package delivery

import (
	"context"

	"fakturo/internal/core/id"
)

// Repository defines persistence for delivery notes.
type Repository interface {
	// CreateWithItems inserts the header and all items.
	CreateWithItems(ctx context.Context, d *Delivery) error

	// GetByID retrieves a header without items.
	GetByID(ctx context.Context, deliveryID id.ID) (*Delivery, error)

	// GetItems retrieves items ordered by line number.
	GetItems(ctx context.Context, deliveryID id.ID) ([]Item, error)

	// Delete removes the header; items cascade.
	Delete(ctx context.Context, deliveryID id.ID) error

	// ListAll retrieves headers, most recent date first.
	ListAll(ctx context.Context) ([]*Delivery, error)
}

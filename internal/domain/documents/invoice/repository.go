package invoice

import (
	"context"

	"fakturo/internal/core/id"
)

// Repository defines persistence for invoice headers and line items.
// CreateWithItems and ReplaceItems run inside the caller's transaction so
// header and items are never visible half-written.
type Repository interface {
	// CreateWithItems inserts the header and all items.
	CreateWithItems(ctx context.Context, inv *Invoice) error

	// GetByID retrieves a header without items.
	GetByID(ctx context.Context, invID id.ID) (*Invoice, error)

	// GetItems retrieves items ordered by line number.
	GetItems(ctx context.Context, invID id.ID) ([]Item, error)

	// UpdateHeader persists header fields only; items are untouched.
	UpdateHeader(ctx context.Context, inv *Invoice) error

	// ReplaceItems deletes and reinserts the full item set.
	ReplaceItems(ctx context.Context, invID id.ID, items []Item) error

	// UpdateStatus sets only the status column.
	UpdateStatus(ctx context.Context, invID id.ID, status Status) error

	// Delete removes the header; items cascade.
	Delete(ctx context.Context, invID id.ID) error

	// ListAll retrieves headers, most recent issue date first.
	ListAll(ctx context.Context) ([]*Invoice, error)

	// ListByClient retrieves a client's headers, most recent first.
	ListByClient(ctx context.Context, clientID id.ID) ([]*Invoice, error)

	// ExistsNumber checks whether an invoice number is taken.
	ExistsNumber(ctx context.Context, number string) (bool, error)
}

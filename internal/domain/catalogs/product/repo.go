package product

import (
	"context"

	"fakturo/internal/core/id"
	"fakturo/internal/domain"
)

// Repository defines the interface for Product persistence.
type Repository interface {
	domain.CatalogRepository[*Product]

	// GetByCode retrieves a product by its natural code.
	GetByCode(ctx context.Context, code string) (*Product, error)

	// Deactivate soft-deletes a product (clears the active flag).
	Deactivate(ctx context.Context, id id.ID) error
}

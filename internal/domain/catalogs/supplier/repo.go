package supplier

import (
	"context"

	"fakturo/internal/core/id"
	"fakturo/internal/domain"
)

// Repository defines the interface for Supplier persistence.
type Repository interface {
	domain.CatalogRepository[*Supplier]

	// Deactivate soft-deletes a supplier (clears the active flag).
	Deactivate(ctx context.Context, id id.ID) error
}

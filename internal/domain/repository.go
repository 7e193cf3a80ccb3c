// Package domain provides shared business-logic contracts and the generic
// catalog service used by all flat reference entities.
package domain

import (
	"context"

	"fakturo/internal/core/entity"
	"fakturo/internal/core/id"
)

// ListFilter contains the filtering options for catalog list operations.
// Listings are full and unpaginated; windowing is the caller's concern.
type ListFilter struct {
	// Search matches name (and code where present), case-insensitive substring
	Search string

	// IncludeInactive includes soft-deactivated records (products, suppliers)
	IncludeInactive bool
}

// CatalogEntity is what the generic catalog layer requires of an entity.
type CatalogEntity interface {
	entity.Identifiable
	entity.Validatable
}

// CatalogRepository defines CRUD operations for catalog entities.
// All operations are atomic per call; constraint violations surface as
// apperror codes (DUPLICATE_KEY, REFERENTIAL_CONFLICT, NOT_FOUND).
type CatalogRepository[T CatalogEntity] interface {
	// Create inserts a new entity.
	Create(ctx context.Context, entity T) error

	// GetByID retrieves an entity by ID.
	GetByID(ctx context.Context, id id.ID) (T, error)

	// Update modifies an existing entity.
	Update(ctx context.Context, entity T) error

	// Delete physically removes the entity. Fails with ReferentialConflict
	// when dependents reference it.
	Delete(ctx context.Context, id id.ID) error

	// List retrieves entities in the repository's stable order.
	List(ctx context.Context, filter ListFilter) ([]T, error)

	// Exists checks whether an entity with the given ID exists.
	Exists(ctx context.Context, id id.ID) (bool, error)
}

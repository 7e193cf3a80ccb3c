package warehouse

import (
	"context"

	"fakturo/internal/core/id"
	"fakturo/internal/domain"
)

// Repository defines persistence for warehouse groups and their items.
type Repository interface {
	domain.CatalogRepository[*Group]

	// GetItems retrieves items of a group in creation order.
	GetItems(ctx context.Context, groupID id.ID) ([]*Item, error)

	// AddItem inserts a membership.
	AddItem(ctx context.Context, item *Item) error

	// DeleteItem removes one membership; the group and product are untouched.
	DeleteItem(ctx context.Context, groupID, productID id.ID) error

	// DeleteWithItems removes a group and all its memberships.
	DeleteWithItems(ctx context.Context, groupID id.ID) error
}

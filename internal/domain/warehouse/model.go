// Package warehouse provides warehouse groups: named collections of product
// memberships used to organize stock.
package warehouse

import (
	"context"

	"fakturo/internal/core/apperror"
	"fakturo/internal/core/entity"
	"fakturo/internal/core/id"
)

// Group is a named collection of product memberships.
type Group struct {
	entity.Base

	Name        string  `db:"name" json:"name"`
	Description *string `db:"description" json:"description,omitempty"`
}

// NewGroup creates a new Group with generated identity.
func NewGroup(name string) *Group {
	return &Group{
		Base: entity.NewBase(),
		Name: name,
	}
}

// Validate implements entity.Validatable.
func (g *Group) Validate(ctx context.Context) error {
	if g.Name == "" {
		return apperror.NewValidation("name is required").
			WithDetail("field", "name")
	}
	return nil
}

// Item is a product membership within a group.
// Product code and name are snapshots taken when the item is added, so the
// grouping stays readable after product edits.
type Item struct {
	entity.Base

	// GroupID is the owning group; deleting the group removes its items
	GroupID id.ID `db:"group_id" json:"groupId"`

	// ProductID references the product; deleting the item leaves it intact
	ProductID   id.ID  `db:"product_id" json:"productId"`
	ProductCode string `db:"product_code" json:"productCode"`
	ProductName string `db:"product_name" json:"productName"`

	Quantity float64 `db:"quantity" json:"quantity"`
	Notes    *string `db:"notes" json:"notes,omitempty"`
}

// Validate implements entity.Validatable.
func (i *Item) Validate(ctx context.Context) error {
	if id.IsNil(i.GroupID) {
		return apperror.NewValidation("group is required").
			WithDetail("field", "groupId")
	}
	if id.IsNil(i.ProductID) {
		return apperror.NewValidation("product is required").
			WithDetail("field", "productId")
	}
	if i.Quantity < 0 {
		return apperror.NewValidation("quantity must not be negative").
			WithDetail("field", "quantity")
	}
	return nil
}

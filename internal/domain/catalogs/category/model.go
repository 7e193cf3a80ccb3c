// Package category provides the product Category catalog.
package category

import (
	"context"

	"fakturo/internal/core/apperror"
	"fakturo/internal/core/entity"
)

// Category is a flat product grouping.
type Category struct {
	entity.Base

	// Name is unique across categories
	Name string `db:"name" json:"name"`
}

// New creates a new Category with generated identity.
func New(name string) *Category {
	return &Category{
		Base: entity.NewBase(),
		Name: name,
	}
}

// Validate implements entity.Validatable.
func (c *Category) Validate(ctx context.Context) error {
	if c.Name == "" {
		return apperror.NewValidation("name is required").
			WithDetail("field", "name")
	}
	return nil
}

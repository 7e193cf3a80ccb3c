// Package subcategory provides the product Subcategory catalog.
// Subcategories belong to a category; deleting the category cascades here.
package subcategory

import (
	"context"

	"fakturo/internal/core/apperror"
	"fakturo/internal/core/entity"
	"fakturo/internal/core/id"
)

// Subcategory is a second-level product grouping.
type Subcategory struct {
	entity.Base

	Name string `db:"name" json:"name"`

	// CategoryID is the owning category
	CategoryID id.ID `db:"category_id" json:"categoryId"`
}

// New creates a new Subcategory with generated identity.
func New(name string, categoryID id.ID) *Subcategory {
	return &Subcategory{
		Base:       entity.NewBase(),
		Name:       name,
		CategoryID: categoryID,
	}
}

// Validate implements entity.Validatable.
func (s *Subcategory) Validate(ctx context.Context) error {
	if s.Name == "" {
		return apperror.NewValidation("name is required").
			WithDetail("field", "name")
	}
	if id.IsNil(s.CategoryID) {
		return apperror.NewValidation("category is required").
			WithDetail("field", "categoryId")
	}
	return nil
}

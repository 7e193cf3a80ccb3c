// Package country provides the Country reference catalog.
package country

import (
	"context"

	"fakturo/internal/core/apperror"
	"fakturo/internal/core/entity"
)

// Country is a reference entry used by client and supplier addresses.
type Country struct {
	entity.Base

	// Name is unique across countries
	Name string `db:"name" json:"name"`

	// Code is the ISO 3166-1 alpha-2 code
	Code *string `db:"code" json:"code,omitempty"`
}

// New creates a new Country with generated identity.
func New(name string) *Country {
	return &Country{
		Base: entity.NewBase(),
		Name: name,
	}
}

// Validate implements entity.Validatable.
func (c *Country) Validate(ctx context.Context) error {
	if c.Name == "" {
		return apperror.NewValidation("name is required").
			WithDetail("field", "name")
	}
	return nil
}

// Package product provides the Product catalog.
// Products carry a unique natural code and the live price that invoice
// creation snapshots into line items.
package product

import (
	"context"

	"fakturo/internal/core/apperror"
	"fakturo/internal/core/entity"
	"fakturo/internal/core/types"
)

// Product represents a sellable item.
type Product struct {
	entity.Base

	// Code is the unique natural key (SKU)
	Code string `db:"code" json:"code"`

	// Name is the display name
	Name string `db:"name" json:"name"`

	Description *string `db:"description" json:"description,omitempty"`

	// Price is the current unit price. Invoice items snapshot it; later
	// edits here never touch existing invoices.
	Price types.Money `db:"price" json:"price"`

	// Category and Subcategory are display groupings
	Category    *string `db:"category" json:"category,omitempty"`
	Subcategory *string `db:"subcategory" json:"subcategory,omitempty"`

	// Weight in kilograms
	Weight *float64 `db:"weight" json:"weight,omitempty"`

	// Supplier is the display name of the sourcing supplier
	Supplier *string `db:"supplier" json:"supplier,omitempty"`

	// InternalCode is an optional secondary code
	InternalCode *string `db:"internal_code" json:"internalCode,omitempty"`

	// Active is cleared on soft delete; inactive products are hidden from
	// default listings but keep historical invoice items valid
	Active bool `db:"active" json:"active"`
}

// New creates a new Product with generated identity.
func New(code, name string, price types.Money) *Product {
	return &Product{
		Base:   entity.NewBase(),
		Code:   code,
		Name:   name,
		Price:  price,
		Active: true,
	}
}

// Validate implements entity.Validatable.
func (p *Product) Validate(ctx context.Context) error {
	if p.Code == "" {
		return apperror.NewValidation("code is required").
			WithDetail("field", "code")
	}
	if p.Name == "" {
		return apperror.NewValidation("name is required").
			WithDetail("field", "name")
	}
	if p.Price.IsNegative() {
		return apperror.NewValidation("price must not be negative").
			WithDetail("field", "price")
	}
	return nil
}

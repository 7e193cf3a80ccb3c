// Package supplier provides the Supplier catalog.
package supplier

import (
	"context"

	"fakturo/internal/core/apperror"
	"fakturo/internal/core/entity"
	"fakturo/internal/core/id"
)

// Supplier represents a sourcing partner.
type Supplier struct {
	entity.Base

	// Name is the display name
	Name string `db:"name" json:"name"`

	// LegalName is the official registered name
	LegalName *string `db:"legal_name" json:"legalName,omitempty"`

	// MB is the company registration number
	MB *string `db:"mb" json:"mb,omitempty"`

	// PIB is the tax identification number
	PIB *string `db:"pib" json:"pib,omitempty"`

	RegNumber *string `db:"reg_number" json:"regNumber,omitempty"`

	Address *string `db:"address" json:"address,omitempty"`
	City    *string `db:"city" json:"city,omitempty"`
	Country *string `db:"country" json:"country,omitempty"`

	Phone   *string `db:"phone" json:"phone,omitempty"`
	Email   *string `db:"email" json:"email,omitempty"`
	Website *string `db:"website" json:"website,omitempty"`
	Bank    *string `db:"bank" json:"bank,omitempty"`

	// SectorID and ProductID classify the supplier's offering
	SectorID  *id.ID `db:"sector_id" json:"sectorId,omitempty"`
	ProductID *id.ID `db:"product_id" json:"productId,omitempty"`

	// ContactPerson is the primary contact name
	ContactPerson *string `db:"contact_person" json:"contactPerson,omitempty"`

	// Notes is a free-form comment
	Notes *string `db:"notes" json:"notes,omitempty"`

	// Active is cleared on soft delete
	Active bool `db:"active" json:"active"`
}

// New creates a new Supplier with generated identity.
func New(name string) *Supplier {
	return &Supplier{
		Base:   entity.NewBase(),
		Name:   name,
		Active: true,
	}
}

// Validate implements entity.Validatable.
func (s *Supplier) Validate(ctx context.Context) error {
	if s.Name == "" {
		return apperror.NewValidation("name is required").
			WithDetail("field", "name")
	}
	return nil
}

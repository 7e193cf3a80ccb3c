// Package client provides the Client catalog: the parties invoices are
// issued to.
package client

import (
	"context"
	"regexp"

	"fakturo/internal/core/apperror"
	"fakturo/internal/core/entity"
)

var emailRE = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// Client represents an invoicing counterparty.
type Client struct {
	entity.Base

	// Name is the display name
	Name string `db:"name" json:"name"`

	// LegalName is the official registered name
	LegalName *string `db:"legal_name" json:"legalName,omitempty"`

	// MB is the company registration number
	MB string `db:"mb" json:"mb"`

	// PIB is the tax identification number
	PIB *string `db:"pib" json:"pib,omitempty"`

	Address    *string `db:"address" json:"address,omitempty"`
	City       *string `db:"city" json:"city,omitempty"`
	PostalCode *string `db:"postal_code" json:"postalCode,omitempty"`
	Country    *string `db:"country" json:"country,omitempty"`

	Phone *string `db:"phone" json:"phone,omitempty"`
	Email *string `db:"email" json:"email,omitempty"`
	Bank  *string `db:"bank" json:"bank,omitempty"`

	// ContactPerson is the primary contact name
	ContactPerson *string `db:"contact_person" json:"contactPerson,omitempty"`

	// Notes is a free-form comment
	Notes *string `db:"notes" json:"notes,omitempty"`
}

// New creates a new Client with generated identity.
func New(name, mb string) *Client {
	return &Client{
		Base: entity.NewBase(),
		Name: name,
		MB:   mb,
	}
}

// Validate implements entity.Validatable.
func (c *Client) Validate(ctx context.Context) error {
	if c.Name == "" {
		return apperror.NewValidation("name is required").
			WithDetail("field", "name")
	}
	if c.Email != nil && *c.Email != "" && !emailRE.MatchString(*c.Email) {
		return apperror.NewValidation("invalid email format").
			WithDetail("field", "email")
	}
	return nil
}

// Package delivery provides delivery notes: goods shipped to a client,
// recorded as a header with product-quantity lines.
package delivery

import (
	"context"
	"time"

	"fakturo/internal/core/apperror"
	"fakturo/internal/core/entity"
	"fakturo/internal/core/id"
)

// Delivery is a delivery note header with its item lines.
type Delivery struct {
	entity.Base

	// Number is the unique business key (auto-generated when empty)
	Number string `db:"number" json:"number"`

	ClientID   id.ID  `db:"client_id" json:"clientId"`
	ClientName string `db:"client_name" json:"clientName"`

	Date time.Time `db:"date" json:"date"`

	// Status is a free-form label (e.g. "prepared", "shipped"); deliveries
	// carry no transition rules
	Status string `db:"status" json:"status"`

	Notes *string `db:"notes" json:"notes,omitempty"`

	Items []Item `db:"-" json:"items"`
}

// Item is one delivered product line.
type Item struct {
	LineNo int `db:"line_no" json:"lineNo"`

	ProductID   id.ID  `db:"product_id" json:"productId"`
	ProductName string `db:"product_name" json:"productName"`

	Quantity float64 `db:"quantity" json:"quantity"`
}

// Validate implements entity.Validatable.
func (d *Delivery) Validate(ctx context.Context) error {
	if id.IsNil(d.ClientID) {
		return apperror.NewValidation("client is required").
			WithDetail("field", "clientId")
	}
	if d.Date.IsZero() {
		return apperror.NewValidation("date is required").
			WithDetail("field", "date")
	}
	if len(d.Items) == 0 {
		return apperror.NewValidation("at least one line item is required").
			WithDetail("field", "items")
	}
	for i, item := range d.Items {
		if id.IsNil(item.ProductID) {
			return apperror.NewValidation("product is required").
				WithDetail("field", "items").
				WithDetail("lineNo", i+1)
		}
		if item.Quantity <= 0 {
			return apperror.NewValidation("quantity must be positive").
				WithDetail("field", "items").
				WithDetail("lineNo", i+1)
		}
	}
	return nil
}

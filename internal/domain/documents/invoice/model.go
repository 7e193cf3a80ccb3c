// Package invoice provides the Invoice document and its lifecycle engine:
// creation with line items, status transitions, header updates, deletion
// with artifact cleanup, and client history queries.
package invoice

import (
	"context"
	"time"

	"fakturo/internal/core/apperror"
	"fakturo/internal/core/entity"
	"fakturo/internal/core/id"
	"fakturo/internal/core/types"
	"fakturo/internal/domain/artifact"
)

// Invoice is the document header. Line items live in Items and share the
// invoice's lifetime.
type Invoice struct {
	entity.Base

	// Number is the unique business key (auto-generated when empty)
	Number string `db:"number" json:"number"`

	// DocumentType selects the rendering kind for artifacts
	DocumentType artifact.DocumentType `db:"document_type" json:"documentType"`

	// ClientID references the invoiced client
	ClientID id.ID `db:"client_id" json:"clientId"`

	// ClientName is a display snapshot taken at creation
	ClientName string `db:"client_name" json:"clientName"`

	// Date is the issue date
	Date time.Time `db:"date" json:"date"`

	// DueDate is the optional payment deadline
	DueDate *time.Time `db:"due_date" json:"dueDate,omitempty"`

	// Total is recomputed from items on every write; caller-supplied
	// totals are overwritten
	Total types.Money `db:"total" json:"total"`

	// Status follows the Draft→Issued→Paid / →Cancelled machine
	Status Status `db:"status" json:"status"`

	Notes *string `db:"notes" json:"notes,omitempty"`

	// Items is the ordered table part
	Items []Item `db:"-" json:"items"`
}

// Item is one product-quantity-price line. Product name and unit price are
// snapshots; later product edits never change issued invoices.
type Item struct {
	// LineNo preserves presentation order (1-based)
	LineNo int `db:"line_no" json:"lineNo"`

	ProductID   id.ID  `db:"product_id" json:"productId"`
	ProductName string `db:"product_name" json:"productName"`

	Quantity float64 `db:"quantity" json:"quantity"`

	// UnitPrice is the snapshot price at invoicing time
	UnitPrice types.Money `db:"unit_price" json:"unitPrice"`

	// Total = Quantity × UnitPrice, recomputed by the engine
	Total types.Money `db:"total" json:"total"`
}

// New creates a new draft invoice.
func New(docType artifact.DocumentType, clientID id.ID, date time.Time) *Invoice {
	return &Invoice{
		Base:         entity.NewBase(),
		DocumentType: docType,
		ClientID:     clientID,
		Date:         date,
		Status:       StatusDraft,
		Items:        make([]Item, 0),
	}
}

// RecalculateTotals renumbers lines, recomputes each line total from the
// snapshot price, and overwrites the header total with the sum.
func (inv *Invoice) RecalculateTotals() {
	total := types.ZeroMoney()
	for i := range inv.Items {
		item := &inv.Items[i]
		item.LineNo = i + 1
		item.Total = item.UnitPrice.Mul(types.NewMoneyFromFloat(item.Quantity))
		total = total.Add(item.Total)
	}
	inv.Total = total
}

// Validate implements entity.Validatable.
func (inv *Invoice) Validate(ctx context.Context) error {
	if id.IsNil(inv.ClientID) {
		return apperror.NewValidation("client is required").
			WithDetail("field", "clientId")
	}
	if inv.Date.IsZero() {
		return apperror.NewValidation("date is required").
			WithDetail("field", "date")
	}
	if !inv.DocumentType.Valid() {
		return apperror.NewValidation("unknown document type").
			WithDetail("field", "documentType").
			WithDetail("value", string(inv.DocumentType))
	}
	if len(inv.Items) == 0 {
		return apperror.NewValidation("at least one line item is required").
			WithDetail("field", "items")
	}
	for i, item := range inv.Items {
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
		if item.UnitPrice.IsNegative() {
			return apperror.NewValidation("unit price must not be negative").
				WithDetail("field", "items").
				WithDetail("lineNo", i+1)
		}
	}
	return nil
}

// ArtifactPeriod returns the year and month used to key rendered documents.
func (inv *Invoice) ArtifactPeriod() (int, int) {
	return inv.Date.Year(), int(inv.Date.Month())
}

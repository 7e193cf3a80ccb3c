// Package artifact defines the document artifact store: content-addressed
// storage for rendered invoice documents. The engine never produces the
// content, it only stores and retrieves it.
package artifact

import (
	"context"
	"strings"

	"fakturo/internal/core/apperror"
)

// DocumentType identifies which rendering of an invoice an artifact holds.
type DocumentType string

const (
	TypeInvoice      DocumentType = "invoice"
	TypeProforma     DocumentType = "proforma"
	TypeDeliveryNote DocumentType = "delivery-note"
)

// AllTypes lists every document type; cleanup after invoice deletion walks
// this list.
func AllTypes() []DocumentType {
	return []DocumentType{TypeInvoice, TypeProforma, TypeDeliveryNote}
}

// Valid reports whether t is a known document type.
func (t DocumentType) Valid() bool {
	switch t {
	case TypeInvoice, TypeProforma, TypeDeliveryNote:
		return true
	}
	return false
}

// Key addresses one artifact. The relationship to the invoice record is
// convention-based through InvoiceNumber and period; orphaned and missing
// artifacts are independent, non-fatal conditions.
type Key struct {
	// DocumentType partitions artifacts by rendering kind
	DocumentType DocumentType

	// Year and Month partition storage to bound directory fan-out and
	// allow cheap periodic archival
	Year  int
	Month int

	// InvoiceNumber is the business key of the owning invoice
	InvoiceNumber string
}

// Validate checks the key is addressable.
func (k Key) Validate() error {
	if !k.DocumentType.Valid() {
		return apperror.NewValidation("unknown document type").
			WithDetail("field", "documentType").
			WithDetail("value", string(k.DocumentType))
	}
	if k.Year < 1970 || k.Year > 9999 {
		return apperror.NewValidation("invalid year").
			WithDetail("field", "year")
	}
	if k.Month < 1 || k.Month > 12 {
		return apperror.NewValidation("invalid month").
			WithDetail("field", "month")
	}
	if strings.TrimSpace(k.InvoiceNumber) == "" {
		return apperror.NewValidation("invoice number is required").
			WithDetail("field", "invoiceNumber")
	}
	return nil
}

// Store persists rendered documents.
// Save is idempotent last-write-wins; Load and Delete fail with NotFound for
// absent keys. Transient medium failures surface as StorageUnavailable after
// bounded retry.
type Store interface {
	// Save stores content under key, overwriting any previous artifact,
	// and returns the storage path.
	Save(ctx context.Context, key Key, content []byte) (string, error)

	// Load retrieves the content stored under key.
	Load(ctx context.Context, key Key) ([]byte, error)

	// Delete removes the artifact under key.
	Delete(ctx context.Context, key Key) error
}

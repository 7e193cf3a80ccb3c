package dto

// InvoiceItemRequest is one submitted line item. UnitPrice is optional; when
// omitted the current catalog price is snapshotted.
type InvoiceItemRequest struct {
	ProductID string  `json:"productId" binding:"required"`
	Quantity  float64 `json:"quantity" binding:"required"`
	UnitPrice string  `json:"unitPrice,omitempty"`
}

// CreateInvoiceRequest creates an invoice. Number is optional; when omitted
// the next sequential number is assigned.
type CreateInvoiceRequest struct {
	Number       string               `json:"number,omitempty"`
	DocumentType string               `json:"documentType" binding:"required"`
	ClientID     string               `json:"clientId" binding:"required"`
	Date         string               `json:"date" binding:"required"`
	DueDate      string               `json:"dueDate,omitempty"`
	Notes        string               `json:"notes,omitempty"`
	Items        []InvoiceItemRequest `json:"items" binding:"required"`
}

// UpdateInvoiceRequest replaces header fields and the full item set of a
// mutable invoice.
type UpdateInvoiceRequest struct {
	ClientID string               `json:"clientId" binding:"required"`
	Date     string               `json:"date" binding:"required"`
	DueDate  string               `json:"dueDate,omitempty"`
	Notes    string               `json:"notes,omitempty"`
	Items    []InvoiceItemRequest `json:"items" binding:"required"`
}

// UpdateInvoiceStatusRequest moves an invoice along the lifecycle.
type UpdateInvoiceStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

package dto

// DeliveryItemRequest is one submitted delivery line.
type DeliveryItemRequest struct {
	ProductID string  `json:"productId" binding:"required"`
	Quantity  float64 `json:"quantity" binding:"required"`
}

// CreateDeliveryRequest creates a delivery note.
type CreateDeliveryRequest struct {
	Number   string                `json:"number,omitempty"`
	ClientID string                `json:"clientId" binding:"required"`
	Date     string                `json:"date" binding:"required"`
	Status   string                `json:"status,omitempty"`
	Notes    string                `json:"notes,omitempty"`
	Items    []DeliveryItemRequest `json:"items" binding:"required"`
}

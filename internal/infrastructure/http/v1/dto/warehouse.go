package dto

// AddWarehouseItemRequest adds a product to a warehouse group.
type AddWarehouseItemRequest struct {
	ProductID string  `json:"productId" binding:"required"`
	Quantity  float64 `json:"quantity"`
	Notes     string  `json:"notes,omitempty"`
}

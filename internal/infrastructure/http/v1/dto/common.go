// Package dto contains request and response shapes for the HTTP API.
package dto

// IDResponse returns a created entity's ID.
type IDResponse struct {
	ID string `json:"id"`
}

// SuccessResponse is a generic success acknowledgement.
type SuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// ListResponse wraps a listing.
type ListResponse struct {
	Items any `json:"items"`
	Count int `json:"count"`
}

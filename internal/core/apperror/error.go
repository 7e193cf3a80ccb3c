// Package apperror provides the structured error type used across the engine.
// Callers match on the machine-readable code, never on message text.
package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Error codes. These are the engine's whole failure vocabulary; every error
// that crosses a service boundary carries exactly one of them.
const (
	// Infrastructure errors (5xx)
	CodeInternal           = "INTERNAL_ERROR"
	CodeStorageUnavailable = "STORAGE_UNAVAILABLE"

	// Validation errors (400)
	CodeValidation = "VALIDATION_ERROR"

	// Business rule violations (422)
	CodeInvalidTransition = "INVALID_TRANSITION"
	CodeImmutableState    = "IMMUTABLE_STATE"

	// Authentication (401)
	CodeUnauthorized = "UNAUTHORIZED"

	// Not found (404)
	CodeNotFound = "NOT_FOUND"

	// Conflict (409)
	CodeDuplicateKey        = "DUPLICATE_KEY"
	CodeReferentialConflict = "REFERENTIAL_CONFLICT"
)

// AppError is the standard error type for the engine.
// It implements the error interface and provides structured details for API
// responses.
type AppError struct {
	// Code is a machine-readable error identifier
	Code string `json:"code"`

	// Message is a human-readable error description
	Message string `json:"message"`

	// Details contains additional context (operation, keys, field names)
	Details map[string]any `json:"details,omitempty"`

	// HTTPStatus is the suggested HTTP status code
	HTTPStatus int `json:"-"`

	// Err is the underlying error (not exposed in JSON)
	Err error `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *AppError) Unwrap() error {
	return e.Err
}

// WithDetail adds a key-value pair to error details.
func (e *AppError) WithDetail(key string, value any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// WithCause sets the underlying error.
func (e *AppError) WithCause(err error) *AppError {
	e.Err = err
	return e
}

// --- Factory functions ---

// NewValidation creates a validation error (400).
func NewValidation(message string) *AppError {
	return &AppError{
		Code:       CodeValidation,
		Message:    message,
		HTTPStatus: http.StatusBadRequest,
	}
}

// NewNotFound creates a not found error (404).
func NewNotFound(entity string, key any) *AppError {
	return &AppError{
		Code:       CodeNotFound,
		Message:    fmt.Sprintf("%s not found", entity),
		HTTPStatus: http.StatusNotFound,
		Details:    map[string]any{"entity": entity, "key": key},
	}
}

// NewDuplicateKey creates a natural-key collision error (409).
func NewDuplicateKey(entity, field string, value any) *AppError {
	return &AppError{
		Code:       CodeDuplicateKey,
		Message:    fmt.Sprintf("%s with this %s already exists", entity, field),
		HTTPStatus: http.StatusConflict,
		Details:    map[string]any{"entity": entity, "field": field, "value": value},
	}
}

// NewReferentialConflict creates an error for deletes blocked by dependents (409).
func NewReferentialConflict(entity string, key any) *AppError {
	return &AppError{
		Code:       CodeReferentialConflict,
		Message:    fmt.Sprintf("%s is referenced by other records and cannot be deleted", entity),
		HTTPStatus: http.StatusConflict,
		Details:    map[string]any{"entity": entity, "key": key},
	}
}

// NewInvalidTransition creates a status transition error (422).
func NewInvalidTransition(from, to string) *AppError {
	return &AppError{
		Code:       CodeInvalidTransition,
		Message:    fmt.Sprintf("cannot transition from %s to %s", from, to),
		HTTPStatus: http.StatusUnprocessableEntity,
		Details:    map[string]any{"from": from, "to": to},
	}
}

// NewImmutableState creates an error for mutations of terminal documents (422).
func NewImmutableState(entity string, status string) *AppError {
	return &AppError{
		Code:       CodeImmutableState,
		Message:    fmt.Sprintf("%s in status %s can no longer be modified", entity, status),
		HTTPStatus: http.StatusUnprocessableEntity,
		Details:    map[string]any{"entity": entity, "status": status},
	}
}

// NewStorageUnavailable wraps a storage medium failure that survived bounded
// retry (503).
func NewStorageUnavailable(operation string, err error) *AppError {
	return &AppError{
		Code:       CodeStorageUnavailable,
		Message:    "storage unavailable",
		HTTPStatus: http.StatusServiceUnavailable,
		Details:    map[string]any{"operation": operation},
		Err:        err,
	}
}

// NewUnauthorized creates an authentication error (401).
func NewUnauthorized(message string) *AppError {
	return &AppError{
		Code:       CodeUnauthorized,
		Message:    message,
		HTTPStatus: http.StatusUnauthorized,
	}
}

// NewInternal creates an internal error; details stay server-side.
func NewInternal(err error) *AppError {
	return &AppError{
		Code:       CodeInternal,
		Message:    "internal error",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

// --- Helpers ---

// AsAppError extracts an AppError from the error chain.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// IsAppError reports whether err carries an AppError.
func IsAppError(err error) bool {
	_, ok := AsAppError(err)
	return ok
}

// IsCode reports whether err carries an AppError with the given code.
func IsCode(err error, code string) bool {
	if appErr, ok := AsAppError(err); ok {
		return appErr.Code == code
	}
	return false
}

// IsNotFound reports whether err is a CodeNotFound error.
func IsNotFound(err error) bool {
	return IsCode(err, CodeNotFound)
}

// IsDuplicateKey reports whether err is a CodeDuplicateKey error.
func IsDuplicateKey(err error) bool {
	return IsCode(err, CodeDuplicateKey)
}

// GetHTTPStatus returns the appropriate HTTP status for any error.
func GetHTTPStatus(err error) int {
	if appErr, ok := AsAppError(err); ok {
		return appErr.HTTPStatus
	}
	return http.StatusInternalServerError
}

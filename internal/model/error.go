package model

import "net/http"

// ErrorKind tags the closed set of operational error variants.
type ErrorKind int

const (
	// KindNotFound is raised when a lookup by id or SKU yields no row.
	KindNotFound ErrorKind = iota
	// KindConflict is raised when a write would violate SKU uniqueness.
	KindConflict
	// KindValidation is raised when an input fails schema checks.
	KindValidation
)

// Standard error codes for API responses
const (
	ErrCodeNotFound      = "NOT_FOUND"
	ErrCodeConflict      = "CONFLICT"
	ErrCodeValidation    = "VALIDATION_ERROR"
	ErrCodeInternalError = "INTERNAL_SERVER_ERROR"
)

// FieldError describes a single field-level validation violation.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error is an operational error: an expected, client-facing failure carrying
// an HTTP status and a machine-readable code. Anything that is not an *Error
// is treated as an unclassified internal failure by the HTTP layer.
type Error struct {
	Kind    ErrorKind
	Status  int
	Code    string
	Message string
	// Details carries the ordered field violations for validation errors.
	Details []FieldError
}

func (e *Error) Error() string {
	return e.Message
}

// NewNotFound builds a 404 error for a missing resource.
func NewNotFound(resource string) *Error {
	return &Error{
		Kind:    KindNotFound,
		Status:  http.StatusNotFound,
		Code:    ErrCodeNotFound,
		Message: resource + " não encontrado",
	}
}

// NewConflict builds a 409 error for a SKU uniqueness violation.
func NewConflict(message string) *Error {
	return &Error{
		Kind:    KindConflict,
		Status:  http.StatusConflict,
		Code:    ErrCodeConflict,
		Message: message,
	}
}

// NewValidation builds a 400 error carrying the full ordered list of field
// violations, not just the first.
func NewValidation(message string, details []FieldError) *Error {
	return &Error{
		Kind:    KindValidation,
		Status:  http.StatusBadRequest,
		Code:    ErrCodeValidation,
		Message: message,
		Details: details,
	}
}

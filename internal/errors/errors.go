package errors

import "fmt"

// ErrorCode represents a tickdown error code.
type ErrorCode string

const (
	ErrInvalidRequest ErrorCode = "INVALID_REQUEST" // 400
	ErrNotFound       ErrorCode = "NOT_FOUND"       // 404
	ErrInternal       ErrorCode = "INTERNAL"        // 500
)

// TickError represents a structured error with code, status, and details.
type TickError struct {
	Code    ErrorCode
	Status  int
	Message string
	Details map[string]any
}

// Error implements the error interface.
func (e *TickError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewInvalidRequest creates a 400 error for invalid request parameters.
func NewInvalidRequest(msg string) *TickError {
	return &TickError{
		Code:    ErrInvalidRequest,
		Status:  400,
		Message: msg,
	}
}

// NewNotFound creates a 404 error for when a timer cannot be found.
func NewNotFound(id string) *TickError {
	return &TickError{
		Code:    ErrNotFound,
		Status:  404,
		Message: fmt.Sprintf("timer not found: %s", id),
		Details: map[string]any{"id": id},
	}
}

// NewInternal creates a 500 error wrapping an unexpected failure.
// The underlying error is kept in Details for logging; callers surface
// only the generic message.
func NewInternal(err error) *TickError {
	return &TickError{
		Code:    ErrInternal,
		Status:  500,
		Message: "an internal error occurred",
		Details: map[string]any{"cause": err.Error()},
	}
}

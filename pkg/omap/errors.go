package omap

import (
	"errors"
	"fmt"
)

// Error represents an omap usage error with a structured error code.
type Error struct {
	Code    string // Error code (e.g., "OM-ARG-1001")
	Message string // Human-readable message
	Details string // Optional additional details
	Cause   error  // Underlying error (if any)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("[%s] %s: %s", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying error for errors.Unwrap() support.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is implements errors.Is() support for error comparison.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// NewError creates a new Error with the given code and message.
func NewError(code, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// WithDetails returns a copy of the error with additional details.
func (e *Error) WithDetails(details string) *Error {
	return &Error{
		Code:    e.Code,
		Message: e.Message,
		Details: details,
		Cause:   e.Cause,
	}
}

// IsError checks if an error is an omap Error with the given code.
// If code is empty, it only checks if the error is an omap Error.
func IsError(err error, code string) bool {
	var oe *Error
	if errors.As(err, &oe) {
		if code == "" {
			return true
		}
		return oe.Code == code
	}
	return false
}

var (
	// ErrInvalidArgument indicates an operation was invoked on a value
	// that is not a properly constructed ordered map, such as a nil or
	// zero-value Map missing its order-tracking state. This is a
	// programmer error at the call site; methods panic with this error
	// rather than proceed on inconsistent state.
	ErrInvalidArgument = NewError("OM-ARG-1001", "not an ordered map")
)

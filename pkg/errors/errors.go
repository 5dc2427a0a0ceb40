package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Error represents a typed domain error with HTTP awareness. Diagnostics
// carries structured context (backtrack counts, capacity deficits, ...) for
// callers that need more than a message.
type Error struct {
	Code        string         `json:"code"`
	Message     string         `json:"message"`
	Status      int            `json:"status"`
	Diagnostics map[string]any `json:"diagnostics,omitempty"`
	Err         error          `json:"-"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped error.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// New creates a new Error instance.
func New(code string, status int, message string) *Error {
	return &Error{Code: code, Status: status, Message: message}
}

// Wrap attaches context to an existing error.
func Wrap(err error, code string, status int, message string) *Error {
	return &Error{Code: code, Status: status, Message: message, Err: err}
}

// WithDiagnostics returns a copy of e carrying the given diagnostics map.
func (e *Error) WithDiagnostics(diagnostics map[string]any) *Error {
	if e == nil {
		return nil
	}
	clone := *e
	clone.Diagnostics = diagnostics
	return &clone
}

// Predefined errors for common scenarios.
var (
	ErrNotFound          = New("NOT_FOUND", http.StatusNotFound, "resource not found")
	ErrConflict          = New("CONFLICT", http.StatusBadRequest, "conflict")
	ErrValidation        = New("VALIDATION_ERROR", http.StatusBadRequest, "validation failed")
	ErrInternal          = New("INTERNAL_ERROR", http.StatusInternalServerError, "internal server error")
	ErrInvalidConfig     = New("INVALID_CONFIG", http.StatusUnprocessableEntity, "invalid configuration")
	ErrInsufficientSlots = New("INSUFFICIENT_SLOTS", http.StatusUnprocessableEntity, "not enough slots for all subjects")
	ErrNoSolution        = New("NO_SOLUTION", http.StatusUnprocessableEntity, "no valid timetable found")
	ErrInsufficientHalls = New("INSUFFICIENT_HALL_CAPACITY", http.StatusUnprocessableEntity, "insufficient hall capacity")
)

// FromError normalises any error into an *Error.
func FromError(err error) *Error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return Wrap(err, ErrInternal.Code, ErrInternal.Status, ErrInternal.Message)
}

// Clone returns a copy of the error allowing for message overrides.
func Clone(err *Error, message string) *Error {
	if err == nil {
		return nil
	}
	clone := *err
	if message != "" {
		clone.Message = message
	}
	return &clone
}

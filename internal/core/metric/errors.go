// Package metric defines the spacetime metric models for GravSweep.
package metric

import (
	"errors"
	"fmt"
)

// DomainError represents a business domain error with a structured error
// code. Codes are stable identifiers shared by the HTTP API and the CLI.
type DomainError struct {
	Code    string // Error code (e.g., "GS-MODL-4040")
	Message string // Human-readable message
	Details string // Optional additional details
	Cause   error  // Underlying error (if any)
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("[%s] %s: %s", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying error for errors.Unwrap() support.
func (e *DomainError) Unwrap() error {
	return e.Cause
}

// Is implements errors.Is() support: two DomainErrors match on code.
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// NewDomainError creates a new DomainError with the given code and message.
func NewDomainError(code, message string) *DomainError {
	return &DomainError{Code: code, Message: message}
}

// WithDetails returns a copy of the error with additional details.
func (e *DomainError) WithDetails(details string) *DomainError {
	return &DomainError{Code: e.Code, Message: e.Message, Details: details, Cause: e.Cause}
}

// WithCause returns a copy of the error wrapping the given cause.
func (e *DomainError) WithCause(cause error) *DomainError {
	return &DomainError{Code: e.Code, Message: e.Message, Details: e.Details, Cause: cause}
}

// IsDomainError checks if an error is a DomainError with the given code.
// An empty code matches any DomainError.
func IsDomainError(err error, code string) bool {
	var de *DomainError
	if errors.As(err, &de) {
		if code == "" {
			return true
		}
		return de.Code == code
	}
	return false
}

// GetErrorCode extracts the error code from an error if it's a DomainError.
func GetErrorCode(err error) string {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Code
	}
	return ""
}

// Model errors (MODL).
var (
	// ErrModelNotFound indicates the requested model ID is not registered.
	ErrModelNotFound = NewDomainError("GS-MODL-4040", "model not found")

	// ErrModelExists indicates a duplicate model registration.
	ErrModelExists = NewDomainError("GS-MODL-4090", "model already registered")
)

// Run errors (RUN).
var (
	// ErrRunNotFound indicates the requested evaluation run was not found.
	ErrRunNotFound = NewDomainError("GS-RUN-4040", "run not found")
)

// Argument errors (ARG).
var (
	// ErrInvalidArgument indicates an invalid argument.
	ErrInvalidArgument = NewDomainError("GS-ARG-1001", "invalid argument")

	// ErrMissingArgument indicates a required argument is missing.
	ErrMissingArgument = NewDomainError("GS-ARG-1002", "missing required argument")
)

// System errors (SYS).
var (
	// ErrInternal indicates an internal error.
	ErrInternal = NewDomainError("GS-SYS-5000", "internal error")

	// ErrStorage indicates a storage layer error.
	ErrStorage = NewDomainError("GS-SYS-5001", "storage error")
)

package domain

import (
	"errors"
	"fmt"
	"net/http"
)

// HTTPError defines errors that can be mapped to HTTP status codes.
type HTTPError interface {
	error
	StatusCode() int
}

// Domain error types implementing HTTPError interface
type (
	// ValidationError indicates invalid input
	ValidationError struct {
		Message string
	}

	// UnauthorizedError indicates authentication failure
	UnauthorizedError struct {
		Message string
	}

	// RequestTooLargeError indicates a request body over the size limit
	RequestTooLargeError struct {
		Limit int64
	}
)

// NewValidationError returns a ValidationError whose message starts with "validation failed: "
func NewValidationError(detail string) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf("%v: %s", ErrValidation, detail)}
}

// NewUnauthorizedError returns an UnauthorizedError whose message starts with "unauthorized: "
func NewUnauthorizedError(detail string) *UnauthorizedError {
	return &UnauthorizedError{Message: fmt.Sprintf("%v: %s", ErrUnauthorized, detail)}
}

// Error implementations
func (e *ValidationError) Error() string   { return e.Message }
func (e *UnauthorizedError) Error() string { return e.Message }
func (e *RequestTooLargeError) Error() string {
	return fmt.Sprintf("request body exceeds %d bytes", e.Limit)
}

// StatusCode implementations (HTTPError interface)
func (e *ValidationError) StatusCode() int      { return http.StatusBadRequest }
func (e *UnauthorizedError) StatusCode() int    { return http.StatusUnauthorized }
func (e *RequestTooLargeError) StatusCode() int { return http.StatusRequestEntityTooLarge }

// Is allows errors.Is() to match typed errors against their sentinels
func (e *ValidationError) Is(target error) bool   { return target == ErrValidation }
func (e *UnauthorizedError) Is(target error) bool { return target == ErrUnauthorized }

// Sentinel errors - use with errors.Is()
var (
	ErrValidation   = errors.New("validation failed")
	ErrUnauthorized = errors.New("unauthorized")

	// ErrConfiguration marks settings that cannot produce meaningful output,
	// such as a page size below one.
	ErrConfiguration = errors.New("invalid configuration")
)

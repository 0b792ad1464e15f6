package utils

import (
	"errors"
	"fmt"
	"net/http"
)

// Sentinel errors for the application's failure taxonomy. Every failure the
// dashboard can encounter is one of these three kinds: the request could not
// complete (or returned a non-success status), the response body did not match
// the expected schema, or the operator's input was rejected before any network
// call was made.
var (
	ErrNetwork    = errors.New("network failure")
	ErrParse      = errors.New("parse failure")
	ErrValidation = errors.New("validation failure")
)

// AppError represents an application error with additional context.
// Failures are handled at the point of occurrence and surfaced only as
// operator-visible strings; AppError carries what those strings need.
type AppError struct {
	Err        error  // The underlying sentinel error
	StatusCode int    // HTTP status code observed or implied
	Message    string // User-facing or backend-supplied error message
	DevInfo    string // Additional information for developers
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *AppError) Unwrap() error {
	return e.Err
}

// NewNetworkError creates an error for a request that could not complete or
// returned a non-success status. Per the loader contract, the two cases are
// treated identically.
func NewNetworkError(statusCode int, devInfo string) *AppError {
	return &AppError{
		Err:        ErrNetwork,
		StatusCode: statusCode,
		DevInfo:    devInfo,
	}
}

// NewParseError creates an error for a response body that is not valid per
// the expected schema.
func NewParseError(err error) *AppError {
	devInfo := ""
	if err != nil {
		devInfo = err.Error()
	}
	return &AppError{
		Err:        ErrParse,
		StatusCode: http.StatusOK,
		DevInfo:    devInfo,
	}
}

// NewValidationError creates an error for operator input rejected before any
// network call is made.
func NewValidationError(message string) *AppError {
	return &AppError{
		Err:        ErrValidation,
		StatusCode: http.StatusBadRequest,
		Message:    message,
	}
}

// NewUploadError creates a network error that carries the backend's
// human-readable message extracted from an error body.
func NewUploadError(statusCode int, message string) *AppError {
	return &AppError{
		Err:        ErrNetwork,
		StatusCode: statusCode,
		Message:    message,
		DevInfo:    fmt.Sprintf("upload rejected with status %d", statusCode),
	}
}

// IsNetworkError checks if an error is a network failure.
func IsNetworkError(err error) bool {
	return errors.Is(err, ErrNetwork)
}

// IsParseError checks if an error is a parse failure.
func IsParseError(err error) bool {
	return errors.Is(err, ErrParse)
}

// IsValidationError checks if an error is a validation failure.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrValidation)
}

// UserMessage returns the backend-supplied message from an error, if any.
// An empty return means the caller should fall back to its generic text.
func UserMessage(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return ""
}

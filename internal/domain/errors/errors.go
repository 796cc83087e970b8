package errors

import (
	"net/http"

	"tontine/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// Is matches errors carrying the same business code, so WithDetails copies still match
// the predefined sentinel.
func (e *BaseError) Is(target error) bool {
	other, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == other.errorCode
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Session-related errors
	ErrNotAuthenticated = NewBaseError(
		http.StatusUnauthorized,
		"NOT_AUTHENTICATED",
		"Please sign in to continue",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Incorrect email or password",
		"",
	)

	ErrInvalidIdentityToken = NewBaseError(
		http.StatusBadGateway,
		"INVALID_IDENTITY_TOKEN",
		"The server returned an unreadable session",
		"",
	)

	// Password workflow errors
	ErrSubmissionInProgress = NewBaseError(
		http.StatusConflict,
		"SUBMISSION_IN_PROGRESS",
		"A submission is already in progress",
		"",
	)

	ErrWorkflowClosed = NewBaseError(
		http.StatusConflict,
		"WORKFLOW_CLOSED",
		"This form can no longer be used",
		"",
	)

	ErrFormNotFound = NewBaseError(
		http.StatusNotFound,
		"FORM_NOT_FOUND",
		"Form not found",
		"",
	)

	ErrUnknownField = NewBaseError(
		http.StatusBadRequest,
		"UNKNOWN_FIELD",
		"Unknown form field",
		"",
	)

	ErrUnknownVariant = NewBaseError(
		http.StatusBadRequest,
		"UNKNOWN_VARIANT",
		"Unknown password change flow",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	// Backend-related errors
	ErrBackendUnavailable = NewBaseError(
		http.StatusBadGateway,
		"BACKEND_UNAVAILABLE",
		"Unable to reach the server, please check your connection",
		"",
	)

	// Tontine-related errors
	ErrTontineNotFound = NewBaseError(
		http.StatusNotFound,
		"TONTINE_NOT_FOUND",
		"Tontine not found",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal error",
		"",
	)
)

package apperror

import (
	"errors"
	"net/http"
)

// Kind classifies an error independently of the transport.
type Kind string

const (
	KindNotFound      Kind = "NotFound"
	KindInvalidInput  Kind = "InvalidInput"
	KindInternal      Kind = "InternalFailure"
	KindAssetNotFound Kind = "AssetNotFound"
	KindUnauthorized  Kind = "Unauthorized"
	KindForbidden     Kind = "Forbidden"
	KindConflict      Kind = "Conflict"
)

// AppError represents an application error with HTTP status code
type AppError struct {
	Code    int          `json:"code"`
	Kind    Kind         `json:"kind"`
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors,omitempty"`

	cause error
}

// FieldError represents a validation error for a specific field
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.cause
}

// Common errors
var (
	ErrUnauthorized       = &AppError{Code: http.StatusUnauthorized, Kind: KindUnauthorized, Message: "Unauthorized"}
	ErrForbidden          = &AppError{Code: http.StatusForbidden, Kind: KindForbidden, Message: "Forbidden"}
	ErrInternalServer     = &AppError{Code: http.StatusInternalServerError, Kind: KindInternal, Message: "Internal server error"}
	ErrInvalidCredentials = &AppError{Code: http.StatusBadRequest, Kind: KindInvalidInput, Message: "Invalid email or password"}
	ErrInvalidToken       = &AppError{Code: http.StatusUnauthorized, Kind: KindUnauthorized, Message: "Invalid or expired token"}
)

// NewNotFoundError creates a not found error for the named resource
func NewNotFoundError(resource string) *AppError {
	return &AppError{
		Code:    http.StatusNotFound,
		Kind:    KindNotFound,
		Message: resource + " not found",
	}
}

// NewInvalidInputError creates a 400 error carrying the precise reason
func NewInvalidInputError(message string) *AppError {
	return &AppError{
		Code:    http.StatusBadRequest,
		Kind:    KindInvalidInput,
		Message: message,
	}
}

// NewValidationError creates an invalid input error with per-field details
func NewValidationError(message string, fieldErrors []FieldError) *AppError {
	return &AppError{
		Code:    http.StatusBadRequest,
		Kind:    KindInvalidInput,
		Message: message,
		Errors:  fieldErrors,
	}
}

// NewInternalError wraps an unexpected failure without exposing its text
func NewInternalError(message string, cause error) *AppError {
	return &AppError{
		Code:    http.StatusInternalServerError,
		Kind:    KindInternal,
		Message: message,
		cause:   cause,
	}
}

// NewAssetNotFoundError reports a static asset the renderer could not read
func NewAssetNotFoundError(path string, cause error) *AppError {
	return &AppError{
		Code:    http.StatusInternalServerError,
		Kind:    KindAssetNotFound,
		Message: "Asset not found: " + path,
		cause:   cause,
	}
}

// NewConflictError creates a conflict error with a custom message
func NewConflictError(message string) *AppError {
	return &AppError{
		Code:    http.StatusConflict,
		Kind:    KindConflict,
		Message: message,
	}
}

// IsAppError checks if an error is an AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// IsKind reports whether err is an AppError of the given kind
func IsKind(err error, kind Kind) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind == kind
	}
	return false
}

// GetAppError converts an error to AppError if possible.
// Unknown errors are reported as a generic internal failure.
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return NewInternalError(ErrInternalServer.Message, err)
}

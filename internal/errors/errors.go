// Package errors provides the error types used across the finance tracker
// API. Gateway and auth errors are AppErrors so that handlers can map them
// to responses without leaking internal details to clients.
package errors

import "net/http"

// AppError is a structured application error carrying an internal error
// code, a client-safe message, an HTTP status code, and an optional wrapped
// internal error. Codes never reach the wire; responses carry only the
// message.
type AppError struct {
	Code       string
	Message    string
	StatusCode int
	Internal   error
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Wrap returns a copy of sentinel carrying internal as the wrapped cause.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		StatusCode: sentinel.StatusCode,
		Internal:   internal,
	}
}

// WithMessage returns a copy of sentinel with a custom client-safe message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    message,
		StatusCode: sentinel.StatusCode,
		Internal:   sentinel.Internal,
	}
}

// The API distinguishes exactly two failure kinds to clients, both mapped
// to 400 with a short text body. USER_NOT_FOUND exists for internal use
// only: the login handler replaces it with INVALID_CREDENTIALS so unknown
// emails and wrong passwords are indistinguishable on the wire.
var (
	ErrInvalidInput       = &AppError{Code: "INVALID_INPUT", Message: "Invalid input", StatusCode: http.StatusBadRequest}
	ErrInvalidCredentials = &AppError{Code: "INVALID_CREDENTIALS", Message: "Invalid credentials", StatusCode: http.StatusBadRequest}
	ErrInvalidToken       = &AppError{Code: "INVALID_TOKEN", Message: "Invalid token", StatusCode: http.StatusBadRequest}
	ErrUserNotFound       = &AppError{Code: "USER_NOT_FOUND", Message: "User not found", StatusCode: http.StatusBadRequest}
	ErrQueryFailed        = &AppError{Code: "QUERY_FAILED", Message: "Database query failed", StatusCode: http.StatusBadRequest}
)

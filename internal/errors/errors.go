// Package errors provides the typed error outcomes used across the service.
// Every failed operation yields an *AppError; nothing reaches the HTTP edge
// as a bare panic or an unclassified error.
package errors

import "net/http"

// AppError is a structured application error with a stable code, a
// human-readable message, the HTTP status it maps to, and an optional
// wrapped internal error.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Internal   error  `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Wrap returns a copy of sentinel carrying internal as its wrapped cause.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		StatusCode: sentinel.StatusCode,
		Internal:   internal,
	}
}

// WithMessage returns a copy of sentinel with a more specific message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    message,
		StatusCode: sentinel.StatusCode,
		Internal:   sentinel.Internal,
	}
}

// Validation returns a client-detected, pre-submission rejection. These never
// reach the upstream API.
func Validation(reason string) *AppError {
	return WithMessage(ErrValidationFailed, reason)
}

// Upstream returns an upstream rejection carrying the most specific message
// available: the server-provided one when present, else the generic fallback.
func Upstream(message string, internal error) *AppError {
	if message == "" {
		return Wrap(ErrUpstream, internal)
	}
	return &AppError{
		Code:       ErrUpstream.Code,
		Message:    message,
		StatusCode: ErrUpstream.StatusCode,
		Internal:   internal,
	}
}

// General errors.
var (
	ErrInvalidInput   = &AppError{Code: "INVALID_INPUT", Message: "Invalid input", StatusCode: http.StatusBadRequest}
	ErrNotFound       = &AppError{Code: "NOT_FOUND", Message: "Resource not found", StatusCode: http.StatusNotFound}
	ErrInternalServer = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
)

// Ledger errors.
var (
	// ErrValidationFailed rejects a candidate transaction before submission.
	ErrValidationFailed = &AppError{Code: "VALIDATION_FAILED", Message: "Transaction failed validation", StatusCode: http.StatusBadRequest}

	// ErrUpstream reports that the upstream money manager API rejected a
	// request or was unreachable.
	ErrUpstream = &AppError{Code: "UPSTREAM_ERROR", Message: "Upstream request failed", StatusCode: http.StatusBadGateway}

	// ErrRefreshInFlight is informational, not a failure: a redundant refresh
	// was suppressed because one for the same collection is still outstanding.
	// The cached snapshot stays valid and no new request was issued.
	ErrRefreshInFlight = &AppError{Code: "REFRESH_IN_FLIGHT", Message: "Refresh already in progress", StatusCode: http.StatusAccepted}

	// ErrUnknownLedger rejects a ledger type other than income or expense.
	ErrUnknownLedger = &AppError{Code: "UNKNOWN_LEDGER", Message: "Ledger type must be income or expense", StatusCode: http.StatusBadRequest}
)

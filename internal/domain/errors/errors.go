package errors

import (
	"fmt"
	"net/http"

	"tripplanner/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface.
// A BaseError may belong to a broader kind; errors.Is matches both its own
// code and every kind above it.
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
	kind      *BaseError
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

// newKindError creates an error that also matches kind under errors.Is.
func newKindError(kind *BaseError, errorCode, message string) *BaseError {
	return &BaseError{
		httpCode:  kind.httpCode,
		errorCode: errorCode,
		message:   message,
		kind:      kind,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	if e.details == "" {
		return e.message
	}

	return e.message + ": " + e.details
}

// Is matches on error code so copies produced by WithDetails still match their sentinel.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	for cur := e; cur != nil; cur = cur.kind {
		if cur.errorCode == t.errorCode {
			return true
		}
	}

	return false
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

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
		kind:      e.kind,
	}
}

// WithDetailsf is WithDetails with a format specifier.
func (e *BaseError) WithDetailsf(format string, args ...any) *BaseError {
	return e.WithDetails(fmt.Sprintf(format, args...))
}

// ErrInvalidArgument is the root of every contract violation reported by the planner.
var ErrInvalidArgument = NewBaseError(
	http.StatusBadRequest,
	"INVALID_ARGUMENT",
	"invalid argument",
	"",
)

// Planner contract violations. All of them satisfy errors.Is(err, ErrInvalidArgument).
var (
	ErrInvalidDays = newKindError(
		ErrInvalidArgument,
		"INVALID_DAYS",
		"day count is out of range",
	)

	ErrInvalidVisitDuration = newKindError(
		ErrInvalidArgument,
		"INVALID_VISIT_DURATION",
		"visit duration must be greater than zero",
	)

	ErrInvalidRating = newKindError(
		ErrInvalidArgument,
		"INVALID_RATING",
		"rating must be between 0 and 5",
	)

	ErrInvalidRelevance = newKindError(
		ErrInvalidArgument,
		"INVALID_RELEVANCE",
		"relevance score must be a finite non-negative number",
	)

	ErrInvalidPOI = newKindError(
		ErrInvalidArgument,
		"INVALID_POI",
		"point of interest is malformed",
	)

	ErrDuplicatePOI = newKindError(
		ErrInvalidArgument,
		"DUPLICATE_POI",
		"point of interest id is not unique",
	)

	ErrTooManyPOIs = newKindError(
		ErrInvalidArgument,
		"TOO_MANY_POIS",
		"too many points of interest",
	)

	ErrInvalidCategory = newKindError(
		ErrInvalidArgument,
		"INVALID_CATEGORY",
		"trip category is not supported",
	)

	ErrUnknownStrategy = newKindError(
		ErrInvalidArgument,
		"UNKNOWN_STRATEGY",
		"optimization strategy is not supported",
	)
)

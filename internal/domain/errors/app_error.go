// Package errors defines the errors the storefront reports to API clients.
//
// Every AppError maps to one HTTP status and one stable machine-readable code.
// Message is safe to show to shoppers; Details carries optional context that the
// response layer only discloses for 4xx statuses other than 401 and 403.
package errors

import (
	"storefront/internal/errors"
)

// AppError is an error with a client-facing representation.
type AppError interface {
	error
	HTTPCode() int
	ErrorCode() string
	Message() string
	Details() string
}

// BaseError is an immutable AppError value. Derive variants with WithDetails.
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

func (e *BaseError) Error() string {
	if e.details == "" {
		return e.message
	}

	return e.message + ": " + e.details
}

// Is matches any BaseError with the same code, so variants created by WithDetails
// still satisfy errors.Is against the predefined value.
func (e *BaseError) Is(target error) bool {
	other, ok := target.(*BaseError)

	return ok && other.errorCode == e.errorCode
}

func (e *BaseError) HTTPCode() int     { return e.httpCode }
func (e *BaseError) ErrorCode() string { return e.errorCode }
func (e *BaseError) Message() string   { return e.message }
func (e *BaseError) Details() string   { return e.details }

// WithDetails returns a copy carrying details.
func (e *BaseError) WithDetails(details string) *BaseError {
	dup := *e
	dup.details = details

	return &dup
}

// WrapMessage annotates the error for logs while keeping it an AppError for errors.As.
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

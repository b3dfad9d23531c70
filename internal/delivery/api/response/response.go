// Package response writes the JSON envelopes returned by the API.
//
// Successful calls answer {"data": ..., "meta": {...}}; failures answer
// {"error": {"code", "message", "details"?}, "meta": {...}}.
package response

import (
	"net/http"

	deliverycontext "storefront/internal/delivery/context"
	domainerrors "storefront/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// Meta is attached to every envelope.
type Meta struct {
	RequestID string `json:"request_id"`
}

type DataEnvelope struct {
	Data any   `json:"data"`
	Meta *Meta `json:"meta"`
}

type ErrorEnvelope struct {
	Error *ErrorBody `json:"error"`
	Meta  *Meta      `json:"meta"`
}

type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// MessageData is the payload of endpoints that only acknowledge an action.
type MessageData struct {
	Message string `json:"message"`
}

func meta(c echo.Context) *Meta {
	return &Meta{RequestID: deliverycontext.GetRequestID(c)}
}

func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, DataEnvelope{Data: data, Meta: meta(c)})
}

// Message answers 200 with {"message": message} as data.
func Message(c echo.Context, message string) error {
	return Success(c, http.StatusOK, MessageData{Message: message})
}

// discloses reports whether details may reach the client for statusCode.
// Server failures and auth refusals never explain themselves.
func discloses(statusCode int) bool {
	return statusCode < http.StatusInternalServerError &&
		statusCode != http.StatusUnauthorized &&
		statusCode != http.StatusForbidden
}

// Error writes an error envelope, dropping details where they must not be disclosed.
func Error(c echo.Context, statusCode int, errorCode, message string, details any) error {
	if !discloses(statusCode) {
		details = nil
	}

	return c.JSON(statusCode, ErrorEnvelope{
		Error: &ErrorBody{Code: errorCode, Message: message, Details: details},
		Meta:  meta(c),
	})
}

// Problem writes appErr with caller supplied details, such as per-field validation failures.
func Problem(c echo.Context, appErr domainerrors.AppError, details any) error {
	return Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), details)
}

// Unauthorized answers 401 UNAUTHORIZED with a specific message.
func Unauthorized(c echo.Context, message string) error {
	return Error(c, http.StatusUnauthorized, domainerrors.ErrUnauthorized.ErrorCode(), message, nil)
}

// HandleAppError writes err when it is a domain error. Anything else is returned
// with a stack for the centralized error handler.
func HandleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if !errors.As(err, &appErr) {
		return errors.WithStack(err)
	}

	var details any
	if d := appErr.Details(); d != "" {
		details = d
	}

	return Problem(c, appErr, details)
}

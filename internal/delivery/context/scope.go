// Package context carries per-request values between the HTTP layer and the use cases.
//
// Echo handlers read them from echo.Context; use cases and repositories only see
// context.Context, so every setter writes both.
package context

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// HeaderXRequestID is the header echoed back on every response.
const HeaderXRequestID = "X-Request-Id"

type scopeKey int

const (
	requestIDKey scopeKey = iota
	loggerKey
	userIDKey
)

// echo.Context store keys.
const (
	echoRequestID = "storefront.request_id"
	echoUserID    = "storefront.user_id"
)

// SetRequestID records the request id on the echo context and its request.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(echoRequestID, requestID)
	c.SetRequest(c.Request().WithContext(WithRequestID(c.Request().Context(), requestID)))
}

// GetRequestID returns the id assigned by the request id middleware.
// Outside that middleware a fresh id is returned so envelopes always carry one.
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(echoRequestID).(string); ok && id != "" {
		return id
	}
	if id := GetRequestIDFromContext(c.Request().Context()); id != "" {
		return id
	}

	return uuid.New().String()
}

// WithRequestID returns ctx carrying requestID.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// GetRequestIDFromContext returns "" when ctx has no request id.
func GetRequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)

	return id
}

// WithLogger returns ctx carrying a request-scoped logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// GetLogger returns nil when ctx has no request-scoped logger.
func GetLogger(ctx context.Context) *slog.Logger {
	logger, _ := ctx.Value(loggerKey).(*slog.Logger)

	return logger
}

// GetLoggerOrDefault returns the request-scoped logger, or fallback when none is set.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger := GetLogger(ctx); logger != nil {
		return logger
	}

	return fallback
}

// SetUserID marks the request as authenticated. The request logger, if any,
// gains a user_id attribute so use case logs identify the shopper.
func SetUserID(c echo.Context, userID uuid.UUID) {
	c.Set(echoUserID, userID)

	ctx := context.WithValue(c.Request().Context(), userIDKey, userID)
	if logger := GetLogger(ctx); logger != nil {
		ctx = WithLogger(ctx, logger.With(slog.String("user_id", userID.String())))
	}
	c.SetRequest(c.Request().WithContext(ctx))
}

// GetUserID returns the authenticated user's ID, if the request passed the auth gateway.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	id, ok := c.Get(echoUserID).(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, false
	}

	return id, true
}

// GetUserIDFromContext is GetUserID for code that only has a context.Context.
func GetUserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(userIDKey).(uuid.UUID)

	return id, ok && id != uuid.Nil
}

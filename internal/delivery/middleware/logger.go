package middleware

import (
	"context"
	"log/slog"
	"time"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// probePaths are hit by orchestrators and scrapers; their successes are never logged.
var probePaths = map[string]bool{
	"/health":     true,
	"/api/health": true,
	"/metrics":    true,
}

// LoggerMiddleware writes one access log line per request. Successful requests are
// only logged in debug mode; 4xx and 5xx always are.
type LoggerMiddleware struct {
	logger *slog.Logger
	debug  bool
}

func NewLoggerMiddleware(logger *slog.Logger, config *config.Config) *LoggerMiddleware {
	return &LoggerMiddleware{
		logger: logger,
		debug:  config.Env.Debug,
	}
}

// Handle renders handler errors itself so the logged status is the one sent.
func (m *LoggerMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()

		err := next(c)
		if err != nil {
			c.Error(err)
		}

		status := c.Response().Status
		level := levelForStatus(status)
		if level == slog.LevelInfo && (!m.debug || probePaths[c.Path()]) {
			return nil
		}

		// The request logger already carries request_id, and user_id once authenticated.
		logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger)
		logger.LogAttrs(context.Background(), level, "HTTP Request", accessAttrs(c, status, start, err)...)

		return nil
	}
}

func accessAttrs(c echo.Context, status int, start time.Time, err error) []slog.Attr {
	req := c.Request()

	attrs := []slog.Attr{
		slog.String("method", req.Method),
		slog.String("route", c.Path()),
		slog.String("uri", req.URL.Path),
		slog.Int("status", status),
		slog.Duration("latency", time.Since(start)),
		slog.Int64("bytes_out", c.Response().Size),
		slog.String("remote_ip", c.RealIP()),
		slog.String("user_agent", req.UserAgent()),
	}
	if req.URL.RawQuery != "" {
		attrs = append(attrs, slog.String("query", req.URL.RawQuery))
	}
	if err != nil {
		attrs = append(attrs, slog.Any("error", err))
	}

	return attrs
}

func levelForStatus(status int) slog.Level {
	switch {
	case status >= 500:
		return slog.LevelError
	case status >= 400:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}

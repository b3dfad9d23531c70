package middleware

import (
	"log/slog"
	"strings"

	"storefront/internal/delivery/api/response"
	deliverycontext "storefront/internal/delivery/context"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/errors"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const bearerPrefix = "Bearer "

// AuthMiddleware resolves the bearer token to an existing user.
type AuthMiddleware struct {
	authUC usecase.AuthUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(authUC usecase.AuthUsecase) *AuthMiddleware {
	return &AuthMiddleware{authUC: authUC}
}

// Authenticate rejects requests without a valid access token for a user that still exists.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, "Authorization header is missing")
		}

		tokenString, ok := strings.CutPrefix(authHeader, bearerPrefix)
		if !ok || strings.TrimSpace(tokenString) == "" {
			return response.Unauthorized(c, "Invalid token format, must be Bearer token")
		}

		user, err := m.authUC.Authenticate(c.Request().Context(), strings.TrimSpace(tokenString))
		if errors.Is(err, domainerrors.ErrUnauthorized) {
			return response.Unauthorized(c, "Invalid or expired token")
		}
		if err != nil {
			deliverycontext.GetLoggerOrDefault(c.Request().Context(), slog.Default()).
				Error("Failed to authenticate request", slog.Any("error", err))

			return response.HandleAppError(c, err)
		}

		deliverycontext.SetUserID(c, user.ID)

		return next(c)
	}
}

// GetUserID returns the user set by Authenticate.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	return deliverycontext.GetUserID(c)
}

package middleware

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"storefront/config"
	"storefront/internal/delivery/api/response"
	"storefront/internal/delivery/api/validator"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/entity"
	mockUsecase "storefront/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var discardLogger = slog.New(slog.DiscardHandler)

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) response.ErrorBody {
	t.Helper()

	var body response.ErrorEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Error)

	return *body.Error
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	user := &entity.User{ID: uuid.New()}

	tests := []struct {
		name       string
		header     string
		setupMock  func(m *mockUsecase.MockAuthUsecase)
		wantStatus int
		wantCode   string
	}{
		{
			name:       "missing header",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "not a bearer token",
			header:     "Basic abc",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:   "rejected token",
			header: "Bearer bad",
			setupMock: func(m *mockUsecase.MockAuthUsecase) {
				m.EXPECT().Authenticate(mock.Anything, "bad").Return(nil, domainerrors.ErrUnauthorized)
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:   "user lookup fails",
			header: "Bearer good",
			setupMock: func(m *mockUsecase.MockAuthUsecase) {
				m.EXPECT().Authenticate(mock.Anything, "good").
					Return(nil, domainerrors.NewDatabaseExecuteError(errors.New("connection refused"), "failed to load authenticated user"))
			},
			wantStatus: http.StatusInternalServerError,
			wantCode:   "DATABASE_EXECUTE_FAILED",
		},
		{
			name:   "valid token",
			header: "Bearer good",
			setupMock: func(m *mockUsecase.MockAuthUsecase) {
				m.EXPECT().Authenticate(mock.Anything, "good").Return(user, nil)
			},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			authUC := mockUsecase.NewMockAuthUsecase(t)
			if tt.setupMock != nil {
				tt.setupMock(authUC)
			}

			e := echo.New()
			e.GET("/me", func(c echo.Context) error {
				id, ok := GetUserID(c)
				assert.True(t, ok)
				assert.Equal(t, user.ID, id)

				return c.NoContent(http.StatusOK)
			}, NewAuthMiddleware(authUC).Authenticate)

			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.header)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusUnauthorized {
				assert.Equal(t, "UNAUTHORIZED", decodeError(t, rec).Code)
			}
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, decodeError(t, rec).Code)
			}
		})
	}
}

func serveError(t *testing.T, err error) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	e.HTTPErrorHandler = NewErrorMiddleware(discardLogger).HandleHTTPError
	e.GET("/fail", func(c echo.Context) error { return err })

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/fail", nil))

	return rec
}

func TestErrorMiddleware_AppError(t *testing.T) {
	rec := serveError(t, errors.Wrap(domainerrors.ErrOrderForbidden, "get order"))

	assert.Equal(t, http.StatusForbidden, rec.Code)
	info := decodeError(t, rec)
	assert.Equal(t, "ORDER_FORBIDDEN", info.Code)
	assert.Equal(t, "Forbidden", info.Message)
}

func TestErrorMiddleware_AppErrorDetails(t *testing.T) {
	rec := serveError(t, domainerrors.ErrCatalogInvalid.WithDetails("product 2: missing sku"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "product 2: missing sku", decodeError(t, rec).Details)
}

func TestErrorMiddleware_HidesServerErrorDetails(t *testing.T) {
	rec := serveError(t, domainerrors.NewDatabaseExecuteError(errors.New("connection refused"), "insert order"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	info := decodeError(t, rec)
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", info.Code)
	assert.Nil(t, info.Details)
	assert.NotContains(t, rec.Body.String(), "connection refused")
}

func TestErrorMiddleware_ValidationError(t *testing.T) {
	type request struct {
		Email string `json:"email" validate:"required,email"`
	}
	err := validator.New().Validate(&request{Email: "nope"})
	require.Error(t, err)

	rec := serveError(t, err)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	info := decodeError(t, rec)
	assert.Equal(t, "VALIDATION_FAILED", info.Code)
	assert.Equal(t, map[string]any{"email": "email"}, info.Details)
}

func TestErrorMiddleware_EchoHTTPError(t *testing.T) {
	rec := serveError(t, echo.NewHTTPError(http.StatusMethodNotAllowed))

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, "METHOD_NOT_ALLOWED", decodeError(t, rec).Code)

	rec = serveError(t, echo.NewHTTPError(http.StatusTeapot))
	assert.Equal(t, "HTTP_ERROR", decodeError(t, rec).Code)
}

func TestErrorMiddleware_UnknownError(t *testing.T) {
	rec := serveError(t, errors.New("secret internals"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "INTERNAL_ERROR", decodeError(t, rec).Code)
	assert.NotContains(t, rec.Body.String(), "secret internals")
}

func newTestRateLimiter(now *time.Time) *RateLimiter {
	cfg := &config.Config{}
	cfg.RateLimit.OtpPerMinute = 60
	cfg.RateLimit.OtpBurst = 2
	cfg.RateLimit.IdleTTL = time.Minute

	rl := NewRateLimiter(cfg, discardLogger)
	rl.now = func() time.Time { return *now }

	return rl
}

func postFrom(e *echo.Echo, ip string) int {
	req := httptest.NewRequest(http.MethodPost, "/auth/send-otp", nil)
	req.Header.Set(echo.HeaderXRealIP, ip)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec.Code
}

func TestRateLimiter_LimitsPerIP(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	rl := newTestRateLimiter(&now)

	e := echo.New()
	e.POST("/auth/send-otp", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}, rl.Limit)

	assert.Equal(t, http.StatusOK, postFrom(e, "10.0.0.1"))
	assert.Equal(t, http.StatusOK, postFrom(e, "10.0.0.1"))
	assert.Equal(t, http.StatusTooManyRequests, postFrom(e, "10.0.0.1"))
	assert.Equal(t, http.StatusOK, postFrom(e, "10.0.0.2"))

	now = now.Add(time.Second)
	assert.Equal(t, http.StatusOK, postFrom(e, "10.0.0.1"))
}

func TestRateLimiter_PrunesIdleClients(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	rl := newTestRateLimiter(&now)

	assert.True(t, rl.allow("10.0.0.1"))
	assert.True(t, rl.allow("10.0.0.2"))
	assert.Equal(t, 2, rl.trackedClients())

	now = now.Add(2 * time.Minute)
	assert.True(t, rl.allow("10.0.0.3"))
	assert.Equal(t, 1, rl.trackedClients())
}

func TestNewRateLimiter_Defaults(t *testing.T) {
	rl := NewRateLimiter(&config.Config{}, discardLogger)

	assert.Equal(t, defaultOtpBurst, rl.burst)
	assert.Equal(t, defaultIdleTTL, rl.idleTTL)
	assert.InDelta(t, defaultOtpPerMinute/60.0, float64(rl.limit), 1e-9)
}

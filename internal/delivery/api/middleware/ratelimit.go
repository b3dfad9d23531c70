package middleware

import (
	"log/slog"
	"sync"
	"time"

	"storefront/config"
	"storefront/internal/delivery/api/response"
	deliverycontext "storefront/internal/delivery/context"
	domainerrors "storefront/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

const (
	defaultOtpPerMinute = 5
	defaultOtpBurst     = 3
	defaultIdleTTL      = 10 * time.Minute
)

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter is a per client IP token bucket.
type RateLimiter struct {
	mu        sync.Mutex
	visitors  map[string]*visitor
	limit     rate.Limit
	burst     int
	idleTTL   time.Duration
	lastPrune time.Time
	now       func() time.Time
	logger    *slog.Logger
}

// NewRateLimiter builds the limiter applied to the OTP endpoints.
func NewRateLimiter(cfg *config.Config, logger *slog.Logger) *RateLimiter {
	perMinute := cfg.RateLimit.OtpPerMinute
	if perMinute <= 0 {
		perMinute = defaultOtpPerMinute
	}
	burst := cfg.RateLimit.OtpBurst
	if burst <= 0 {
		burst = defaultOtpBurst
	}
	idleTTL := cfg.RateLimit.IdleTTL
	if idleTTL <= 0 {
		idleTTL = defaultIdleTTL
	}

	return &RateLimiter{
		visitors: make(map[string]*visitor),
		limit:    rate.Limit(perMinute / 60),
		burst:    burst,
		idleTTL:  idleTTL,
		now:      time.Now,
		logger:   logger,
	}
}

// Limit answers 429 once the client IP has used up its bucket.
func (rl *RateLimiter) Limit(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		ip := c.RealIP()
		if !rl.allow(ip) {
			deliverycontext.GetLoggerOrDefault(c.Request().Context(), rl.logger).Warn("Rate limit exceeded",
				slog.String("remote_ip", ip),
				slog.String("path", c.Request().URL.Path),
			)

			return response.Problem(c, domainerrors.ErrTooManyRequests, nil)
		}

		return next(c)
	}
}

func (rl *RateLimiter) allow(key string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	rl.pruneLocked(now)

	v, ok := rl.visitors[key]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(rl.limit, rl.burst)}
		rl.visitors[key] = v
	}
	v.lastSeen = now

	return v.limiter.AllowN(now, 1)
}

// pruneLocked drops visitors idle for longer than idleTTL, at most once per idleTTL.
func (rl *RateLimiter) pruneLocked(now time.Time) {
	if now.Sub(rl.lastPrune) < rl.idleTTL {
		return
	}
	rl.lastPrune = now

	for key, v := range rl.visitors {
		if now.Sub(v.lastSeen) > rl.idleTTL {
			delete(rl.visitors, key)
		}
	}
}

// trackedClients reports how many client IPs currently hold a bucket.
func (rl *RateLimiter) trackedClients() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	return len(rl.visitors)
}

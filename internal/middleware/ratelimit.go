package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	apperrors "forumhub/internal/errors"
)

// Counter bumps a named counter that expires after a window. *cache.Client
// satisfies it; its counts read zero when redis is unreachable.
type Counter interface {
	Incr(ctx context.Context, key string, ttl time.Duration) (int64, error)
}

// RateLimit applies a fixed-window per-IP budget to a route. When the counter
// backend is unreachable the count reads zero and requests pass, so an outage
// degrades protection rather than availability.
func RateLimit(counters Counter, limit int64, window time.Duration) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			key := "ratelimit:" + c.RealIP() + ":" + c.Path()
			n, err := counters.Incr(c.Request().Context(), key, window)
			if err == nil && n > limit {
				return echo.NewHTTPError(http.StatusTooManyRequests, apperrors.ErrorResponse{Error: "Too many requests."})
			}
			return next(c)
		}
	}
}

package ratelimit

import (
	"context"
	"log/slog"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/voiceowl/transcription-backend/internal/shared"
)

// Limiter is a redis-backed fixed-window rate limiter keyed by client IP.
// When redis is unreachable it fails open: requests are allowed and the
// failure is logged.
type Limiter struct {
	redis  *redis.Client
	limit  int
	window time.Duration
	logger *slog.Logger
}

func New(redisClient *redis.Client, limit int, window time.Duration, logger *slog.Logger) *Limiter {
	if limit <= 0 {
		limit = 100
	}
	if window <= 0 {
		window = time.Minute
	}
	return &Limiter{
		redis:  redisClient,
		limit:  limit,
		window: window,
		logger: logger.With("component", "ratelimit"),
	}
}

func (l *Limiter) key(ip string) string {
	return "ratelimit:" + ip
}

// Allow counts one request for the given client and reports whether it is
// within the window's limit.
func (l *Limiter) Allow(ctx context.Context, ip string) (bool, error) {
	pipe := l.redis.Pipeline()
	incr := pipe.Incr(ctx, l.key(ip))
	pipe.Expire(ctx, l.key(ip), l.window)
	if _, err := pipe.Exec(ctx); err != nil {
		return true, err
	}
	return incr.Val() <= int64(l.limit), nil
}

func (l *Limiter) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			allowed, err := l.Allow(c.Request().Context(), c.RealIP())
			if err != nil {
				l.logger.Warn("rate limit check failed, allowing request", "error", err)
				return next(c)
			}
			if !allowed {
				return shared.TooManyRequests("rate_limited", "too many requests, slow down")
			}
			return next(c)
		}
	}
}

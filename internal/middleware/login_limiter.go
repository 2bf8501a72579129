package middleware

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"go-crm/internal/shared/response"
	"go-crm/internal/telemetry"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis_rate/v10"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// FixedWindowLimiter counts hits per key in Redis; the counter expires with
// the window, so every instance shares one budget.
type FixedWindowLimiter struct {
	rdb    *redis.Client
	prefix string
	limit  int64
	window time.Duration
}

func NewFixedWindowLimiter(rdb *redis.Client, prefix string, limit int64, window time.Duration) *FixedWindowLimiter {
	return &FixedWindowLimiter{rdb: rdb, prefix: prefix, limit: limit, window: window}
}

func (l *FixedWindowLimiter) Key(id string) string {
	return "ratelimit:" + l.prefix + ":" + id
}

// Allow records one hit for id and reports whether it is within the window budget.
// INCR and EXPIRE NX run in one MULTI, so the counter never outlives its window
// and a hit cannot be counted without its TTL being set.
func (l *FixedWindowLimiter) Allow(ctx context.Context, id string) (bool, int64, error) {
	key := l.Key(id)
	var incr *redis.IntCmd
	_, err := l.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, key)
		pipe.ExpireNX(ctx, key, l.window)
		return nil
	})
	if err != nil {
		return false, 0, err
	}
	n := incr.Val()
	return n <= l.limit, n, nil
}

// RateLimitFixedWindow guards a route with l keyed by client IP. Once the
// budget is spent the request ends with 429 and nothing downstream runs.
// Redis failures let the request through.
func RateLimitFixedWindow(l *FixedWindowLimiter) gin.HandlerFunc {
	log := zap.L().Named("middleware.rate_limit")
	return func(c *gin.Context) {
		allowed, count, err := l.Allow(c.Request.Context(), c.ClientIP())
		if err != nil {
			log.Warn("fixed window limiter unavailable", zap.String("limiter", l.prefix), zap.Error(err))
			c.Next()
			return
		}

		remaining := l.limit - count
		if remaining < 0 {
			remaining = 0
		}
		c.Header("X-RateLimit-Limit", strconv.FormatInt(l.limit, 10))
		c.Header("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))

		if !allowed {
			telemetry.RateLimitedTotal.WithLabelValues(l.prefix).Inc()
			c.Header("Retry-After", strconv.Itoa(int(l.window.Seconds())))
			response.Abort(c, http.StatusTooManyRequests, "RATE_LIMITED", "Too many attempts, please try again later")
			return
		}
		c.Next()
	}
}

// RateLimitRedisByIP throttles a route per client IP with GCRA limits stored in Redis.
func RateLimitRedisByIP(limiter *redis_rate.Limiter, name string, limit redis_rate.Limit) gin.HandlerFunc {
	log := zap.L().Named("middleware.rate_limit")
	return func(c *gin.Context) {
		res, err := limiter.Allow(c.Request.Context(), "ratelimit:"+name+":"+c.ClientIP(), limit)
		if err != nil {
			log.Warn("redis limiter unavailable", zap.String("limiter", name), zap.Error(err))
			c.Next()
			return
		}

		if res.Allowed == 0 {
			telemetry.RateLimitedTotal.WithLabelValues(name).Inc()
			c.Header("Retry-After", strconv.Itoa(int(res.RetryAfter.Seconds())+1))
			response.Abort(c, http.StatusTooManyRequests, "RATE_LIMITED", "Too many requests, please try again later")
			return
		}
		c.Next()
	}
}

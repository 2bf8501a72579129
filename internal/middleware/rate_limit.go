package middleware

import (
	"net/http"
	"sync"
	"time"

	"go-crm/internal/shared/response"
	"go-crm/internal/telemetry"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// limiterIdleTTL is how long a bucket may go unused before it is dropped.
const limiterIdleTTL = 10 * time.Minute

type keyedLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// KeyedRateLimiter keeps one token bucket per key (client IP or user id).
// Buckets live in process memory, so the limits are per instance. Buckets
// idle for longer than the TTL are swept on access.
type KeyedRateLimiter struct {
	limiters  map[string]*keyedLimiter
	mu        sync.Mutex
	r         rate.Limit // requests per second
	b         int        // burst
	ttl       time.Duration
	lastSweep time.Time
	now       func() time.Time
}

func NewKeyedRateLimiter(r rate.Limit, b int) *KeyedRateLimiter {
	return newKeyedRateLimiter(r, b, limiterIdleTTL, time.Now)
}

func newKeyedRateLimiter(r rate.Limit, b int, ttl time.Duration, now func() time.Time) *KeyedRateLimiter {
	return &KeyedRateLimiter{
		limiters:  make(map[string]*keyedLimiter),
		r:         r,
		b:         b,
		ttl:       ttl,
		lastSweep: now(),
		now:       now,
	}
}

func (k *KeyedRateLimiter) GetLimiter(key string) *rate.Limiter {
	k.mu.Lock()
	defer k.mu.Unlock()

	now := k.now()
	if now.Sub(k.lastSweep) >= k.ttl {
		for id, e := range k.limiters {
			if now.Sub(e.lastSeen) >= k.ttl {
				delete(k.limiters, id)
			}
		}
		k.lastSweep = now
	}

	e, exists := k.limiters[key]
	if !exists {
		e = &keyedLimiter{limiter: rate.NewLimiter(k.r, k.b)}
		k.limiters[key] = e
	}
	e.lastSeen = now

	return e.limiter
}

// Len reports how many buckets are currently held.
func (k *KeyedRateLimiter) Len() int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return len(k.limiters)
}

func RateLimitByIP(r rate.Limit, b int) gin.HandlerFunc {
	limiter := NewKeyedRateLimiter(r, b)
	return func(c *gin.Context) {
		if !limiter.GetLimiter(c.ClientIP()).Allow() {
			telemetry.RateLimitedTotal.WithLabelValues("ip").Inc()
			response.Abort(c, http.StatusTooManyRequests, "RATE_LIMITED", "Too many requests from this IP")
			return
		}
		c.Next()
	}
}

// RateLimitByUser: r = requests per second, b = burst. Anonymous requests pass.
func RateLimitByUser(r rate.Limit, b int) gin.HandlerFunc {
	limiter := NewKeyedRateLimiter(r, b)
	return func(c *gin.Context) {
		userID := c.GetString(ContextUserID)
		if userID == "" {
			c.Next()
			return
		}
		if !limiter.GetLimiter(userID).Allow() {
			telemetry.RateLimitedTotal.WithLabelValues("user").Inc()
			response.Abort(c, http.StatusTooManyRequests, "RATE_LIMITED", "Too many requests from this user")
			return
		}
		c.Next()
	}
}

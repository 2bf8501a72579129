package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go-crm/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	idempotencyCacheKey = "idempotency_cache_key"
	idempotencyLockKey  = "idempotency_lock_key"

	IdempotencyTTL     = 24 * time.Hour
	idempotencyLockTTL = 30 * time.Second
)

// Idempotency replays the stored response for a repeated Idempotency-Key on
// POST requests and rejects a duplicate that arrives while the first is running.
// Keys are scoped by route, organization and the user set by ExtractUserID.
func Idempotency(rdb *redis.Client) gin.HandlerFunc {
	log := zap.L().Named("middleware.idempotency")
	return func(c *gin.Context) {
		idempKey := c.GetHeader("Idempotency-Key")
		if idempKey == "" || c.Request.Method != http.MethodPost {
			c.Next()
			return
		}

		userID := c.GetString(ContextValidatedUserID)
		if userID == "" {
			log.Warn("idempotency key ignored without a validated user", zap.String("path", c.FullPath()))
			c.Next()
			return
		}
		orgID := c.GetString(ContextOrganizationID)
		cacheKey := fmt.Sprintf("idemp:%s:%s:%s:%s", c.FullPath(), orgID, userID, idempKey)
		lockKey := cacheKey + ":lock"
		ctx := c.Request.Context()

		val, err := rdb.Get(ctx, cacheKey).Result()
		if err == nil {
			var cached any
			if json.Unmarshal([]byte(val), &cached) == nil {
				c.Header("Idempotent-Replayed", "true")
				response.Success(c, http.StatusOK, cached, nil)
				c.Abort()
				return
			}
		} else if err != redis.Nil {
			log.Warn("idempotency lookup failed, continuing without it", zap.Error(err))
			c.Next()
			return
		}

		isNew, err := rdb.SetNX(ctx, lockKey, "locked", idempotencyLockTTL).Result()
		if err != nil {
			log.Warn("idempotency lock failed, continuing without it", zap.Error(err))
			c.Next()
			return
		}
		if !isNew {
			response.Abort(c, http.StatusConflict, "PROCESSING", "A request with this Idempotency-Key is still being processed")
			return
		}

		c.Set(idempotencyCacheKey, cacheKey)
		c.Set(idempotencyLockKey, lockKey)

		c.Next()
	}
}

// ReleaseIdempotency removes the in-flight lock, if any. Handlers defer it.
func ReleaseIdempotency(c *gin.Context, rdb *redis.Client) {
	if rdb == nil {
		return
	}
	if lk := c.GetString(idempotencyLockKey); lk != "" {
		_ = rdb.Del(c.Request.Context(), lk).Err()
	}
}

// StoreIdempotentResponse caches data so retries with the same key replay it.
func StoreIdempotentResponse(c *gin.Context, rdb *redis.Client, data any) {
	if rdb == nil {
		return
	}
	ck := c.GetString(idempotencyCacheKey)
	if ck == "" {
		return
	}
	payload, err := json.Marshal(data)
	if err != nil {
		return
	}
	_ = rdb.Set(c.Request.Context(), ck, payload, IdempotencyTTL).Err()
}

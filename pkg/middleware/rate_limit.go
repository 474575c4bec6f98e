package middleware

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"portfolio-api/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// RateLimitMiddleware allows limit requests per client IP and path within
// window, counted in Redis. A limit of 0 or no Redis client disables it;
// Redis errors fail open.
func RateLimitMiddleware(redisClient *redis.Client, limit int, window time.Duration, log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if redisClient == nil || limit <= 0 {
			c.Next()
			return
		}

		key := fmt.Sprintf("rate_limit:%s:%s", c.FullPath(), c.ClientIP())

		ctx := c.Request.Context()
		pipe := redisClient.TxPipeline()
		incr := pipe.Incr(ctx, key)
		ttl := pipe.TTL(ctx, key)
		if _, err := pipe.Exec(ctx); err != nil {
			log.Warn("Rate limit check failed for %s: %v", key, err)
			c.Next()
			return
		}

		// A counter without expiry starts its window now, even if an
		// earlier EXPIRE was lost.
		remaining := ttl.Val()
		if remaining <= 0 {
			if err := redisClient.Expire(ctx, key, window).Err(); err != nil {
				log.Warn("Rate limit expiry failed for %s: %v", key, err)
			}
			remaining = window
		}

		if incr.Val() > int64(limit) {
			c.Header("Retry-After", strconv.Itoa(int(remaining.Round(time.Second).Seconds())))
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "Rate limit exceeded"})
			c.Abort()
			return
		}

		c.Next()
	}
}

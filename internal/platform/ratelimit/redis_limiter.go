// Package ratelimit provides a Redis-backed fixed-window request limiter.
package ratelimit

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// RedisLimiter counts requests per key in fixed windows.
// It is nil-safe and fails open: a nil limiter, nil client, or Redis error
// never blocks a request. Abuse protection should not take the site down.
type RedisLimiter struct {
	client *redis.Client
	prefix string
}

// NewRedisLimiter creates a limiter over the given client.
// Returns nil when the client is nil, which callers may pass around freely.
func NewRedisLimiter(client *redis.Client, prefix string) *RedisLimiter {
	if client == nil {
		return nil
	}
	if prefix == "" {
		prefix = "ratelimit"
	}
	return &RedisLimiter{client: client, prefix: prefix}
}

// Allow reports whether another request under key fits in the current window.
func (l *RedisLimiter) Allow(ctx context.Context, key string, limit int, window time.Duration) bool {
	if l == nil || l.client == nil || key == "" || limit <= 0 || window <= 0 {
		return true
	}

	ctx, cancel := context.WithTimeout(ctx, 250*time.Millisecond)
	defer cancel()

	full := l.prefix + ":" + key
	count, err := l.client.Incr(ctx, full).Result()
	if err != nil {
		return true
	}
	if count == 1 {
		// First hit opens the window.
		if err := l.client.Expire(ctx, full, window).Err(); err != nil {
			return true
		}
	}
	return count <= int64(limit)
}

// PerClient returns a Gin middleware limiting each client IP to limit
// requests per window on the routes it guards.
func PerClient(l *RedisLimiter, name string, limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !l.Allow(c.Request.Context(), name+":"+c.ClientIP(), limit, window) {
			slog.Warn("rate limit exceeded", "scope", name, "remote_addr", c.ClientIP())
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "too many requests"})
			return
		}
		c.Next()
	}
}

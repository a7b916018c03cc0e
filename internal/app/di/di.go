// Package di provides dependency injection factories for creating application components.
package di

import (
	"log/slog"
	"os"

	redisv9 "github.com/redis/go-redis/v9"

	jwtmw "recruit_backend/internal/platform/jwt"
	"recruit_backend/internal/platform/ratelimit"
)

// devJWTSecret is used only when JWT_SECRET is unset, so local development
// works out of the box. Production deployments must set their own secret.
const devJWTSecret = "dev-insecure-secret"

// NewTokenIssuer builds the JWT issuer from the environment.
// When JWT_SECRET is missing it falls back to an insecure development
// secret (loudly), and exports it so the verification middleware agrees.
func NewTokenIssuer() jwtmw.Issuer {
	secret := os.Getenv(jwtmw.EnvKeyJWTSecret)
	if secret == "" {
		slog.Warn("JWT_SECRET is not set, using insecure development secret")
		secret = devJWTSecret
		os.Setenv(jwtmw.EnvKeyJWTSecret, secret)
	}
	return jwtmw.NewIssuer(secret, jwtmw.TokenValidity)
}

// NewRateLimiter returns a Redis-backed limiter, or nil when Redis is
// unavailable. Routes guarded by a nil limiter run unthrottled.
func NewRateLimiter(rdb *redisv9.Client) *ratelimit.RedisLimiter {
	return ratelimit.NewRedisLimiter(rdb, "ratelimit")
}

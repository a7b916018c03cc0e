// Package router wires the HTTP routes for the API server.
package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	authhandler "recruit_backend/internal/feature/auth/transport/handler"
	enquiryhandler "recruit_backend/internal/feature/enquiries/transport/handler"
	jobhandler "recruit_backend/internal/feature/jobs/transport/handler"
	"recruit_backend/internal/platform/http/handler"
	jwtmw "recruit_backend/internal/platform/jwt"
	"recruit_backend/internal/platform/ratelimit"
)

// Limits applied to the public, unauthenticated endpoints.
const (
	authLimit      = 10
	enquiryLimit   = 5
	limitWindowDur = time.Minute
)

// NewRouter builds the Gin engine with all routes and middleware attached.
// The limiter may be nil (Redis unavailable); guarded routes then run
// unthrottled.
func NewRouter(auth *authhandler.AuthHandler, jobs *jobhandler.JobHandler,
	enquiries *enquiryhandler.EnquiryHandler, health *handler.HealthHandler,
	limiter *ratelimit.RedisLimiter) *gin.Engine {
	r := gin.Default()

	// Browser front end calls the API cross-origin.
	corsCfg := cors.DefaultConfig()
	corsCfg.AllowAllOrigins = true
	corsCfg.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	r.Use(cors.New(corsCfg))

	r.GET("/health", health.Health)
	r.HEAD("/health", health.Health)

	api := r.Group("/api")

	// Public auth endpoints, throttled against brute forcing.
	api.POST("/auth/signup", ratelimit.PerClient(limiter, "auth", authLimit, limitWindowDur), auth.Signup)
	api.POST("/auth/login", ratelimit.PerClient(limiter, "auth", authLimit, limitWindowDur), auth.Login)
	api.GET("/auth/me", jwtmw.AuthRequired(), auth.Me)

	// Public listing; the token is optional and only unlocks includeArchived for admins.
	api.GET("/jobs", jwtmw.OptionalAuth(), jobs.List)

	// Public enquiry intake, throttled.
	api.POST("/enquiries", ratelimit.PerClient(limiter, "enquiries", enquiryLimit, limitWindowDur), enquiries.Create)

	// Self-service "my applications" view; admins see everything.
	api.GET("/enquiries", jwtmw.AuthRequired(), enquiries.List)

	// Administration. Every mutation goes through the same role check.
	admin := api.Group("/", jwtmw.AuthRequired(), jwtmw.RequireAdmin())
	{
		admin.POST("/jobs", jobs.Create)
		admin.PATCH("/jobs/:id/archive", jobs.Archive)
		admin.DELETE("/jobs/:id", jobs.Delete)
		admin.PATCH("/enquiries/:id/status", enquiries.UpdateStatus)
	}

	return r
}

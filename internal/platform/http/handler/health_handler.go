// Package handler provides HTTP handlers for platform-level endpoints.
package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	platformdb "recruit_backend/internal/platform/db"
)

// HealthHandler serves the /health endpoint.
// It reports database reachability so a degraded process is observable
// without being restarted.
type HealthHandler struct {
	db *gorm.DB
}

// NewHealthHandler creates a HealthHandler over the given connection.
func NewHealthHandler(db *gorm.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

// Health responds with overall status, database state, and a timestamp.
// Cache is explicitly disabled. A degraded database yields 503 so load
// balancers can rotate the instance out.
func (h *HealthHandler) Health(c *gin.Context) {
	c.Header("Cache-Control", "no-store")

	switch c.Request.Method {
	case "HEAD":
		c.Status(200)
		return
	case "OPTIONS":
		c.Status(204)
		return
	}

	status := "ok"
	database := "connected"
	code := http.StatusOK
	if h.db == nil || platformdb.Ping(h.db, 2*time.Second) != nil {
		status = "degraded"
		database = "disconnected"
		code = http.StatusServiceUnavailable
	}

	c.JSON(code, gin.H{
		"status":    status,
		"database":  database,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

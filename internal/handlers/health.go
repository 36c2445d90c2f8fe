package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"payment-config-service/internal/cache"
)

type HealthHandler struct {
	db    *gorm.DB
	store cache.Store
}

func NewHealthHandler(db *gorm.DB, store cache.Store) *HealthHandler {
	return &HealthHandler{db: db, store: store}
}

// HealthCheck returns the health status of the service
// @Summary Health check
// @Description Returns the health status of the payment config service
// @Tags health
// @Produce json
// @Success 200 {object} object{status=string,timestamp=string,service=string}
// @Router /health [get]
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"service":   "payment-config-service",
		"version":   "1.0.0",
	})
}

// ReadinessCheck returns the readiness status of the service
// @Summary Readiness check
// @Description Verifies database and cache connectivity
// @Tags health
// @Produce json
// @Success 200 {object} object{status=string,timestamp=string,service=string}
// @Failure 503 {object} object{status=string,timestamp=string,service=string}
// @Router /ready [get]
func (h *HealthHandler) ReadinessCheck(c *gin.Context) {
	checks := gin.H{"database": "ok", "cache": "ok"}
	status := http.StatusOK
	state := "ready"

	sqlDB, err := h.db.DB()
	if err == nil {
		err = sqlDB.PingContext(c.Request.Context())
	}
	if err != nil {
		checks["database"] = err.Error()
		status = http.StatusServiceUnavailable
		state = "not ready"
	}

	// A dead cache degrades reads but does not break them, so it never
	// flips readiness.
	if err := h.store.Ping(c.Request.Context()); err != nil {
		checks["cache"] = err.Error()
	}

	c.JSON(status, gin.H{
		"status":    state,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"service":   "payment-config-service",
		"version":   "1.0.0",
		"checks":    checks,
	})
}

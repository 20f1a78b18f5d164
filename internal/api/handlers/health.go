package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const pingTimeout = 2 * time.Second

// HealthHandler handles health check endpoints
type HealthHandler struct {
	db       *gorm.DB
	features map[string]bool
}

// NewHealthHandler creates a new health handler. features reports which
// optional integrations are configured, e.g. "photo_storage".
func NewHealthHandler(db *gorm.DB, features map[string]bool) *HealthHandler {
	if features == nil {
		features = map[string]bool{}
	}
	return &HealthHandler{db: db, features: features}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string            `json:"status" example:"healthy"`
	Timestamp time.Time         `json:"timestamp"`
	Version   string            `json:"version" example:"1.0.0"`
	Services  map[string]string `json:"services"`
}

// ErrorResponse represents a standard API error response
type ErrorResponse struct {
	Error string `json:"error" example:"error message"`
}

// Health returns the health status of the application
// @Summary Health check
// @Description Get the overall health status including database connectivity and which optional integrations are configured
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse "Application is healthy"
// @Failure 503 {object} HealthResponse "Application is unhealthy"
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	dbErr := h.pingDatabase(c.Request.Context())

	services := map[string]string{"database": probeState(dbErr, "healthy", "error")}
	for name, enabled := range h.features {
		services[name] = "disabled"
		if enabled {
			services[name] = "configured"
		}
	}

	status := "healthy"
	if dbErr != nil {
		status = "unhealthy"
	}
	resp := HealthResponse{
		Status:    status,
		Timestamp: time.Now().UTC(),
		Version:   "1.0.0",
		Services:  services,
	}
	c.JSON(probeStatus(dbErr), resp)
}

// Ready reports whether the database accepts connections
// @Summary Readiness check
// @Description Check if the application is ready to serve requests
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{} "Application is ready"
// @Failure 503 {object} map[string]interface{} "Application is not ready"
// @Router /health/ready [get]
func (h *HealthHandler) Ready(c *gin.Context) {
	dbErr := h.pingDatabase(c.Request.Context())
	c.JSON(probeStatus(dbErr), gin.H{
		"ready":     dbErr == nil,
		"timestamp": time.Now().UTC(),
		"services":  gin.H{"database": probeState(dbErr, "ready", "not ready")},
	})
}

// Live always answers 200 while the process serves HTTP
// @Summary Liveness check
// @Description Check if the application is alive and responding
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{} "Application is alive"
// @Router /health/live [get]
func (h *HealthHandler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"alive": true, "timestamp": time.Now().UTC()})
}

func (h *HealthHandler) pingDatabase(ctx context.Context) error {
	sqlDB, err := h.db.DB()
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	return sqlDB.PingContext(ctx)
}

// probeState renders ok, or failed plus the error text
func probeState(err error, ok, failed string) string {
	if err != nil {
		return failed + ": " + err.Error()
	}
	return ok
}

func probeStatus(err error) int {
	if err != nil {
		return http.StatusServiceUnavailable
	}
	return http.StatusOK
}

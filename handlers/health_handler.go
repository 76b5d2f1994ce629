package handlers

import (
	"net/http"

	"github.com/NomadCrew/openweather-go/services"
	"github.com/NomadCrew/openweather-go/types"
	"github.com/gin-gonic/gin"
)

// HealthHandler exposes the gateway probes. Only a rejected API key takes the
// gateway out of rotation; a failing weather service leaves it DEGRADED but ready.
type HealthHandler struct {
	health *services.HealthService
}

func NewHealthHandler(health *services.HealthService) *HealthHandler {
	return &HealthHandler{health: health}
}

// LivenessCheck answers as long as the process serves HTTP. It never touches
// the weather service.
func (h *HealthHandler) LivenessCheck(c *gin.Context) {
	c.Status(http.StatusOK)
}

// ReadinessCheck returns 503 with the report once the weather service has
// rejected the configured key (upstream DOWN). DEGRADED stays 200.
func (h *HealthHandler) ReadinessCheck(c *gin.Context) {
	report := h.health.CheckHealth(c.Request.Context())
	c.JSON(readinessStatus(report.Status), report)
}

// DetailedHealth always answers 200 so dashboards can read the components.
func (h *HealthHandler) DetailedHealth(c *gin.Context) {
	c.JSON(http.StatusOK, h.health.CheckHealth(c.Request.Context()))
}

func readinessStatus(status types.HealthStatus) int {
	if status == types.HealthStatusDown {
		return http.StatusServiceUnavailable
	}
	return http.StatusOK
}

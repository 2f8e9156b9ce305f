package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Health is the health probe response body.
type Health struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

// GetLiveness handles GET /health/live — Kubernetes liveness probe.
func (s *Server) GetLiveness(c *gin.Context) {
	c.JSON(http.StatusOK, Health{Status: "ok"})
}

// GetReadiness handles GET /health/ready — Kubernetes readiness probe.
func (s *Server) GetReadiness(c *gin.Context) {
	checks := make(map[string]string)
	allHealthy := true

	// Database check.
	if err := s.pool.Ping(c.Request.Context()); err != nil {
		checks["database"] = "error"
		allHealthy = false
	} else {
		checks["database"] = "ok"
	}

	status := "ok"
	httpStatus := http.StatusOK
	if !allHealthy {
		status = "degraded"
		httpStatus = http.StatusServiceUnavailable
	}

	c.JSON(httpStatus, Health{Status: status, Checks: checks})
}

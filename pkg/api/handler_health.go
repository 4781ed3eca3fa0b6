package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/warehouse-exchange/wex/pkg/database"
	"github.com/warehouse-exchange/wex/pkg/version"
)

const (
	healthStatusHealthy   = "healthy"
	healthStatusDegraded  = "degraded"
	healthStatusUnhealthy = "unhealthy"
)

// healthCheck is one component's health entry.
type healthCheck struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// healthHandler handles GET /health. Only wex's own components (database,
// worker pool) are checked; external collaborators are excluded so an
// unhealthy provider cannot trigger a restart loop.
func (s *Server) healthHandler(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	checks := make(map[string]healthCheck)
	status := healthStatusHealthy

	if _, err := database.Health(reqCtx, s.db.DB()); err != nil {
		status = healthStatusUnhealthy
		checks["database"] = healthCheck{Status: healthStatusUnhealthy, Message: err.Error()}
	} else {
		checks["database"] = healthCheck{Status: healthStatusHealthy}
	}

	if s.pool != nil {
		poolHealth := s.pool.Health()
		if !poolHealth.IsHealthy {
			if status == healthStatusHealthy {
				status = healthStatusDegraded
			}
			checks["worker_pool"] = healthCheck{Status: healthStatusDegraded, Message: poolHealth.DBError}
		} else {
			checks["worker_pool"] = healthCheck{Status: healthStatusHealthy}
		}
	}

	httpStatus := http.StatusOK
	if status == healthStatusUnhealthy {
		httpStatus = http.StatusServiceUnavailable
	}
	c.JSON(httpStatus, gin.H{
		"status":      status,
		"version":     version.GitCommit,
		"environment": s.cfg.System.Environment,
		"checks":      checks,
	})
}

// versionHandler handles GET /version.
func (s *Server) versionHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"app":     version.AppName,
		"version": version.GitCommit,
		"full":    version.Full(),
	})
}

package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Health reports the readiness of every hard dependency. Storage is probed
// through the admin API.
func (ctrl *Controller) Health(c *gin.Context) {
	ctx := c.Request.Context()

	checks := gin.H{
		"database": "ok",
		"cache":    "ok",
		"storage":  "ok",
	}
	healthy := true

	if err := ctrl.Infra.Postgres.Ping(); err != nil {
		checks["database"] = err.Error()
		healthy = false
	}
	if err := ctrl.Infra.Redis.Ping(ctx); err != nil {
		checks["cache"] = err.Error()
		healthy = false
	}
	if err := ctrl.Infra.Minio.Health(ctx); err != nil {
		checks["storage"] = err.Error()
		healthy = false
	}

	status := http.StatusOK
	if !healthy {
		status = http.StatusServiceUnavailable
	}

	c.JSON(status, gin.H{"healthy": healthy, "checks": checks})
}

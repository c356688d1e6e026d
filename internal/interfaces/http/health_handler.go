package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthHandler serves liveness and readiness probes.
type HealthHandler struct {
	version string
}

// NewHealthHandler returns a HealthHandler reporting the given build version.
func NewHealthHandler(version string) *HealthHandler {
	return &HealthHandler{version: version}
}

func (h *HealthHandler) healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "version": h.version})
}

// readyz reports ready as soon as the process serves traffic: the store is
// hydrated during startup, before the listener opens.
func (h *HealthHandler) readyz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}

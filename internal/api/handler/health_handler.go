package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"hubdispatch/backend/pkg/response"
)

// HealthHandler backs the liveness probe.
type HealthHandler struct{}

// NewHealthHandler builds a HealthHandler.
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// Health reports the service is up with its name and the current server
// time.
// GET / and GET /health
func (h *HealthHandler) Health(c *gin.Context) {
	response.OK(c, gin.H{"name": "hubdispatch", "time": time.Now().UTC()})
}

package httpserver

import (
	"time"

	"github.com/gin-gonic/gin"

	"taskextreme-ai/pkg/response"
)

// Service identity reported by the system routes.
const (
	ServiceName    = "TaskExtreme AI Backend"
	ServiceVersion = "1.0.0"
	RootMessage    = "TaskExtreme AI Backend is running"

	HealthPath        = "/health"
	GenerateTasksPath = "/api/ai-generate-tasks"

	// ISO-8601 with milliseconds in UTC, e.g. 2024-05-01T10:00:00.000Z.
	timestampLayout = "2006-01-02T15:04:05.000Z07:00"
)

// healthCheck handles health check requests
// @Summary Health Check
// @Description Liveness probe; always healthy while the process serves requests
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is healthy"
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(timestampLayout),
		"service":   ServiceName,
	})
}

// rootInfo lists the available endpoints.
// @Summary Service info
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router / [get]
func (srv HTTPServer) rootInfo(c *gin.Context) {
	response.OK(c, gin.H{
		"message": RootMessage,
		"version": ServiceVersion,
		"endpoints": gin.H{
			"health":        HealthPath,
			"generateTasks": GenerateTasksPath,
		},
	})
}

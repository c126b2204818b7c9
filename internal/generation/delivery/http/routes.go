package http

import (
	"github.com/gin-gonic/gin"

	"taskextreme-ai/internal/middleware"
)

// RegisterRoutes maps the generation endpoint under rg. Rate limiting applies to it only.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	rg.POST("/ai-generate-tasks", mw.RateLimit(), h.Generate)
}

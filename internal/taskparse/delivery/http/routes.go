package http

import (
	"github.com/gin-gonic/gin"

	"task-planner/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	tasks := rg.Group("/tasks")
	{
		tasks.POST("/parse", mw.RateLimit(), mw.Auth(), h.Parse)
		tasks.POST("", mw.RateLimit(), mw.Auth(), h.Create)
	}
}

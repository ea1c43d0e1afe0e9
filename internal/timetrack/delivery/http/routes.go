package http

import (
	"github.com/gin-gonic/gin"

	"task-planner/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	timer := rg.Group("/timer", mw.RateLimit(), mw.Auth())
	{
		timer.POST("/start", h.Start)
		timer.POST("/pause", h.Pause)
		timer.POST("/resume", h.Resume)
		timer.POST("/stop", h.Stop)
		timer.GET("/active", h.Active)
	}

	logs := rg.Group("/timelogs", mw.RateLimit(), mw.Auth())
	{
		logs.GET("/task/:taskId", h.ForTask)
		logs.PUT("/:id", h.Edit)
		logs.POST("/:id/description", h.AddDescription)
		logs.GET("/report", h.Report)
	}
}

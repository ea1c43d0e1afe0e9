package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"task-planner/internal/middleware"
	timetrackHTTP "task-planner/internal/timetrack/delivery/http"
	timetrackUC "task-planner/internal/timetrack/usecase"
)

// setupTimetrackDomain initializes the timer engine and registers its routes.
func (srv HTTPServer) setupTimetrackDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	// 1. UseCase
	uc := timetrackUC.New(srv.l, srv.sessions, srv.users, srv.descWindow)

	// 2. HTTP Handler
	h := timetrackHTTP.New(srv.l, uc)

	// 3. Routes: registers /api/v1/timer and /api/v1/timelogs
	timetrackHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Time tracking domain registered")
	return nil
}

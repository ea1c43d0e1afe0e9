package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"task-planner/internal/middleware"
	taskparseHTTP "task-planner/internal/taskparse/delivery/http"
	taskparseUC "task-planner/internal/taskparse/usecase"
)

// setupTaskparseDomain initializes task extraction and registers its routes.
func (srv HTTPServer) setupTaskparseDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	// 1. UseCase
	uc := taskparseUC.New(srv.l, srv.categories, srv.users, srv.resolver, srv.calendar, srv.calendarID, srv.timezone)

	// 2. HTTP Handler
	h := taskparseHTTP.New(srv.l, uc)

	// 3. Routes: registers /api/v1/tasks
	taskparseHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Task extraction domain registered")
	return nil
}

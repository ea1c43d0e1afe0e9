package http

import (
	"github.com/gin-gonic/gin"

	"task-planner/internal/timetrack"
	"task-planner/pkg/log"
)

// Handler is the public interface for the timetrack HTTP delivery layer.
type Handler interface {
	Start(c *gin.Context)
	Pause(c *gin.Context)
	Resume(c *gin.Context)
	Stop(c *gin.Context)
	Active(c *gin.Context)
	ForTask(c *gin.Context)
	Edit(c *gin.Context)
	AddDescription(c *gin.Context)
	Report(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc timetrack.UseCase
}

// New creates a new HTTP handler for the timetrack domain.
func New(l log.Logger, uc timetrack.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}

package http

import (
	"github.com/gin-gonic/gin"

	"task-planner/internal/taskparse"
	"task-planner/pkg/log"
)

// Handler is the public interface for the taskparse HTTP delivery layer.
type Handler interface {
	Parse(c *gin.Context)
	Create(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc taskparse.UseCase
}

// New creates a new HTTP handler for the taskparse domain.
func New(l log.Logger, uc taskparse.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}

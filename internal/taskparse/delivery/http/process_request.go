package http

import (
	"strings"

	"github.com/gin-gonic/gin"

	"task-planner/internal/taskparse"
)

// processParseReq binds and validates the parse request body.
func (h *handler) processParseReq(c *gin.Context) (parseReq, error) {
	var req parseReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	if strings.TrimSpace(req.Text) == "" {
		return req, taskparse.ErrEmptyInput
	}
	return req, nil
}

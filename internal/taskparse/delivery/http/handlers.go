package http

import (
	"github.com/gin-gonic/gin"

	"task-planner/internal/middleware"
	"task-planner/pkg/response"
)

// Parse godoc
// @Summary     Parse a task sentence
// @Description Extracts a structured task draft (title, due date, priority, category, assignee) from free text without creating anything.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string   true "Requesting user ID"
// @Param       body      body   parseReq true "Sentence to parse"
// @Success     200 {object} parseResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/parse [POST]
func (h *handler) Parse(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processParseReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Extract(ctx, middleware.GetScope(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Extract: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newParseResp(output))
}

// Create godoc
// @Summary     Create a task from a sentence
// @Description Extracts a task draft from free text and, when a due date was found, schedules a calendar event for it.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string   true "Requesting user ID"
// @Param       body      body   parseReq true "Sentence to parse"
// @Success     200 {object} createResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processParseReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.CreateFromText(ctx, middleware.GetScope(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.CreateFromText: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newCreateResp(output))
}

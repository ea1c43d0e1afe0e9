package http

import (
	"github.com/gin-gonic/gin"

	"task-planner/internal/timetrack"
)

// processTimerReq binds a start/pause/resume request body.
func (h *handler) processTimerReq(c *gin.Context) (timerReq, error) {
	var req timerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processStopReq binds the stop request body.
func (h *handler) processStopReq(c *gin.Context) (stopReq, error) {
	var req stopReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processEditReq binds the edit request body + URI param.
func (h *handler) processEditReq(c *gin.Context) (editReq, error) {
	var req editReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.ID = c.Param("id")
	if req.ID == "" {
		return req, timetrack.ErrLogNotFound
	}
	return req, nil
}

// processAddDescriptionReq binds the description body + URI param.
func (h *handler) processAddDescriptionReq(c *gin.Context) (addDescriptionReq, error) {
	var req addDescriptionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.ID = c.Param("id")
	if req.ID == "" {
		return req, timetrack.ErrLogNotFound
	}
	return req, nil
}

// processReportReq binds the report query parameters.
func (h *handler) processReportReq(c *gin.Context) (reportReq, error) {
	var req reportReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, nil
}

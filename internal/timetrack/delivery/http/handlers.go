package http

import (
	"github.com/gin-gonic/gin"

	"task-planner/internal/middleware"
	"task-planner/internal/timetrack"
	"task-planner/pkg/response"
)

// Start godoc
// @Summary     Start a timer
// @Description Starts a timer session for the task. Any timer already running for the caller is stopped first.
// @Tags        Timer
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string   true "Requesting user ID"
// @Param       body      body   timerReq true "Task to time"
// @Success     200 {object} sessionResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/timer/start [POST]
func (h *handler) Start(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processTimerReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Start(ctx, middleware.GetScope(c), timetrack.StartInput{TaskID: req.TaskID})
	if err != nil {
		h.l.Errorf(ctx, "uc.Start: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newSessionResp(output))
}

// Pause godoc
// @Summary     Pause a timer
// @Description Pauses the running timer for the task. Elapsed time stops accruing until resume.
// @Tags        Timer
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string   true "Requesting user ID"
// @Param       body      body   timerReq true "Task being timed"
// @Success     200 {object} sessionResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/timer/pause [POST]
func (h *handler) Pause(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processTimerReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Pause(ctx, middleware.GetScope(c), timetrack.PauseInput{TaskID: req.TaskID})
	if err != nil {
		h.l.Errorf(ctx, "uc.Pause: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newSessionResp(output))
}

// Resume godoc
// @Summary     Resume a paused timer
// @Description Resumes the paused timer for the task, folding the paused interval into the session total.
// @Tags        Timer
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string   true "Requesting user ID"
// @Param       body      body   timerReq true "Task being timed"
// @Success     200 {object} sessionResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/timer/resume [POST]
func (h *handler) Resume(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processTimerReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Resume(ctx, middleware.GetScope(c), timetrack.ResumeInput{TaskID: req.TaskID})
	if err != nil {
		h.l.Errorf(ctx, "uc.Resume: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newSessionResp(output))
}

// Stop godoc
// @Summary     Stop a timer
// @Description Stops the active timer for the task and returns the completed session with its net duration.
// @Tags        Timer
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string  true "Requesting user ID"
// @Param       body      body   stopReq true "Task and optional description"
// @Success     200 {object} sessionResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/timer/stop [POST]
func (h *handler) Stop(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processStopReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Stop(ctx, middleware.GetScope(c), timetrack.StopInput{
		TaskID:      req.TaskID,
		Description: req.Description,
	})
	if err != nil {
		h.l.Errorf(ctx, "uc.Stop: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newSessionResp(output))
}

// Active godoc
// @Summary     Get the caller's active timer
// @Description Returns the caller's currently running or paused session, if any.
// @Tags        Timer
// @Produce     json
// @Param       X-User-ID header string true "Requesting user ID"
// @Success     200 {object} activeResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/timer/active [GET]
func (h *handler) Active(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Active(ctx, middleware.GetScope(c))
	if err != nil {
		h.l.Errorf(ctx, "uc.Active: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newActiveResp(output))
}

// ForTask godoc
// @Summary     List time logs for a task
// @Description Returns all sessions recorded against a task, newest first.
// @Tags        TimeLogs
// @Produce     json
// @Param       X-User-ID header string true "Requesting user ID"
// @Param       taskId    path   string true "Task ID"
// @Success     200 {object} logsResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/timelogs/task/{taskId} [GET]
func (h *handler) ForTask(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.ForTask(ctx, middleware.GetScope(c), c.Param("taskId"))
	if err != nil {
		h.l.Errorf(ctx, "uc.ForTask: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newLogsResp(output))
}

// Edit godoc
// @Summary     Edit a time log
// @Description Updates the time bounds and description of a session. Pause bookkeeping and ownership never change.
// @Tags        TimeLogs
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string  true "Requesting user ID"
// @Param       id        path   string  true "Time log ID"
// @Param       body      body   editReq true "Fields to update"
// @Success     200 {object} sessionResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     403 {object} response.Resp "Forbidden"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/timelogs/{id} [PUT]
func (h *handler) Edit(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processEditReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Edit(ctx, middleware.GetScope(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Edit: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newSessionResp(output))
}

// AddDescription godoc
// @Summary     Describe a stopped session
// @Description Attaches a description to a recently stopped session. Only the owner may do this, within a short window after stopping.
// @Tags        TimeLogs
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string            true "Requesting user ID"
// @Param       id        path   string            true "Time log ID"
// @Param       body      body   addDescriptionReq true "Description"
// @Success     200 {object} sessionResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     403 {object} response.Resp "Forbidden"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/timelogs/{id}/description [POST]
func (h *handler) AddDescription(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processAddDescriptionReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.AddDescription(ctx, middleware.GetScope(c), timetrack.AddDescriptionInput{
		LogID:       req.ID,
		Description: req.Description,
	})
	if err != nil {
		h.l.Errorf(ctx, "uc.AddDescription: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newSessionResp(output))
}

// Report godoc
// @Summary     Time tracking report
// @Description Returns sessions started within a date range with total minutes. Managers and Leads only.
// @Tags        TimeLogs
// @Produce     json
// @Param       X-User-ID header string true  "Requesting user ID"
// @Param       from      query  string false "Range start (YYYY-MM-DD, default 30 days ago)"
// @Param       to        query  string false "Range end (YYYY-MM-DD, default tomorrow)"
// @Success     200 {object} reportResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     403 {object} response.Resp "Forbidden"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/timelogs/report [GET]
func (h *handler) Report(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processReportReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Report(ctx, middleware.GetScope(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Report: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newReportResp(output))
}

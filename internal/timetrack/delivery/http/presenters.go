package http

import (
	"time"

	"task-planner/internal/timetrack"
)

// --- Request DTOs ---

type timerReq struct {
	TaskID string `json:"task_id" binding:"required"`
}

type stopReq struct {
	TaskID      string `json:"task_id"     binding:"required"`
	Description string `json:"description" binding:"max=1000"`
}

// editReq accepts the full session shape for client convenience, but only
// the time bounds and description ever reach the use case.
type editReq struct {
	ID                 string     `json:"-"` // populated from URI param
	StartTime          *time.Time `json:"start_time"`
	EndTime            *time.Time `json:"end_time"`
	Description        *string    `json:"description"`
	IsPaused           *bool      `json:"is_paused"`            // accepted, ignored
	TotalPausedMinutes *int       `json:"total_paused_minutes"` // accepted, ignored
}

func (r editReq) toInput() timetrack.EditInput {
	return timetrack.EditInput{
		LogID:       r.ID,
		StartTime:   r.StartTime,
		EndTime:     r.EndTime,
		Description: r.Description,
	}
}

type addDescriptionReq struct {
	ID          string `json:"-"` // populated from URI param
	Description string `json:"description" binding:"required,max=1000"`
}

type reportReq struct {
	From time.Time `form:"from" time_format:"2006-01-02"`
	To   time.Time `form:"to"   time_format:"2006-01-02"`
}

func (r reportReq) toInput() timetrack.ReportInput {
	return timetrack.ReportInput{From: r.From, To: r.To}
}

// --- Response DTOs ---

type sessionResp struct {
	LogID              string     `json:"log_id"`
	TaskID             string     `json:"task_id"`
	UserID             string     `json:"user_id"`
	StartTime          time.Time  `json:"start_time"`
	EndTime            *time.Time `json:"end_time,omitempty"`
	Description        string     `json:"description,omitempty"`
	IsPaused           bool       `json:"is_paused"`
	PauseTime          *time.Time `json:"pause_time,omitempty"`
	TotalPausedMinutes int        `json:"total_paused_minutes"`
	DurationMinutes    int        `json:"duration_minutes"`
}

func newSessionResp(out timetrack.SessionOutput) sessionResp {
	s := out.Session
	return sessionResp{
		LogID:              s.LogID,
		TaskID:             s.TaskID,
		UserID:             s.UserID,
		StartTime:          s.StartTime,
		EndTime:            s.EndTime,
		Description:        s.Description,
		IsPaused:           s.IsPaused,
		PauseTime:          s.PauseTime,
		TotalPausedMinutes: s.TotalPausedMinutes,
		DurationMinutes:    out.DurationMinutes,
	}
}

func newSessionResps(outs []timetrack.SessionOutput) []sessionResp {
	resps := make([]sessionResp, len(outs))
	for i, out := range outs {
		resps[i] = newSessionResp(out)
	}
	return resps
}

type activeResp struct {
	Sessions []sessionResp `json:"sessions"`
}

func (h *handler) newActiveResp(out timetrack.ActiveOutput) activeResp {
	return activeResp{Sessions: newSessionResps(out.Sessions)}
}

type logsResp struct {
	Sessions []sessionResp `json:"sessions"`
}

func (h *handler) newLogsResp(out timetrack.LogsOutput) logsResp {
	return logsResp{Sessions: newSessionResps(out.Sessions)}
}

type reportResp struct {
	Sessions     []sessionResp `json:"sessions"`
	TotalMinutes int           `json:"total_minutes"`
	From         time.Time     `json:"from"`
	To           time.Time     `json:"to"`
}

func (h *handler) newReportResp(out timetrack.ReportOutput) reportResp {
	return reportResp{
		Sessions:     newSessionResps(out.Sessions),
		TotalMinutes: out.TotalMinutes,
		From:         out.From,
		To:           out.To,
	}
}

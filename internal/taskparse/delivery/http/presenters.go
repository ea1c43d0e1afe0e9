package http

import (
	"time"

	"task-planner/internal/model"
	"task-planner/internal/taskparse"
)

// --- Request DTOs ---

type parseReq struct {
	Text string `json:"text" binding:"required,min=1,max=2000"`
}

func (r parseReq) toInput() taskparse.ExtractInput {
	return taskparse.ExtractInput{Text: r.Text}
}

// --- Response DTOs ---

type draftResp struct {
	Title            string     `json:"title"`
	Description      string     `json:"description"`
	DueDate          *time.Time `json:"due_date,omitempty"`
	Priority         int        `json:"priority"`
	PriorityLabel    string     `json:"priority_label"`
	CategoryID       *string    `json:"category_id,omitempty"`
	AssignedToUserID string     `json:"assigned_to_user_id"`
	AssignedByUserID string     `json:"assigned_by_user_id"`
	AssignedOn       time.Time  `json:"assigned_on"`
}

func newDraftResp(d model.TaskDraft) draftResp {
	return draftResp{
		Title:            d.Title,
		Description:      d.Description,
		DueDate:          d.DueDate,
		Priority:         int(d.Priority),
		PriorityLabel:    d.Priority.String(),
		CategoryID:       d.CategoryID,
		AssignedToUserID: d.AssignedToUserID,
		AssignedByUserID: d.AssignedByUserID,
		AssignedOn:       d.AssignedOn,
	}
}

type parseResp struct {
	Success      bool      `json:"success"`
	ErrorMessage string    `json:"error_message,omitempty"`
	Draft        draftResp `json:"draft"`
}

func (h *handler) newParseResp(out taskparse.ExtractionResult) parseResp {
	return parseResp{
		Success:      out.Success,
		ErrorMessage: out.ErrorMessage,
		Draft:        newDraftResp(out.Draft),
	}
}

type createResp struct {
	Success      bool      `json:"success"`
	ErrorMessage string    `json:"error_message,omitempty"`
	Draft        draftResp `json:"draft"`
	CalendarLink string    `json:"calendar_link,omitempty"`
}

func (h *handler) newCreateResp(out taskparse.CreateOutput) createResp {
	return createResp{
		Success:      out.Result.Success,
		ErrorMessage: out.Result.ErrorMessage,
		Draft:        newDraftResp(out.Result.Draft),
		CalendarLink: out.CalendarLink,
	}
}

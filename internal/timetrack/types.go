package timetrack

import (
	"time"

	"task-planner/internal/model"
)

// --- UseCase Inputs ---

type StartInput struct {
	TaskID string
}

type PauseInput struct {
	TaskID string
}

type ResumeInput struct {
	TaskID string
}

type StopInput struct {
	TaskID      string
	Description string // optional
}

// EditInput carries the user-editable fields of a session. Nil pointers
// leave the field unchanged.
type EditInput struct {
	LogID       string
	StartTime   *time.Time
	EndTime     *time.Time
	Description *string
}

type AddDescriptionInput struct {
	LogID       string
	Description string
}

// ReportInput filters sessions by start time. Zero values default to the
// last 30 days.
type ReportInput struct {
	From time.Time
	To   time.Time
}

// --- UseCase Outputs ---

// SessionOutput is a session together with its computed net duration.
type SessionOutput struct {
	Session         model.TimerSession
	DurationMinutes int
}

type ActiveOutput struct {
	Sessions []SessionOutput
}

type LogsOutput struct {
	Sessions []SessionOutput
}

type ReportOutput struct {
	Sessions     []SessionOutput
	TotalMinutes int
	From         time.Time
	To           time.Time
}

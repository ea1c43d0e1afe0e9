package model

import "time"

// Priority is the task priority level. Lower value means more urgent,
// matching the 1/2/3 convention of the legacy planner database.
type Priority int

const (
	PriorityHigh   Priority = 1
	PriorityMedium Priority = 2
	PriorityLow    Priority = 3
)

func (p Priority) String() string {
	switch p {
	case PriorityHigh:
		return "High"
	case PriorityLow:
		return "Low"
	default:
		return "Medium"
	}
}

// TaskDraft is a task recovered from free text, not yet persisted.
// AssignedByUserID is always the requesting user; AssignedToUserID defaults
// to the requesting user unless a permitted reassignment was extracted.
type TaskDraft struct {
	Title            string
	Description      string
	DueDate          *time.Time
	Priority         Priority
	CategoryID       *string
	AssignedToUserID string
	AssignedByUserID string
	AssignedOn       time.Time
}

// Category is a task category as enumerated by the category store.
type Category struct {
	ID   string
	Name string
}

package taskparse

import "task-planner/internal/model"

// ExtractInput is the input for task extraction.
type ExtractInput struct {
	Text string // Natural language task description from the user
}

// ExtractionResult is the outcome of running the extraction pipeline.
// Draft is always populated, even on failure, with whatever was recovered.
type ExtractionResult struct {
	Success      bool
	ErrorMessage string
	Draft        model.TaskDraft
}

// CreateOutput is the result of CreateFromText.
type CreateOutput struct {
	Result       ExtractionResult
	CalendarLink string // Deep link to the calendar event (may be empty)
}

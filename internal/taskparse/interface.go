package taskparse

import (
	"context"
	"time"

	"task-planner/internal/model"
	"task-planner/pkg/gcalendar"
)

// UseCase defines the business logic interface for natural-language task extraction.
type UseCase interface {
	// Extract turns a free-text sentence into a structured task draft.
	// The draft is populated even when extraction reports failure.
	Extract(ctx context.Context, sc model.Scope, input ExtractInput) (ExtractionResult, error)

	// CreateFromText extracts a draft and, when the draft carries a due date
	// and a calendar is configured, schedules a calendar event for it.
	CreateFromText(ctx context.Context, sc model.Scope, input ExtractInput) (CreateOutput, error)
}

// DateResolver resolves a natural-language date phrase relative to a base
// instant. ok is false when the phrase does not name a date; implementations
// must not fail on unparseable input.
type DateResolver interface {
	Resolve(phrase string, base time.Time) (time.Time, bool)
}

// CalendarClient schedules events for extracted drafts with due dates.
type CalendarClient interface {
	CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error)
}

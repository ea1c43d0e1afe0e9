package usecase

import (
	"context"
	"time"

	"task-planner/internal/model"
	"task-planner/internal/taskparse"
	"task-planner/pkg/gcalendar"
)

// defaultEventMinutes is the calendar event span when the input carries no
// duration information.
const defaultEventMinutes = 60

// CreateFromText extracts a draft and schedules a calendar event for it when
// a due date was found. Calendar failures degrade gracefully: the draft is
// still returned, with no link.
func (uc *implUseCase) CreateFromText(ctx context.Context, sc model.Scope, input taskparse.ExtractInput) (taskparse.CreateOutput, error) {
	result, err := uc.Extract(ctx, sc, input)
	if err != nil {
		return taskparse.CreateOutput{}, err
	}

	out := taskparse.CreateOutput{Result: result}
	if !result.Success || result.Draft.DueDate == nil || uc.calendar == nil {
		return out, nil
	}

	out.CalendarLink = uc.tryCreateCalendarEvent(ctx, result.Draft)
	return out, nil
}

// tryCreateCalendarEvent attempts to create a calendar event for the draft.
// Returns the event HTML link, or empty string on failure.
func (uc *implUseCase) tryCreateCalendarEvent(ctx context.Context, draft model.TaskDraft) string {
	startTime := *draft.DueDate
	endTime := startTime.Add(defaultEventMinutes * time.Minute)

	event, err := uc.calendar.CreateEvent(ctx, gcalendar.CreateEventRequest{
		CalendarID:  uc.calendarID,
		Summary:     draft.Title,
		Description: draft.Description,
		StartTime:   startTime,
		EndTime:     endTime,
		Timezone:    uc.timezone,
	})
	if err != nil {
		uc.l.Warnf(ctx, "CreateFromText: calendar event creation failed for %q (non-fatal): %v", draft.Title, err)
		return ""
	}

	uc.l.Infof(ctx, "CreateFromText: calendar event created for %q", draft.Title)
	return event.HtmlLink
}

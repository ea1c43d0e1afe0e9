package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"task-planner/internal/model"
	"task-planner/internal/taskparse"
	"task-planner/pkg/datemath"
	"task-planner/pkg/gcalendar"
)

type mockCalendarClient struct {
	fail bool
	last gcalendar.CreateEventRequest
}

func (m *mockCalendarClient) CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error) {
	m.last = req
	if m.fail {
		return nil, errors.New("cal error")
	}
	return &gcalendar.Event{HtmlLink: "http://cal.link"}, nil
}

func newCreateUseCase(t *testing.T, cal taskparse.CalendarClient) *implUseCase {
	t.Helper()
	categories, users := defaultFixtures()
	resolver, err := datemath.NewParser("UTC")
	if err != nil {
		t.Fatalf("creating resolver: %v", err)
	}
	uc := New(&mockLogger{}, categories, users, resolver, cal, "primary", "UTC")
	return uc.WithClock(func() time.Time { return testBase })
}

func TestCreateFromText(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "u-alice"}

	t.Run("schedules event for draft with due date", func(t *testing.T) {
		cal := &mockCalendarClient{}
		uc := newCreateUseCase(t, cal)

		out, err := uc.CreateFromText(ctx, sc, taskparse.ExtractInput{Text: "Buy milk due tomorrow"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.CalendarLink != "http://cal.link" {
			t.Errorf("calendar link = %q", out.CalendarLink)
		}
		if cal.last.Summary != "Buy milk" {
			t.Errorf("event summary = %q", cal.last.Summary)
		}
		wantStart := time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC)
		if !cal.last.StartTime.Equal(wantStart) {
			t.Errorf("event start = %v, want %v", cal.last.StartTime, wantStart)
		}
		if got := cal.last.EndTime.Sub(cal.last.StartTime); got != time.Hour {
			t.Errorf("event span = %v, want 1h", got)
		}
	})

	t.Run("no due date skips the calendar", func(t *testing.T) {
		cal := &mockCalendarClient{}
		uc := newCreateUseCase(t, cal)

		out, err := uc.CreateFromText(ctx, sc, taskparse.ExtractInput{Text: "Water the plants"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.CalendarLink != "" {
			t.Errorf("calendar link = %q, want empty", out.CalendarLink)
		}
	})

	t.Run("calendar failure is non-fatal", func(t *testing.T) {
		cal := &mockCalendarClient{fail: true}
		uc := newCreateUseCase(t, cal)

		out, err := uc.CreateFromText(ctx, sc, taskparse.ExtractInput{Text: "Buy milk due tomorrow"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.Result.Success {
			t.Fatal("extraction should still succeed")
		}
		if out.CalendarLink != "" {
			t.Errorf("calendar link = %q, want empty", out.CalendarLink)
		}
	})

	t.Run("nil calendar client", func(t *testing.T) {
		uc := newCreateUseCase(t, nil)

		out, err := uc.CreateFromText(ctx, sc, taskparse.ExtractInput{Text: "Buy milk due tomorrow"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.CalendarLink != "" {
			t.Errorf("calendar link = %q, want empty", out.CalendarLink)
		}
	})

	t.Run("failed extraction skips the calendar", func(t *testing.T) {
		cal := &mockCalendarClient{}
		uc := newCreateUseCase(t, cal)

		out, err := uc.CreateFromText(ctx, sc, taskparse.ExtractInput{Text: "assign to Bob due tomorrow"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Result.Success {
			t.Fatal("expected permission failure")
		}
		if out.CalendarLink != "" {
			t.Errorf("calendar link = %q, want empty", out.CalendarLink)
		}
	})
}

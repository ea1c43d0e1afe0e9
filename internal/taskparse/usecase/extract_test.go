package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"task-planner/internal/model"
	"task-planner/internal/taskparse"
	"task-planner/pkg/datemath"
)

var testBase = time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC) // Wednesday

func newTestUseCase(t *testing.T, categories *mockCategoryStore, users *mockUserDirectory) *implUseCase {
	t.Helper()
	resolver, err := datemath.NewParser("UTC")
	if err != nil {
		t.Fatalf("creating resolver: %v", err)
	}
	uc := New(&mockLogger{}, categories, users, resolver, nil, "", "UTC")
	return uc.WithClock(func() time.Time { return testBase })
}

func defaultFixtures() (*mockCategoryStore, *mockUserDirectory) {
	categories := &mockCategoryStore{categories: []model.Category{
		{ID: "cat-meet", Name: "Meetings"},
		{ID: "cat-dev", Name: "Development"},
		{ID: "cat-design", Name: "Design"},
		{ID: "cat-test", Name: "Testing"},
		{ID: "cat-doc", Name: "Documentation"},
	}}
	users := &mockUserDirectory{
		users: []model.User{
			{ID: "u-alice", FirstName: "Alice", LastName: "Nguyen"},
			{ID: "u-bob", FirstName: "Bob", LastName: "Tran"},
			{ID: "u-carol", FirstName: "Carol", LastName: "Le"},
		},
		roles: map[string][]string{
			"u-alice": {"User"},
			"u-bob":   {"User"},
			"u-carol": {"Manager"},
		},
	}
	return categories, users
}

func TestExtractTitle(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"no marker returns full input", "Water the plants", "Water the plants"},
		{"marker ends title", "Submit report by Friday", "Submit report"},
		{"earliest marker wins", "Review code for Bob by Friday", "Review code"},
		{"sentence terminator wins when earlier", "Buy milk. Also eggs by tomorrow", "Buy milk"},
		{"marker case-insensitive", "Finish slides DUE tomorrow", "Finish slides"},
		{"marker at position zero is ignored", " by the way fix the door", "by the way fix the door"},
		{"surrounding whitespace trimmed", "  Call the office at 5pm", "Call the office"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := extractTitle(tt.input); got != tt.want {
				t.Errorf("extractTitle(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestExtractPriority(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  model.Priority
	}{
		{"default medium", "Buy milk tomorrow", model.PriorityMedium},
		{"explicit high phrase", "Fix login with high priority", model.PriorityHigh},
		{"priority colon style", "Deploy service, priority: high", model.PriorityHigh},
		{"explicit low phrase", "Tidy the backlog, low priority", model.PriorityLow},
		{"standalone urgency word", "Fix the outage asap", model.PriorityHigh},
		{"standalone deferral phrase", "Sort photos when you have time", model.PriorityLow},
		{"explicit phrase beats standalone keyword", "Clean desk, low priority, urgent", model.PriorityLow},
		{"explicit high beats deferral word", "Ship it, important priority, no rush", model.PriorityHigh},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := extractPriority(tt.input); got != tt.want {
				t.Errorf("extractPriority(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestExtractCategory(t *testing.T) {
	categories := []model.Category{
		{ID: "c1", Name: "Development"},
		{ID: "c2", Name: "Testing"},
	}

	t.Run("verbatim name beats keyword inference", func(t *testing.T) {
		// "Fix" and "bug" would map to Testing via keywords, but the verbatim
		// mention of Development wins.
		got := extractCategory("Fix bug in Development area", categories)
		if got == nil || *got != "c1" {
			t.Errorf("got %v, want c1", got)
		}
	})

	t.Run("keyword table fallback", func(t *testing.T) {
		got := extractCategory("Fix the login bug", categories)
		if got == nil || *got != "c2" {
			t.Errorf("got %v, want c2", got)
		}
	})

	t.Run("keyword maps to category containing label", func(t *testing.T) {
		cats := []model.Category{{ID: "c3", Name: "Software Development"}}
		got := extractCategory("implement the parser", cats)
		if got == nil || *got != "c3" {
			t.Errorf("got %v, want c3", got)
		}
	})

	t.Run("no match is absent", func(t *testing.T) {
		if got := extractCategory("Water the plants", categories); got != nil {
			t.Errorf("got %v, want nil", got)
		}
	})

	t.Run("table order decides between keyword hits", func(t *testing.T) {
		cats := []model.Category{
			{ID: "c1", Name: "Dev work"},       // never matched: label is "Development"
			{ID: "c2", Name: "Meetings"},
			{ID: "c3", Name: "Testing"},
		}
		// "call" (Meetings) and "bug" (Testing) both fire; Meetings is first.
		got := extractCategory("call about the bug", cats)
		if got == nil || *got != "c2" {
			t.Errorf("got %v, want c2", got)
		}
	})
}

func TestExtract(t *testing.T) {
	ctx := context.Background()

	t.Run("empty input", func(t *testing.T) {
		categories, users := defaultFixtures()
		uc := newTestUseCase(t, categories, users)

		_, err := uc.Extract(ctx, model.Scope{UserID: "u-alice"}, taskparse.ExtractInput{Text: "   "})
		if !errors.Is(err, taskparse.ErrEmptyInput) {
			t.Fatalf("expected ErrEmptyInput, got %v", err)
		}
	})

	t.Run("full sentence", func(t *testing.T) {
		categories, users := defaultFixtures()
		uc := newTestUseCase(t, categories, users)

		res, err := uc.Extract(ctx, model.Scope{UserID: "u-alice"}, taskparse.ExtractInput{Text: "Buy milk due tomorrow at 5pm"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.Success {
			t.Fatalf("expected success, got %q", res.ErrorMessage)
		}
		if res.Draft.Title != "Buy milk" {
			t.Errorf("title = %q, want %q", res.Draft.Title, "Buy milk")
		}
		wantDue := time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC)
		if res.Draft.DueDate == nil || !res.Draft.DueDate.Equal(wantDue) {
			t.Errorf("due date = %v, want %v", res.Draft.DueDate, wantDue)
		}
		if res.Draft.Description != "5pm" {
			t.Errorf("description = %q, want %q", res.Draft.Description, "5pm")
		}
		if res.Draft.AssignedToUserID != "u-alice" || res.Draft.AssignedByUserID != "u-alice" {
			t.Errorf("assignment = %s/%s, want u-alice/u-alice", res.Draft.AssignedToUserID, res.Draft.AssignedByUserID)
		}
		if !res.Draft.AssignedOn.Equal(testBase) {
			t.Errorf("assignedOn = %v, want %v", res.Draft.AssignedOn, testBase)
		}
	})

	t.Run("title fallback keeps full input and empty description", func(t *testing.T) {
		categories, users := defaultFixtures()
		uc := newTestUseCase(t, categories, users)

		res, err := uc.Extract(ctx, model.Scope{UserID: "u-alice"}, taskparse.ExtractInput{Text: "Water the plants"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Draft.Title != "Water the plants" {
			t.Errorf("title = %q", res.Draft.Title)
		}
		if res.Draft.DueDate != nil {
			t.Errorf("due date = %v, want nil", res.Draft.DueDate)
		}
		if res.Draft.Description != "" {
			t.Errorf("description = %q, want empty", res.Draft.Description)
		}
	})

	t.Run("category store failure leaves category absent", func(t *testing.T) {
		categories, users := defaultFixtures()
		categories.fail = true
		uc := newTestUseCase(t, categories, users)

		res, err := uc.Extract(ctx, model.Scope{UserID: "u-alice"}, taskparse.ExtractInput{Text: "Plan the design review meeting"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.Success {
			t.Fatalf("expected success, got %q", res.ErrorMessage)
		}
		if res.Draft.CategoryID != nil {
			t.Errorf("category = %v, want nil", res.Draft.CategoryID)
		}
	})

	t.Run("fault during extraction is recovered", func(t *testing.T) {
		categories, users := defaultFixtures()
		uc := newTestUseCase(t, categories, users)
		uc.resolver = panicResolver{}

		res, err := uc.Extract(ctx, model.Scope{UserID: "u-alice"}, taskparse.ExtractInput{Text: "Buy milk due tomorrow"})
		if err != nil {
			t.Fatalf("panic must not surface as error, got %v", err)
		}
		if res.Success {
			t.Fatal("expected failure result")
		}
		if res.ErrorMessage == "" {
			t.Fatal("expected error message")
		}
		// Partial draft is preserved: title ran before the fault.
		if res.Draft.Title != "Buy milk" {
			t.Errorf("partial draft title = %q, want %q", res.Draft.Title, "Buy milk")
		}
	})
}

type panicResolver struct{}

func (panicResolver) Resolve(phrase string, base time.Time) (time.Time, bool) {
	panic("resolver exploded")
}

func TestExtractAssigneePermissions(t *testing.T) {
	ctx := context.Background()

	setRoles := func(users *mockUserDirectory, roles ...string) {
		users.roles["u-alice"] = roles
	}

	t.Run("plain user assigning to someone else fails", func(t *testing.T) {
		categories, users := defaultFixtures()
		setRoles(users, "User")
		uc := newTestUseCase(t, categories, users)

		res, err := uc.Extract(ctx, model.Scope{UserID: "u-alice"}, taskparse.ExtractInput{Text: "Review the slides, assign to Bob"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Success {
			t.Fatal("expected permission failure")
		}
		if !strings.Contains(res.ErrorMessage, "permission") {
			t.Errorf("error message = %q, want a permission explanation", res.ErrorMessage)
		}
		// Safe default retained.
		if res.Draft.AssignedToUserID != "u-alice" {
			t.Errorf("assignee = %s, want requester", res.Draft.AssignedToUserID)
		}
	})

	t.Run("manager assigning to anyone succeeds", func(t *testing.T) {
		categories, users := defaultFixtures()
		setRoles(users, "Manager")
		uc := newTestUseCase(t, categories, users)

		res, err := uc.Extract(ctx, model.Scope{UserID: "u-alice"}, taskparse.ExtractInput{Text: "Review the slides, assign to Bob"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.Success {
			t.Fatalf("expected success, got %q", res.ErrorMessage)
		}
		if res.Draft.AssignedToUserID != "u-bob" {
			t.Errorf("assignee = %s, want u-bob", res.Draft.AssignedToUserID)
		}
		if res.Draft.AssignedByUserID != "u-alice" {
			t.Errorf("assigner = %s, want u-alice", res.Draft.AssignedByUserID)
		}
	})

	t.Run("lead may assign to plain users", func(t *testing.T) {
		categories, users := defaultFixtures()
		setRoles(users, "Lead")
		uc := newTestUseCase(t, categories, users)

		res, _ := uc.Extract(ctx, model.Scope{UserID: "u-alice"}, taskparse.ExtractInput{Text: "assign to Bob due friday"})
		if !res.Success || res.Draft.AssignedToUserID != "u-bob" {
			t.Errorf("lead→user assignment failed: success=%v assignee=%s", res.Success, res.Draft.AssignedToUserID)
		}
	})

	t.Run("lead may not assign to a manager", func(t *testing.T) {
		categories, users := defaultFixtures()
		setRoles(users, "Lead")
		uc := newTestUseCase(t, categories, users)

		res, _ := uc.Extract(ctx, model.Scope{UserID: "u-alice"}, taskparse.ExtractInput{Text: "delegate to Carol"})
		if res.Success {
			t.Fatal("expected permission failure")
		}
	})

	t.Run("assigning to yourself always succeeds", func(t *testing.T) {
		categories, users := defaultFixtures()
		setRoles(users, "User")
		uc := newTestUseCase(t, categories, users)

		res, _ := uc.Extract(ctx, model.Scope{UserID: "u-alice"}, taskparse.ExtractInput{Text: "assign to Alice"})
		if !res.Success || res.Draft.AssignedToUserID != "u-alice" {
			t.Errorf("self assignment failed: success=%v assignee=%s", res.Success, res.Draft.AssignedToUserID)
		}
	})

	t.Run("unknown name keeps requester without failure", func(t *testing.T) {
		categories, users := defaultFixtures()
		uc := newTestUseCase(t, categories, users)

		res, _ := uc.Extract(ctx, model.Scope{UserID: "u-alice"}, taskparse.ExtractInput{Text: "assign to Zorro"})
		if !res.Success {
			t.Fatalf("expected success, got %q", res.ErrorMessage)
		}
		if res.Draft.AssignedToUserID != "u-alice" {
			t.Errorf("assignee = %s, want requester", res.Draft.AssignedToUserID)
		}
	})

	t.Run("full name resolution", func(t *testing.T) {
		categories, users := defaultFixtures()
		setRoles(users, "Manager")
		uc := newTestUseCase(t, categories, users)

		res, _ := uc.Extract(ctx, model.Scope{UserID: "u-alice"}, taskparse.ExtractInput{Text: "assign to bob tran"})
		if !res.Success || res.Draft.AssignedToUserID != "u-bob" {
			t.Errorf("full name assignment failed: success=%v assignee=%s", res.Success, res.Draft.AssignedToUserID)
		}
	})
}

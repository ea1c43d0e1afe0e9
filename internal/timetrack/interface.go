package timetrack

import (
	"context"

	"task-planner/internal/model"
)

// UseCase defines the business logic interface for per-task time tracking.
//
// Callers must serialize Start/Pause/Resume/Stop for a given (task, user):
// each transition reads then writes the session row, so concurrent
// unsynchronized calls can corrupt pause totals or leave two sessions
// active. The engine documents this requirement and takes no locks itself.
type UseCase interface {
	// Start opens a new session for (task, user). Any session already
	// active for the user — on any task — is stopped first.
	Start(ctx context.Context, sc model.Scope, input StartInput) (SessionOutput, error)

	// Pause freezes elapsed accrual on the running session for (task, user).
	Pause(ctx context.Context, sc model.Scope, input PauseInput) (SessionOutput, error)

	// Resume folds the outstanding pause interval and continues accrual.
	Resume(ctx context.Context, sc model.Scope, input ResumeInput) (SessionOutput, error)

	// Stop closes the active session for (task, user), folding any
	// outstanding pause interval first.
	Stop(ctx context.Context, sc model.Scope, input StopInput) (SessionOutput, error)

	// Active returns the requesting user's active session, if any.
	Active(ctx context.Context, sc model.Scope) (ActiveOutput, error)

	// ForTask lists all sessions recorded against a task, newest first.
	ForTask(ctx context.Context, sc model.Scope, taskID string) (LogsOutput, error)

	// Edit updates the user-editable fields of a session. System-owned
	// fields (user, pause state, pause totals) are never changed by Edit.
	Edit(ctx context.Context, sc model.Scope, input EditInput) (SessionOutput, error)

	// AddDescription attaches a description to a recently stopped session.
	AddDescription(ctx context.Context, sc model.Scope, input AddDescriptionInput) (SessionOutput, error)

	// Report lists sessions started within a date range. Managers and
	// Leads only.
	Report(ctx context.Context, sc model.Scope, input ReportInput) (ReportOutput, error)
}

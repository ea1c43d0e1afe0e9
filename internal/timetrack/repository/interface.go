package repository

import (
	"context"
	"time"

	"task-planner/internal/model"
)

// SessionRepository defines all data access methods for timer sessions.
// Implementations must serialize writes per user; the engine relies on that
// to keep at most one active session per user.
type SessionRepository interface {
	Create(ctx context.Context, opt CreateSessionOptions) (model.TimerSession, error)
	Update(ctx context.Context, session model.TimerSession) (model.TimerSession, error)
	GetOne(ctx context.Context, logID string) (model.TimerSession, error)

	// FindActiveByUser returns the user's open session on any task.
	FindActiveByUser(ctx context.Context, userID string) (model.TimerSession, error)

	// FindActive returns the open session for a (task, user) pair.
	FindActive(ctx context.Context, taskID, userID string) (model.TimerSession, error)

	ListByTask(ctx context.Context, taskID string) ([]model.TimerSession, error)
	ListByRange(ctx context.Context, from, to time.Time) ([]model.TimerSession, error)
}

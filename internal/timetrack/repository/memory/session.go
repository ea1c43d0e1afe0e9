package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"task-planner/internal/model"
	"task-planner/internal/timetrack/repository"
)

// implRepository is an in-memory SessionRepository. The mutex serializes
// all access, which also satisfies the engine's per-user write ordering
// requirement for a single process.
type implRepository struct {
	mu       sync.RWMutex
	sessions map[string]model.TimerSession
}

// New creates an empty in-memory session repository.
func New() repository.SessionRepository {
	return &implRepository{
		sessions: make(map[string]model.TimerSession),
	}
}

func (r *implRepository) Create(ctx context.Context, opt repository.CreateSessionOptions) (model.TimerSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	session := model.TimerSession{
		LogID:     uuid.NewString(),
		TaskID:    opt.TaskID,
		UserID:    opt.UserID,
		StartTime: opt.StartTime,
	}
	r.sessions[session.LogID] = session
	return session, nil
}

func (r *implRepository) Update(ctx context.Context, session model.TimerSession) (model.TimerSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[session.LogID]; !ok {
		return model.TimerSession{}, repository.ErrSessionNotFound
	}
	r.sessions[session.LogID] = session
	return session, nil
}

func (r *implRepository) GetOne(ctx context.Context, logID string) (model.TimerSession, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	session, ok := r.sessions[logID]
	if !ok {
		return model.TimerSession{}, repository.ErrSessionNotFound
	}
	return session, nil
}

func (r *implRepository) FindActiveByUser(ctx context.Context, userID string) (model.TimerSession, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, s := range r.sessions {
		if s.UserID == userID && s.Active() {
			return s, nil
		}
	}
	return model.TimerSession{}, repository.ErrSessionNotFound
}

func (r *implRepository) FindActive(ctx context.Context, taskID, userID string) (model.TimerSession, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, s := range r.sessions {
		if s.TaskID == taskID && s.UserID == userID && s.Active() {
			return s, nil
		}
	}
	return model.TimerSession{}, repository.ErrSessionNotFound
}

func (r *implRepository) ListByTask(ctx context.Context, taskID string) ([]model.TimerSession, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []model.TimerSession
	for _, s := range r.sessions {
		if s.TaskID == taskID {
			result = append(result, s)
		}
	}
	sortByStartDesc(result)
	return result, nil
}

func (r *implRepository) ListByRange(ctx context.Context, from, to time.Time) ([]model.TimerSession, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []model.TimerSession
	for _, s := range r.sessions {
		if !s.StartTime.Before(from) && s.StartTime.Before(to) {
			result = append(result, s)
		}
	}
	sortByStartDesc(result)
	return result, nil
}

func sortByStartDesc(sessions []model.TimerSession) {
	sort.Slice(sessions, func(i, j int) bool {
		return sessions[i].StartTime.After(sessions[j].StartTime)
	})
}

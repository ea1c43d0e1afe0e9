package usecase

import (
	"time"

	"task-planner/internal/directory"
	"task-planner/internal/timetrack/repository"
	pkgLog "task-planner/pkg/log"
)

// DefaultDescriptionWindow is how long after stopping a session its
// description may still be added.
const DefaultDescriptionWindow = 30 * time.Minute

type implUseCase struct {
	l          pkgLog.Logger
	repo       repository.SessionRepository
	users      directory.UserDirectory
	descWindow time.Duration
	now        func() time.Time
}

// New creates a new timetrack UseCase instance. descWindow <= 0 selects
// DefaultDescriptionWindow.
func New(
	l pkgLog.Logger,
	repo repository.SessionRepository,
	users directory.UserDirectory,
	descWindow time.Duration,
) *implUseCase {
	if descWindow <= 0 {
		descWindow = DefaultDescriptionWindow
	}
	return &implUseCase{
		l:          l,
		repo:       repo,
		users:      users,
		descWindow: descWindow,
		now:        time.Now,
	}
}

// WithClock overrides the time source. Used by tests.
func (uc *implUseCase) WithClock(now func() time.Time) *implUseCase {
	uc.now = now
	return uc
}

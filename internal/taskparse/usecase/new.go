package usecase

import (
	"time"

	"task-planner/internal/directory"
	"task-planner/internal/taskparse"
	pkgLog "task-planner/pkg/log"
)

type implUseCase struct {
	l          pkgLog.Logger
	categories directory.CategoryStore
	users      directory.UserDirectory
	resolver   taskparse.DateResolver
	calendar   taskparse.CalendarClient
	calendarID string
	timezone   string
	now        func() time.Time
}

// New creates a new taskparse UseCase instance. calendar may be nil, in
// which case CreateFromText skips event scheduling.
func New(
	l pkgLog.Logger,
	categories directory.CategoryStore,
	users directory.UserDirectory,
	resolver taskparse.DateResolver,
	calendar taskparse.CalendarClient,
	calendarID string,
	timezone string,
) *implUseCase {
	return &implUseCase{
		l:          l,
		categories: categories,
		users:      users,
		resolver:   resolver,
		calendar:   calendar,
		calendarID: calendarID,
		timezone:   timezone,
		now:        time.Now,
	}
}

// WithClock overrides the time source. Used by tests.
func (uc *implUseCase) WithClock(now func() time.Time) *implUseCase {
	uc.now = now
	return uc
}

package http

import (
	"task-planner/internal/timetrack"
	pkgErrors "task-planner/pkg/errors"
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch err {
	case timetrack.ErrTaskRequired:
		return pkgErrors.NewHTTPError(400, "task id is required")
	case timetrack.ErrNoActiveTimer:
		return pkgErrors.NewHTTPError(400, "no active timer found for this task")
	case timetrack.ErrNoRunningTimer:
		return pkgErrors.NewHTTPError(400, "no running timer found for this task")
	case timetrack.ErrNoPausedTimer:
		return pkgErrors.NewHTTPError(400, "no paused timer found for this task")
	case timetrack.ErrLogNotFound:
		return pkgErrors.NewHTTPError(404, "time log not found")
	case timetrack.ErrNotOwner:
		return pkgErrors.NewHTTPError(403, "time log belongs to another user")
	case timetrack.ErrNotPermitted:
		return pkgErrors.NewHTTPError(403, "requires Manager or Lead role")
	case timetrack.ErrEditWindowClosed:
		return pkgErrors.NewHTTPError(400, "description window has closed")
	default:
		return pkgErrors.NewHTTPError(500, "internal server error")
	}
}

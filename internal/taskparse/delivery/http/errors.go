package http

import (
	"task-planner/internal/taskparse"
	pkgErrors "task-planner/pkg/errors"
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch err {
	case taskparse.ErrEmptyInput:
		return pkgErrors.NewHTTPError(400, "input text is empty")
	default:
		return pkgErrors.NewHTTPError(500, "internal server error")
	}
}

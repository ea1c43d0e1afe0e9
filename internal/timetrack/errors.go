package timetrack

import "errors"

// Domain-specific errors for the timetrack package. Invalid transitions are
// recoverable: they report the condition and leave the session untouched.
var (
	ErrTaskRequired     = errors.New("task id is required")
	ErrNoActiveTimer    = errors.New("no active timer found to stop")
	ErrNoRunningTimer   = errors.New("no active timer found to pause")
	ErrNoPausedTimer    = errors.New("no paused timer found to resume")
	ErrLogNotFound      = errors.New("time log not found")
	ErrNotOwner         = errors.New("time log belongs to another user")
	ErrNotPermitted     = errors.New("operation requires Manager or Lead role")
	ErrEditWindowClosed = errors.New("description can only be added shortly after stopping")
)

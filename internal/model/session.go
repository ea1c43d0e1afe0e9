package model

import "time"

// TimerSession is one time-tracking record per (task, user) start event.
// At most one session per user may be active (EndTime == nil) at a time;
// the timetrack use case maintains that invariant.
type TimerSession struct {
	LogID       string
	TaskID      string
	UserID      string
	StartTime   time.Time
	EndTime     *time.Time
	Description string

	// Pause bookkeeping. These fields are system-owned: external edit
	// paths must never overwrite them.
	IsPaused           bool
	PauseTime          *time.Time
	TotalPausedMinutes int
}

// Active reports whether the session is still open (running or paused).
func (s TimerSession) Active() bool {
	return s.EndTime == nil
}

// DurationMinutesAt returns net elapsed minutes at the given instant:
// (endpoint − StartTime) − TotalPausedMinutes, truncated to whole minutes.
// The endpoint is EndTime when stopped, PauseTime when paused, else now.
// The raw value is returned unclamped; a negative result signals
// inconsistent data and is the caller's policy to handle.
func (s TimerSession) DurationMinutesAt(now time.Time) int {
	endpoint := now
	switch {
	case s.EndTime != nil:
		endpoint = *s.EndTime
	case s.IsPaused && s.PauseTime != nil:
		endpoint = *s.PauseTime
	}
	return int(endpoint.Sub(s.StartTime).Minutes()) - s.TotalPausedMinutes
}

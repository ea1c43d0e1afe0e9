package repository

import "time"

// CreateSessionOptions holds parameters for opening a new timer session.
type CreateSessionOptions struct {
	TaskID    string
	UserID    string
	StartTime time.Time
}

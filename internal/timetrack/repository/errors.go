package repository

import "errors"

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrFailedToInsert  = errors.New("failed to insert session")
	ErrFailedToUpdate  = errors.New("failed to update session")
)

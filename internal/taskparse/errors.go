package taskparse

import "errors"

// Domain-specific errors for the taskparse package.
var (
	ErrEmptyInput = errors.New("input text is empty")
)

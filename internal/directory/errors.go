package directory

import "errors"

var (
	ErrUserNotFound = errors.New("user not found")
)

package middleware

import (
	"task-planner/internal/directory"
	"task-planner/pkg/log"
)

type Middleware struct {
	l       log.Logger
	users   directory.UserDirectory
	limiter *rateLimiter
}

// New creates the middleware set. requestsPerMin <= 0 disables rate
// limiting.
func New(l log.Logger, users directory.UserDirectory, requestsPerMin int) Middleware {
	var limiter *rateLimiter
	if requestsPerMin > 0 {
		limiter = newRateLimiter(requestsPerMin)
	}
	return Middleware{
		l:       l,
		users:   users,
		limiter: limiter,
	}
}

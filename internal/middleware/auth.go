package middleware

import (
	"github.com/gin-gonic/gin"

	"task-planner/internal/model"
	"task-planner/pkg/response"
)

const (
	// HeaderUserID carries the authenticated caller's user ID, set by the
	// identity proxy in front of this service.
	HeaderUserID = "X-User-ID"

	scopeKey = "scope"
)

// Auth resolves the caller from the user ID header and stores a Scope in
// the request context. Unknown or missing users are rejected.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetHeader(HeaderUserID)
		if userID == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		if _, err := m.users.FindByID(c.Request.Context(), userID); err != nil {
			m.l.Warnf(c.Request.Context(), "middleware.Auth: unknown user %q", userID)
			response.Unauthorized(c)
			c.Abort()
			return
		}

		c.Set(scopeKey, model.Scope{UserID: userID})
		c.Next()
	}
}

// GetScope returns the Scope stored by Auth. The zero Scope means the
// route skipped authentication.
func GetScope(c *gin.Context) model.Scope {
	v, ok := c.Get(scopeKey)
	if !ok {
		return model.Scope{}
	}
	sc, _ := v.(model.Scope)
	return sc
}

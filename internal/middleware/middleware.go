package middleware

import (
	"time"

	"cryptobuzz-srv/pkg/log"
	postgres "cryptobuzz-srv/pkg/postgre"
	"cryptobuzz-srv/pkg/response"
	"cryptobuzz-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

const userIDHeader = "X-User-ID"

// Scope resolves the caller identity and stores it in the request context.
// There is no authentication: an explicit X-User-ID is trusted, otherwise the demo user is used.
func (m Middleware) Scope() gin.HandlerFunc {
	return func(c *gin.Context) {
		sc := m.defaultScope
		if id := c.GetHeader(userIDHeader); id != "" {
			if !postgres.IsValidUUID(id) {
				m.l.Warnf(c.Request.Context(), "internal.middleware.Scope: invalid %s header | Path: %s", userIDHeader, c.Request.URL.Path)
				response.Unauthorized(c)
				c.Abort()
				return
			}
			sc.UserID = id
			sc.Email = ""
		}

		if sc.IsZero() {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		ctx := scope.SetScopeToContext(c.Request.Context(), sc)
		ctx = log.WithFields(ctx, m.l, "user_id", sc.UserID)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// Logger logs one line per request once the handler returns.
func (m Middleware) Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		ctx := c.Request.Context()
		switch {
		case status >= 500:
			m.l.Errorf(ctx, "%s %s %d %s", c.Request.Method, c.Request.URL.Path, status, time.Since(start))
		case status >= 400:
			m.l.Warnf(ctx, "%s %s %d %s", c.Request.Method, c.Request.URL.Path, status, time.Since(start))
		default:
			m.l.Debugf(ctx, "%s %s %d %s", c.Request.Method, c.Request.URL.Path, status, time.Since(start))
		}
	}
}

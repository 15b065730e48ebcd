package middleware

import (
	"threatmonitor-api/pkg/errors"
	"threatmonitor-api/pkg/response"
	"threatmonitor-api/pkg/scope"

	"github.com/gin-gonic/gin"
)

// RateLimit returns a middleware that enforces the per-principal request
// budget. The key is the caller's user ID, falling back to the client IP
// for unauthenticated routes. A limiter backend failure lets the request
// through so a Redis outage cannot take ingestion down with it.
func (m Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		key := c.ClientIP()
		if sc, ok := scope.GetScopeFromContext(ctx); ok && sc.UserID != "" {
			key = sc.UserID
		}

		allowed, err := m.limiter.Allow(ctx, key)
		if err != nil {
			m.l.Warnf(ctx, "Rate limiter unavailable, allowing request: %v | Path: %s", err, c.Request.URL.Path)
			c.Next()
			return
		}
		if !allowed {
			m.audit.LogRateLimitExceeded(ctx, key, c.Request.URL.Path)
			response.Error(c, errors.NewRateLimitError(key, m.limiter.Limit()))
			c.Abort()
			return
		}

		c.Next()
	}
}

package middleware

import (
	"threatmonitor-api/internal/policy"
	"threatmonitor-api/pkg/response"
	"threatmonitor-api/pkg/scope"

	"github.com/gin-gonic/gin"
)

// Authorize returns a middleware that resolves the caller's role from the
// verified payload and checks it against the access table for resource.
// Denials are logged with the caller and route but the response body never
// names the resource. Must run after Auth.
func (m Middleware) Authorize(resource policy.Resource) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		payload, ok := scope.GetPayloadFromContext(ctx)
		if !ok {
			m.l.Warnf(ctx, "Missing token payload in context | Path: %s", c.Request.URL.Path)
			response.Unauthorized(c)
			c.Abort()
			return
		}

		sc := scope.NewScope(payload)
		if !sc.IsAuthenticated() {
			m.l.Warnf(ctx, "Token payload carries no subject | Path: %s", c.Request.URL.Path)
			response.Unauthorized(c)
			c.Abort()
			return
		}

		if !policy.Authorize(sc, resource, c.Request.Method) {
			m.audit.LogAuthorizationFailure(ctx, sc.UserID, sc.Role, c.Request.Method, c.Request.URL.Path)
			response.Forbidden(c)
			c.Abort()
			return
		}

		c.Request = c.Request.WithContext(scope.SetScopeToContext(ctx, sc))
		c.Next()
	}
}

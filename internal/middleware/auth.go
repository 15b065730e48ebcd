package middleware

import (
	"strings"

	"threatmonitor-api/pkg/response"
	"threatmonitor-api/pkg/scope"

	"github.com/gin-gonic/gin"
)

// Auth returns a middleware that validates JWT tokens and sets the payload in context.
// It extracts the token from the Authorization header and verifies it using the JWT manager.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			m.audit.LogAuthenticationFailure(ctx, c.Request.Method, c.Request.URL.Path, "missing Authorization header")
			response.Unauthorized(c)
			c.Abort()
			return
		}

		// Extract token from "Bearer <token>" format
		const bearerPrefix = "Bearer "
		if !strings.HasPrefix(authHeader, bearerPrefix) {
			m.audit.LogAuthenticationFailure(ctx, c.Request.Method, c.Request.URL.Path, "invalid Authorization header format")
			response.Unauthorized(c)
			c.Abort()
			return
		}

		tokenString := strings.TrimSpace(authHeader[len(bearerPrefix):])
		if tokenString == "" {
			m.audit.LogAuthenticationFailure(ctx, c.Request.Method, c.Request.URL.Path, "empty bearer token")
			response.Unauthorized(c)
			c.Abort()
			return
		}

		payload, err := m.jwtManager.Verify(tokenString)
		if err != nil {
			m.l.Warnf(ctx, "Token verification failed: %v | Path: %s", err, c.Request.URL.Path)
			m.audit.LogAuthenticationFailure(ctx, c.Request.Method, c.Request.URL.Path, "token verification failed")
			response.Unauthorized(c)
			c.Abort()
			return
		}

		// Set payload in context for use in handlers
		c.Request = c.Request.WithContext(scope.SetPayloadToContext(ctx, payload))

		c.Next()
	}
}

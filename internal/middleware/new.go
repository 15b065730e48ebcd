package middleware

import (
	"threatmonitor-api/internal/policy"
	"threatmonitor-api/internal/ratelimit"
	"threatmonitor-api/pkg/log"
	"threatmonitor-api/pkg/scope"
)

type Middleware struct {
	l          log.Logger
	jwtManager scope.Manager
	limiter    ratelimit.Limiter
	audit      *policy.AuditLogger
}

func New(l log.Logger, jwtManager scope.Manager, limiter ratelimit.Limiter) Middleware {
	return Middleware{
		l:          l,
		jwtManager: jwtManager,
		limiter:    limiter,
		audit:      policy.NewAuditLogger(l),
	}
}

package policy

import (
	"context"
	"time"

	"threatmonitor-api/pkg/log"
)

// SecurityEventType classifies security-relevant request outcomes.
type SecurityEventType string

const (
	SecurityEventAuthenticationFailure SecurityEventType = "authentication_failure"
	SecurityEventAuthorizationFailure  SecurityEventType = "authorization_failure"
	SecurityEventRateLimitExceeded     SecurityEventType = "rate_limit_exceeded"
)

// SecurityEvent is the structured payload for audit log entries.
type SecurityEvent struct {
	Type      SecurityEventType `json:"type"`
	UserID    string            `json:"user_id,omitempty"`
	Role      string            `json:"role,omitempty"`
	Method    string            `json:"method,omitempty"`
	Path      string            `json:"path,omitempty"`
	Reason    string            `json:"reason"`
	Timestamp time.Time         `json:"timestamp"`
}

// AuditLogger records security-relevant events in a consistent shape so
// they can be filtered out of the main log stream.
type AuditLogger struct {
	l log.Logger
}

// NewAuditLogger creates a new AuditLogger.
func NewAuditLogger(l log.Logger) *AuditLogger {
	return &AuditLogger{l: l}
}

// LogAuthenticationFailure records a rejected or missing credential.
func (a *AuditLogger) LogAuthenticationFailure(ctx context.Context, method, path, reason string) {
	a.log(ctx, SecurityEvent{
		Type:   SecurityEventAuthenticationFailure,
		Method: method,
		Path:   path,
		Reason: reason,
	})
}

// LogAuthorizationFailure records a role that was denied a resource.
func (a *AuditLogger) LogAuthorizationFailure(ctx context.Context, userID, role, method, path string) {
	a.log(ctx, SecurityEvent{
		Type:   SecurityEventAuthorizationFailure,
		UserID: userID,
		Role:   role,
		Method: method,
		Path:   path,
		Reason: "role not permitted for resource",
	})
}

// LogRateLimitExceeded records an exhausted request budget.
func (a *AuditLogger) LogRateLimitExceeded(ctx context.Context, userID, path string) {
	a.log(ctx, SecurityEvent{
		Type:   SecurityEventRateLimitExceeded,
		UserID: userID,
		Path:   path,
		Reason: "request budget exhausted",
	})
}

func (a *AuditLogger) log(ctx context.Context, event SecurityEvent) {
	event.Timestamp = time.Now().UTC()
	a.l.Warnf(ctx, "security event: type=%s, user=%s, role=%s, method=%s, path=%s, reason=%s",
		event.Type, event.UserID, event.Role, event.Method, event.Path, event.Reason)
}

package model

// Roles resolved from the identity provider's group claims.
const (
	RoleAdmin   = "ADMIN"
	RoleAnalyst = "ANALYST"
	// RoleViewer is any authenticated principal outside the Admin and
	// Analyst groups. Viewers may ingest events and nothing else.
	RoleViewer = "VIEWER"
)

// Scope is the per-request caller identity, resolved once from the
// verified token payload.
type Scope struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"` // ADMIN, ANALYST, or VIEWER
	JTI      string `json:"jti"`
}

// IsAuthenticated reports whether the scope belongs to a verified caller.
func (s Scope) IsAuthenticated() bool {
	return s.UserID != "" || s.Username != ""
}

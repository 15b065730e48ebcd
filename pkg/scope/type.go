package scope

import "github.com/golang-jwt/jwt"

// Payload represents the JWT token claims supplied by the identity provider.
type Payload struct {
	jwt.StandardClaims
	UserID   string   `json:"sub"`      // Subject (user ID)
	Username string   `json:"username"` // Username
	Groups   []string `json:"groups"`   // Group memberships
}

// PayloadCtxKey is the context key for the verified token payload.
type PayloadCtxKey struct{}

// ScopeCtxKey is the context key for the resolved request scope.
type ScopeCtxKey struct{}

type implManager struct {
	secretKey string
}

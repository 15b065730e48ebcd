package scope

import "time"

const (
	// TokenExpirationDuration is the default JWT token expiration (1 week).
	TokenExpirationDuration = time.Hour * 24 * 7
)

// Group names assigned by the identity provider. Role resolution happens
// once per request in NewScope; handlers only ever see the typed role.
const (
	GroupAdmin   = "Admin"
	GroupAnalyst = "Analyst"
)

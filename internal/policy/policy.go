// Package policy holds the static role-based access table for the API.
// Authorization is decided from the resolved role and the request method
// alone, with no per-object rules.
package policy

import (
	"net/http"

	"threatmonitor-api/internal/model"
)

// Resource identifies a protected API surface.
type Resource string

const (
	ResourceEvent Resource = "event"
	ResourceAlert Resource = "alert"
)

// allowedRoles maps resource and method to the roles permitted to call it.
// Absent entries deny everyone.
var allowedRoles = map[Resource]map[string][]string{
	ResourceEvent: {
		http.MethodPost: {model.RoleAdmin, model.RoleAnalyst, model.RoleViewer},
		http.MethodGet:  {model.RoleAdmin},
	},
	ResourceAlert: {
		http.MethodGet:   {model.RoleAdmin, model.RoleAnalyst},
		http.MethodPatch: {model.RoleAdmin},
	},
}

// Authorize reports whether the scope's role may perform method on resource.
func Authorize(sc model.Scope, resource Resource, method string) bool {
	methods, ok := allowedRoles[resource]
	if !ok {
		return false
	}
	roles, ok := methods[method]
	if !ok {
		return false
	}
	for _, role := range roles {
		if sc.Role == role {
			return true
		}
	}
	return false
}

package repository

import (
	"threatmonitor-api/internal/model"
	"threatmonitor-api/pkg/paginator"
)

// Filter narrows the alert listing. Nil fields match everything. Severity
// filters on the triggering event's severity, not a stored copy.
type Filter struct {
	Status   *model.AlertStatus
	Severity *model.Severity
}

// orderingColumns whitelists the sortable columns and maps the API
// ordering keys to SQL clauses on the aliased query.
var orderingColumns = map[string]string{
	"created_at":  "a.created_at ASC",
	"-created_at": "a.created_at DESC",
	"status":      "a.status ASC",
	"-status":     "a.status DESC",
}

// DefaultOrdering sorts newest first.
const DefaultOrdering = "-created_at"

// GetOptions contains options for paginated alert listing.
type GetOptions struct {
	Filter        Filter
	Ordering      string
	PaginateQuery paginator.PaginateQuery
}

// OrderClause resolves the ordering key to its SQL clause, falling back
// to the default for unknown keys.
func (o GetOptions) OrderClause() string {
	if clause, ok := orderingColumns[o.Ordering]; ok {
		return clause
	}
	return orderingColumns[DefaultOrdering]
}

// IsValidOrdering reports whether key is a whitelisted ordering value.
func IsValidOrdering(key string) bool {
	_, ok := orderingColumns[key]
	return ok
}

// CreateIfAbsentOptions contains options for the idempotent alert insert.
type CreateIfAbsentOptions struct {
	Alert model.Alert
}

// UpdateStatusOptions contains options for an alert status change.
type UpdateStatusOptions struct {
	ID     string
	Status model.AlertStatus
}

package repository

import (
	"threatmonitor-api/internal/model"
	"threatmonitor-api/pkg/paginator"
)

// CreateOptions contains options for persisting an event.
type CreateOptions struct {
	Event model.Event
}

// GetOptions contains options for paginated event listing.
// Events are always returned newest first.
type GetOptions struct {
	PaginateQuery paginator.PaginateQuery
}

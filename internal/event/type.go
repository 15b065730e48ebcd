package event

import (
	"threatmonitor-api/internal/model"
	"threatmonitor-api/pkg/paginator"
)

// CreateInput carries the raw ingestion fields. Sanitization and
// normalization happen in the usecase, not at the transport boundary.
type CreateInput struct {
	SourceName  string
	EventType   string
	Severity    string
	Description string
}

type GetInput struct {
	PaginateQuery paginator.PaginateQuery
}

type EventOutput struct {
	Event model.Event
}

type GetEventOutput struct {
	Events    []model.Event
	Paginator paginator.Paginator
}

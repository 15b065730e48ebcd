package alert

import (
	"threatmonitor-api/internal/model"
	"threatmonitor-api/pkg/paginator"
)

// GetInput carries the raw list parameters. Unknown filter or ordering
// values are ignored rather than rejected.
type GetInput struct {
	Status        string
	Severity      string
	Ordering      string
	PaginateQuery paginator.PaginateQuery
}

type UpdateStatusInput struct {
	ID     string
	Status string
}

type AlertOutput struct {
	Alert model.Alert
}

type GetAlertOutput struct {
	Alerts    []model.Alert
	Paginator paginator.Paginator
}

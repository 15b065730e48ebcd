package repository

import (
	"context"
	"errors"

	"threatmonitor-api/internal/model"
	"threatmonitor-api/pkg/paginator"
)

// ErrNotFound is returned when no row matches the query.
var ErrNotFound = errors.New("record not found")

//go:generate mockery --name Repository
type Repository interface {
	Get(ctx context.Context, sc model.Scope, opts GetOptions) ([]model.Alert, paginator.Paginator, error)
	Detail(ctx context.Context, sc model.Scope, id string) (model.Alert, error)
	GetByEventID(ctx context.Context, sc model.Scope, eventID string) (model.Alert, error)

	// CreateIfAbsent atomically inserts the alert unless one already
	// exists for the same event. Returns the stored alert and true on
	// insert, or the zero alert and false when another writer won.
	CreateIfAbsent(ctx context.Context, sc model.Scope, opts CreateIfAbsentOptions) (model.Alert, bool, error)

	UpdateStatus(ctx context.Context, sc model.Scope, opts UpdateStatusOptions) (model.Alert, error)
}

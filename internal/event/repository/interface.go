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
	Create(ctx context.Context, sc model.Scope, opts CreateOptions) (model.Event, error)
	Get(ctx context.Context, sc model.Scope, opts GetOptions) ([]model.Event, paginator.Paginator, error)
	Detail(ctx context.Context, sc model.Scope, id string) (model.Event, error)
}

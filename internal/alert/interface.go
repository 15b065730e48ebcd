package alert

import (
	"context"

	"threatmonitor-api/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Get(ctx context.Context, sc model.Scope, ip GetInput) (GetAlertOutput, error)
	Detail(ctx context.Context, sc model.Scope, id string) (AlertOutput, error)
	UpdateStatus(ctx context.Context, sc model.Scope, ip UpdateStatusInput) (AlertOutput, error)

	// PromoteFromEvent creates the alert for an alert-worthy event. It is
	// idempotent: at most one alert ever exists for a given event, no
	// matter how many times or how concurrently it is called.
	PromoteFromEvent(ctx context.Context, ev model.Event) error
}

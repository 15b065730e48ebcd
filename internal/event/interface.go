package event

import (
	"context"

	"threatmonitor-api/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Create(ctx context.Context, sc model.Scope, ip CreateInput) (EventOutput, error)
	Get(ctx context.Context, sc model.Scope, ip GetInput) (GetEventOutput, error)
	Detail(ctx context.Context, sc model.Scope, id string) (EventOutput, error)
}

// Promoter reacts to a newly persisted event and creates the corresponding
// alert when the event qualifies. It is called exactly once per successful
// event creation, after the event's own write has committed, and must be
// idempotent: re-invocation for the same event never produces a second alert.
type Promoter interface {
	PromoteFromEvent(ctx context.Context, ev model.Event) error
}

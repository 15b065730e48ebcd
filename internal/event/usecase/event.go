package usecase

import (
	"context"
	"fmt"
	"strings"

	"threatmonitor-api/internal/event"
	"threatmonitor-api/internal/event/repository"
	"threatmonitor-api/internal/model"
	pkgErrors "threatmonitor-api/pkg/errors"
	postgresPkg "threatmonitor-api/pkg/postgre"
	"threatmonitor-api/pkg/sanitize"
)

const maxNameLength = 200

func (uc *usecase) Create(ctx context.Context, sc model.Scope, ip event.CreateInput) (event.EventOutput, error) {
	cleaned, severity, err := validateCreateInput(ip)
	if err != nil {
		uc.l.Warnf(ctx, "event ingestion failed: validation_errors=%v, user=%s", err, sc.Username)
		return event.EventOutput{}, err
	}

	ev := model.Event{
		ID:          postgresPkg.NewUUID(),
		SourceName:  cleaned.Value("source_name"),
		EventType:   cleaned.Value("event_type"),
		Severity:    severity,
		Description: cleaned.Value("description"),
	}

	created, err := uc.repo.Create(ctx, sc, repository.CreateOptions{Event: ev})
	if err != nil {
		uc.l.Errorf(ctx, "internal.event.usecase.Create.repo.Create: %v", err)
		return event.EventOutput{}, err
	}

	uc.l.Infof(ctx, "event ingested: id=%s, type=%s, severity=%s, source=%s, user=%s",
		created.ID, created.EventType, created.Severity, created.SourceName, sc.Username)

	// The event row is already committed; a promotion failure is an
	// operational concern and must never fail the ingestion call.
	if err := uc.promoter.PromoteFromEvent(ctx, created); err != nil {
		uc.l.Errorf(ctx, "internal.event.usecase.Create.PromoteFromEvent: %v", err)
	}

	return event.EventOutput{Event: created}, nil
}

func (uc *usecase) Get(ctx context.Context, sc model.Scope, ip event.GetInput) (event.GetEventOutput, error) {
	events, pag, err := uc.repo.Get(ctx, sc, repository.GetOptions{
		PaginateQuery: ip.PaginateQuery,
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.event.usecase.Get: %v", err)
		return event.GetEventOutput{}, err
	}

	return event.GetEventOutput{
		Events:    events,
		Paginator: pag,
	}, nil
}

func (uc *usecase) Detail(ctx context.Context, sc model.Scope, id string) (event.EventOutput, error) {
	ev, err := uc.repo.Detail(ctx, sc, id)
	if err != nil {
		if err == repository.ErrNotFound {
			return event.EventOutput{}, event.ErrEventNotFound
		}
		uc.l.Errorf(ctx, "internal.event.usecase.Detail: %v", err)
		return event.EventOutput{}, err
	}

	return event.EventOutput{Event: ev}, nil
}

// validateCreateInput runs the sanitize-and-validate pipeline over all four
// ingestion fields, collecting every field error in one pass so the client
// sees the complete picture.
func validateCreateInput(ip event.CreateInput) (*sanitize.Pipeline, model.Severity, error) {
	p := sanitize.NewPipeline().
		Field("source_name", ip.SourceName,
			sanitize.Required(), sanitize.StripHTML(), sanitize.MaxLen(maxNameLength)).
		Field("event_type", ip.EventType,
			sanitize.Required(), sanitize.StripHTML(), sanitize.MaxLen(maxNameLength)).
		Field("description", ip.Description,
			sanitize.Required(), sanitize.StripHTML())

	severity, valid := model.ParseSeverity(ip.Severity)
	if strings.TrimSpace(ip.Severity) == "" {
		p.AddError(pkgErrors.NewValidationError(400, "severity", "Severity is required."))
	} else if !valid {
		p.AddError(pkgErrors.NewValidationError(400, "severity", fmt.Sprintf(
			"Severity must be one of: %s. Received: %q.",
			strings.Join(model.SeverityNames(), ", "), ip.Severity)))
	}

	if err := p.Err(); err != nil {
		return nil, "", err
	}
	return p, severity, nil
}

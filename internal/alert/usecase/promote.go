package usecase

import (
	"context"

	"threatmonitor-api/internal/alert/repository"
	"threatmonitor-api/internal/model"
	postgresPkg "threatmonitor-api/pkg/postgre"
)

// systemScope identifies internally triggered writes. Promotion runs on
// behalf of the service, not the ingesting caller.
var systemScope = model.Scope{Username: "system", Role: model.RoleAdmin}

// PromoteFromEvent creates an alert for ev when its severity warrants one.
// The existence pre-check is advisory only; the insert itself arbitrates
// concurrent promotions of the same event, so duplicate and racing calls
// all converge on a single alert.
func (uc *usecase) PromoteFromEvent(ctx context.Context, ev model.Event) error {
	if !ev.Severity.IsAlertWorthy() {
		uc.l.Debugf(ctx, "event below alert threshold, skipping promotion: id=%s, severity=%s", ev.ID, ev.Severity)
		return nil
	}

	sc := systemScope

	if existing, err := uc.repo.GetByEventID(ctx, sc, ev.ID); err == nil {
		uc.l.Warnf(ctx, "alert already exists for event, skipping promotion: event_id=%s, alert_id=%s", ev.ID, existing.ID)
		return nil
	} else if err != repository.ErrNotFound {
		uc.l.Errorf(ctx, "internal.alert.usecase.PromoteFromEvent.GetByEventID: %v", err)
		return err
	}

	eventID := ev.ID
	created, ok, err := uc.repo.CreateIfAbsent(ctx, sc, repository.CreateIfAbsentOptions{
		Alert: model.Alert{
			ID:          postgresPkg.NewUUID(),
			Title:       "Alert: " + ev.EventType,
			Description: ev.Description,
			Severity:    ev.Severity,
			Status:      model.StatusOpen,
			EventID:     &eventID,
		},
	})
	if err != nil {
		// The expected event_id race never surfaces as an error, the
		// insert's conflict clause absorbs it. A foreign-key failure
		// means the event was deleted under us and no alert is owed.
		if postgresPkg.IsForeignKeyViolation(err) {
			uc.l.Warnf(ctx, "event deleted before promotion completed, skipping: event_id=%s", ev.ID)
			return nil
		}
		if postgresPkg.IsUniqueViolation(err) {
			uc.l.Errorf(ctx, "internal.alert.usecase.PromoteFromEvent.CreateIfAbsent: unique violation outside event_id arbitration: %v", err)
			return err
		}
		uc.l.Errorf(ctx, "internal.alert.usecase.PromoteFromEvent.CreateIfAbsent: %v", err)
		return err
	}
	if !ok {
		uc.l.Warnf(ctx, "concurrent promotion already created alert: event_id=%s", ev.ID)
		return nil
	}

	uc.l.Infof(ctx, "alert promoted: id=%s, event_id=%s, severity=%s", created.ID, ev.ID, created.Severity)
	return nil
}

package usecase

import (
	"context"
	"fmt"
	"strings"

	"threatmonitor-api/internal/alert"
	"threatmonitor-api/internal/alert/repository"
	"threatmonitor-api/internal/model"
	pkgErrors "threatmonitor-api/pkg/errors"
)

func (uc *usecase) Get(ctx context.Context, sc model.Scope, ip alert.GetInput) (alert.GetAlertOutput, error) {
	opts := repository.GetOptions{
		PaginateQuery: ip.PaginateQuery,
		Ordering:      repository.DefaultOrdering,
	}

	// Filter and ordering values outside the whitelists are dropped
	// silently so stale dashboard links keep working.
	if ip.Status != "" {
		if status, ok := model.ParseAlertStatus(ip.Status); ok {
			opts.Filter.Status = &status
		} else {
			uc.l.Debugf(ctx, "ignoring unknown status filter: %q", ip.Status)
		}
	}
	if ip.Severity != "" {
		if severity, ok := model.ParseSeverity(ip.Severity); ok {
			opts.Filter.Severity = &severity
		} else {
			uc.l.Debugf(ctx, "ignoring unknown severity filter: %q", ip.Severity)
		}
	}
	if ip.Ordering != "" {
		if repository.IsValidOrdering(ip.Ordering) {
			opts.Ordering = ip.Ordering
		} else {
			uc.l.Debugf(ctx, "ignoring unknown ordering: %q", ip.Ordering)
		}
	}

	alerts, pag, err := uc.repo.Get(ctx, sc, opts)
	if err != nil {
		uc.l.Errorf(ctx, "internal.alert.usecase.Get: %v", err)
		return alert.GetAlertOutput{}, err
	}

	return alert.GetAlertOutput{
		Alerts:    alerts,
		Paginator: pag,
	}, nil
}

func (uc *usecase) Detail(ctx context.Context, sc model.Scope, id string) (alert.AlertOutput, error) {
	a, err := uc.repo.Detail(ctx, sc, id)
	if err != nil {
		if err == repository.ErrNotFound {
			return alert.AlertOutput{}, alert.ErrAlertNotFound
		}
		uc.l.Errorf(ctx, "internal.alert.usecase.Detail: %v", err)
		return alert.AlertOutput{}, err
	}

	return alert.AlertOutput{Alert: a}, nil
}

func (uc *usecase) UpdateStatus(ctx context.Context, sc model.Scope, ip alert.UpdateStatusInput) (alert.AlertOutput, error) {
	status, err := validateStatusChange(ip.Status)
	if err != nil {
		return alert.AlertOutput{}, err
	}

	current, err := uc.repo.Detail(ctx, sc, ip.ID)
	if err != nil {
		if err == repository.ErrNotFound {
			return alert.AlertOutput{}, alert.ErrAlertNotFound
		}
		uc.l.Errorf(ctx, "internal.alert.usecase.UpdateStatus.Detail: %v", err)
		return alert.AlertOutput{}, err
	}

	updated, err := uc.repo.UpdateStatus(ctx, sc, repository.UpdateStatusOptions{
		ID:     current.ID,
		Status: status,
	})
	if err != nil {
		if err == repository.ErrNotFound {
			return alert.AlertOutput{}, alert.ErrAlertNotFound
		}
		uc.l.Errorf(ctx, "internal.alert.usecase.UpdateStatus: %v", err)
		return alert.AlertOutput{}, err
	}

	uc.l.Infof(ctx, "alert status changed: id=%s, from=%s, to=%s, user=%s",
		updated.ID, current.Status, updated.Status, sc.Username)

	return alert.AlertOutput{Alert: updated}, nil
}

// validateStatusChange enforces the two-tier status rule: the value must
// be a known status at all, and then one a client is allowed to set.
func validateStatusChange(raw string) (model.AlertStatus, error) {
	if strings.TrimSpace(raw) == "" {
		return "", pkgErrors.NewValidationError(400, "status", "Status is required.")
	}

	status, ok := model.ParseAlertStatus(raw)
	if !ok {
		return "", pkgErrors.NewValidationError(400, "status", fmt.Sprintf(
			"Status must be one of: %s. Received: %q.",
			strings.Join(model.AlertStatusNames(), ", "), raw))
	}
	if !status.IsUpdatable() {
		return "", pkgErrors.NewValidationError(400, "status", fmt.Sprintf(
			"Status can only be changed to: %s. Received: %q.",
			strings.Join(model.UpdatableStatusNames(), ", "), raw))
	}

	return status, nil
}

package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"threatmonitor-api/internal/alert/repository"
	"threatmonitor-api/internal/model"
	"threatmonitor-api/pkg/paginator"
	postgresPkg "threatmonitor-api/pkg/postgre"
)

// alertColumns always joins the triggering event so listings carry its
// type without a second round trip per row. Alerts created without an
// event (none today, but the column is nullable) yield an empty type.
const alertColumns = `a.id, a.title, a.description, a.severity, a.status, a.event_id,
	COALESCE(e.event_type, '') AS event_type, a.created_at, a.updated_at`

const alertFrom = `FROM alerts a LEFT JOIN events e ON e.id = a.event_id`

func scanAlert(row interface{ Scan(dest ...any) error }) (model.Alert, error) {
	var (
		a       model.Alert
		eventID sql.NullString
	)
	err := row.Scan(
		&a.ID,
		&a.Title,
		&a.Description,
		&a.Severity,
		&a.Status,
		&eventID,
		&a.EventType,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if eventID.Valid {
		a.EventID = &eventID.String
	}
	return a, err
}

// buildFilter renders the WHERE clause for opts.Filter. Severity filters
// on the joined event row, matching how the value is surfaced to clients.
func buildFilter(f repository.Filter) (string, []any) {
	var (
		conds []string
		args  []any
	)
	if f.Status != nil {
		args = append(args, *f.Status)
		conds = append(conds, fmt.Sprintf("a.status = $%d", len(args)))
	}
	if f.Severity != nil {
		args = append(args, *f.Severity)
		conds = append(conds, fmt.Sprintf("e.severity = $%d", len(args)))
	}
	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func (r *implRepository) Get(ctx context.Context, sc model.Scope, opts repository.GetOptions) ([]model.Alert, paginator.Paginator, error) {
	where, args := buildFilter(opts.Filter)

	var total int64
	countQuery := `SELECT COUNT(*) ` + alertFrom + where
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		r.l.Errorf(ctx, "internal.alert.repository.postgres.Get.Count: %v", err)
		return nil, paginator.Paginator{}, err
	}

	opts.PaginateQuery.Adjust()
	query := fmt.Sprintf(`SELECT %s %s%s ORDER BY %s LIMIT $%d OFFSET $%d`,
		alertColumns, alertFrom, where, opts.OrderClause(), len(args)+1, len(args)+2)
	args = append(args, opts.PaginateQuery.Limit, opts.PaginateQuery.Offset())

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "internal.alert.repository.postgres.Get.Query: %v", err)
		return nil, paginator.Paginator{}, err
	}
	defer rows.Close()

	var alerts []model.Alert
	for rows.Next() {
		a, err := scanAlert(rows)
		if err != nil {
			r.l.Errorf(ctx, "internal.alert.repository.postgres.Get.Scan: %v", err)
			return nil, paginator.Paginator{}, err
		}
		alerts = append(alerts, a)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "internal.alert.repository.postgres.Get.Rows: %v", err)
		return nil, paginator.Paginator{}, err
	}

	pag := paginator.Paginator{
		Total:       total,
		Count:       int64(len(alerts)),
		PerPage:     opts.PaginateQuery.Limit,
		CurrentPage: opts.PaginateQuery.Page,
	}

	return alerts, pag, nil
}

func (r *implRepository) Detail(ctx context.Context, sc model.Scope, id string) (model.Alert, error) {
	if err := postgresPkg.IsUUID(id); err != nil {
		r.l.Errorf(ctx, "internal.alert.repository.postgres.Detail.IsUUID: %v", err)
		return model.Alert{}, repository.ErrNotFound
	}

	query := `SELECT ` + alertColumns + ` ` + alertFrom + ` WHERE a.id = $1`
	a, err := scanAlert(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return model.Alert{}, repository.ErrNotFound
		}
		r.l.Errorf(ctx, "internal.alert.repository.postgres.Detail.One: %v", err)
		return model.Alert{}, err
	}

	return a, nil
}

func (r *implRepository) GetByEventID(ctx context.Context, sc model.Scope, eventID string) (model.Alert, error) {
	query := `SELECT ` + alertColumns + ` ` + alertFrom + ` WHERE a.event_id = $1`
	a, err := scanAlert(r.db.QueryRowContext(ctx, query, eventID))
	if err != nil {
		if err == sql.ErrNoRows {
			return model.Alert{}, repository.ErrNotFound
		}
		r.l.Errorf(ctx, "internal.alert.repository.postgres.GetByEventID.One: %v", err)
		return model.Alert{}, err
	}

	return a, nil
}

func (r *implRepository) CreateIfAbsent(ctx context.Context, sc model.Scope, opts repository.CreateIfAbsentOptions) (model.Alert, bool, error) {
	if err := postgresPkg.IsUUID(opts.Alert.ID); err != nil {
		r.l.Errorf(ctx, "internal.alert.repository.postgres.CreateIfAbsent.IsUUID: %v", err)
		return model.Alert{}, false, err
	}

	// The partial unique index on event_id arbitrates concurrent inserts
	// for the same event. Exactly one statement returns a row; the rest
	// hit DO NOTHING and scan sql.ErrNoRows, reported as created=false.
	query := `
		INSERT INTO alerts (id, title, description, severity, status, event_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		ON CONFLICT (event_id) WHERE event_id IS NOT NULL DO NOTHING
		RETURNING id, title, description, severity, status, event_id, '' AS event_type, created_at, updated_at`
	a, err := scanAlert(r.db.QueryRowContext(ctx, query,
		opts.Alert.ID,
		opts.Alert.Title,
		opts.Alert.Description,
		opts.Alert.Severity,
		opts.Alert.Status,
		opts.Alert.EventID,
	))
	if err != nil {
		if err == sql.ErrNoRows {
			return model.Alert{}, false, nil
		}
		r.l.Errorf(ctx, "internal.alert.repository.postgres.CreateIfAbsent.Insert: %v", err)
		return model.Alert{}, false, err
	}

	return a, true, nil
}

func (r *implRepository) UpdateStatus(ctx context.Context, sc model.Scope, opts repository.UpdateStatusOptions) (model.Alert, error) {
	if err := postgresPkg.IsUUID(opts.ID); err != nil {
		r.l.Errorf(ctx, "internal.alert.repository.postgres.UpdateStatus.IsUUID: %v", err)
		return model.Alert{}, repository.ErrNotFound
	}

	// RETURNING cannot join, so the updated row is re-read through the
	// standard select to pick up the event type.
	query := `UPDATE alerts SET status = $1, updated_at = NOW() WHERE id = $2 RETURNING id`
	var updatedID string
	if err := r.db.QueryRowContext(ctx, query, opts.Status, opts.ID).Scan(&updatedID); err != nil {
		if err == sql.ErrNoRows {
			return model.Alert{}, repository.ErrNotFound
		}
		r.l.Errorf(ctx, "internal.alert.repository.postgres.UpdateStatus.Update: %v", err)
		return model.Alert{}, err
	}

	return r.Detail(ctx, sc, updatedID)
}

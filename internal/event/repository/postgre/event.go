package postgres

import (
	"context"
	"database/sql"

	"threatmonitor-api/internal/event/repository"
	"threatmonitor-api/internal/model"
	"threatmonitor-api/pkg/paginator"
	postgresPkg "threatmonitor-api/pkg/postgre"
)

const eventColumns = `id, source_name, event_type, severity, description, created_at`

func scanEvent(row interface{ Scan(dest ...any) error }) (model.Event, error) {
	var ev model.Event
	err := row.Scan(
		&ev.ID,
		&ev.SourceName,
		&ev.EventType,
		&ev.Severity,
		&ev.Description,
		&ev.CreatedAt,
	)
	return ev, err
}

func (r *implRepository) Create(ctx context.Context, sc model.Scope, opts repository.CreateOptions) (model.Event, error) {
	if err := postgresPkg.IsUUID(opts.Event.ID); err != nil {
		r.l.Errorf(ctx, "internal.event.repository.postgres.Create.IsUUID: %v", err)
		return model.Event{}, err
	}

	// Single-statement insert: the event row is durable the moment this
	// call returns, before any promotion logic runs.
	query := `
		INSERT INTO events (id, source_name, event_type, severity, description, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING ` + eventColumns
	ev, err := scanEvent(r.db.QueryRowContext(ctx, query,
		opts.Event.ID,
		opts.Event.SourceName,
		opts.Event.EventType,
		opts.Event.Severity,
		opts.Event.Description,
	))
	if err != nil {
		r.l.Errorf(ctx, "internal.event.repository.postgres.Create.Insert: %v", err)
		return model.Event{}, err
	}

	return ev, nil
}

func (r *implRepository) Get(ctx context.Context, sc model.Scope, opts repository.GetOptions) ([]model.Event, paginator.Paginator, error) {
	var total int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM events`).Scan(&total); err != nil {
		r.l.Errorf(ctx, "internal.event.repository.postgres.Get.Count: %v", err)
		return nil, paginator.Paginator{}, err
	}

	opts.PaginateQuery.Adjust()
	query := `
		SELECT ` + eventColumns + `
		FROM events
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2`
	rows, err := r.db.QueryContext(ctx, query, opts.PaginateQuery.Limit, opts.PaginateQuery.Offset())
	if err != nil {
		r.l.Errorf(ctx, "internal.event.repository.postgres.Get.Query: %v", err)
		return nil, paginator.Paginator{}, err
	}
	defer rows.Close()

	var events []model.Event
	for rows.Next() {
		ev, err := scanEvent(rows)
		if err != nil {
			r.l.Errorf(ctx, "internal.event.repository.postgres.Get.Scan: %v", err)
			return nil, paginator.Paginator{}, err
		}
		events = append(events, ev)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "internal.event.repository.postgres.Get.Rows: %v", err)
		return nil, paginator.Paginator{}, err
	}

	pag := paginator.Paginator{
		Total:       total,
		Count:       int64(len(events)),
		PerPage:     opts.PaginateQuery.Limit,
		CurrentPage: opts.PaginateQuery.Page,
	}

	return events, pag, nil
}

func (r *implRepository) Detail(ctx context.Context, sc model.Scope, id string) (model.Event, error) {
	if err := postgresPkg.IsUUID(id); err != nil {
		r.l.Errorf(ctx, "internal.event.repository.postgres.Detail.IsUUID: %v", err)
		return model.Event{}, repository.ErrNotFound
	}

	query := `SELECT ` + eventColumns + ` FROM events WHERE id = $1`
	ev, err := scanEvent(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return model.Event{}, repository.ErrNotFound
		}
		r.l.Errorf(ctx, "internal.event.repository.postgres.Detail.One: %v", err)
		return model.Event{}, err
	}

	return ev, nil
}

package postgres

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"threatmonitor-api/internal/alert/repository"
	"threatmonitor-api/internal/model"
)

// mockLogger implements log.Logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any) {}

const (
	testAlertID = "650e8400-e29b-41d4-a716-446655440000"
	testEventID = "550e8400-e29b-41d4-a716-446655440000"
)

var alertColumnNames = []string{"id", "title", "description", "severity", "status", "event_id", "event_type", "created_at", "updated_at"}

func alertRows(a model.Alert) *sqlmock.Rows {
	var eventID any
	if a.EventID != nil {
		eventID = *a.EventID
	}
	return sqlmock.NewRows(alertColumnNames).
		AddRow(a.ID, a.Title, a.Description, a.Severity, a.Status, eventID, a.EventType, a.CreatedAt, a.UpdatedAt)
}

func testAlert() model.Alert {
	eventID := testEventID
	return model.Alert{
		ID:          testAlertID,
		Title:       "Alert: Intrusion Attempt",
		Description: "Multiple failed SSH login attempts",
		Severity:    model.SeverityHigh,
		Status:      model.StatusOpen,
		EventID:     &eventID,
		EventType:   "Intrusion Attempt",
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
}

func TestCreateIfAbsentInserts(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New() error = %v", err)
	}
	defer db.Close()

	repo := New(&mockLogger{}, db)
	a := testAlert()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO alerts")).
		WithArgs(a.ID, a.Title, a.Description, a.Severity, a.Status, a.EventID).
		WillReturnRows(alertRows(a))

	got, created, err := repo.CreateIfAbsent(context.Background(), model.Scope{}, repository.CreateIfAbsentOptions{Alert: a})
	if err != nil {
		t.Fatalf("CreateIfAbsent() error = %v", err)
	}
	if !created {
		t.Error("expected created = true")
	}
	if got.ID != a.ID {
		t.Errorf("got ID %s, want %s", got.ID, a.ID)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestCreateIfAbsentLosesRace(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New() error = %v", err)
	}
	defer db.Close()

	repo := New(&mockLogger{}, db)
	a := testAlert()

	// ON CONFLICT DO NOTHING yields no RETURNING row for the loser.
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO alerts")).
		WithArgs(a.ID, a.Title, a.Description, a.Severity, a.Status, a.EventID).
		WillReturnRows(sqlmock.NewRows(alertColumnNames))

	_, created, err := repo.CreateIfAbsent(context.Background(), model.Scope{}, repository.CreateIfAbsentOptions{Alert: a})
	if err != nil {
		t.Fatalf("losing the insert race must not be an error, got %v", err)
	}
	if created {
		t.Error("expected created = false when the row already exists")
	}
}

func TestGetWithFilters(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New() error = %v", err)
	}
	defer db.Close()

	repo := New(&mockLogger{}, db)
	a := testAlert()

	status := model.StatusOpen
	severity := model.SeverityHigh
	opts := repository.GetOptions{
		Filter:   repository.Filter{Status: &status, Severity: &severity},
		Ordering: "status",
	}

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM alerts a LEFT JOIN events e ON e.id = a.event_id WHERE a.status = $1 AND e.severity = $2")).
		WithArgs(status, severity).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery("ORDER BY a.status ASC").
		WithArgs(status, severity, int64(15), int64(0)).
		WillReturnRows(alertRows(a))

	alerts, pag, err := repo.Get(context.Background(), model.Scope{}, opts)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if len(alerts) != 1 {
		t.Fatalf("expected 1 alert, got %d", len(alerts))
	}
	if alerts[0].EventType != "Intrusion Attempt" {
		t.Errorf("event_type = %q, want joined value", alerts[0].EventType)
	}
	if pag.Total != 1 {
		t.Errorf("paginator total = %d", pag.Total)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestGetByEventIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New() error = %v", err)
	}
	defer db.Close()

	repo := New(&mockLogger{}, db)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE a.event_id = $1")).
		WithArgs(testEventID).
		WillReturnRows(sqlmock.NewRows(alertColumnNames))

	_, err = repo.GetByEventID(context.Background(), model.Scope{}, testEventID)
	if err != repository.ErrNotFound {
		t.Errorf("GetByEventID() error = %v, want ErrNotFound", err)
	}
}

func TestUpdateStatus(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New() error = %v", err)
	}
	defer db.Close()

	repo := New(&mockLogger{}, db)
	a := testAlert()
	a.Status = model.StatusAcknowledged

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE alerts SET status = $1, updated_at = NOW() WHERE id = $2 RETURNING id")).
		WithArgs(model.StatusAcknowledged, testAlertID).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(testAlertID))
	mock.ExpectQuery(regexp.QuoteMeta("WHERE a.id = $1")).
		WithArgs(testAlertID).
		WillReturnRows(alertRows(a))

	got, err := repo.UpdateStatus(context.Background(), model.Scope{}, repository.UpdateStatusOptions{
		ID:     testAlertID,
		Status: model.StatusAcknowledged,
	})
	if err != nil {
		t.Fatalf("UpdateStatus() error = %v", err)
	}
	if got.Status != model.StatusAcknowledged {
		t.Errorf("status = %s, want ACKNOWLEDGED", got.Status)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestUpdateStatusNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New() error = %v", err)
	}
	defer db.Close()

	repo := New(&mockLogger{}, db)

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE alerts")).
		WithArgs(model.StatusResolved, testAlertID).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err = repo.UpdateStatus(context.Background(), model.Scope{}, repository.UpdateStatusOptions{
		ID:     testAlertID,
		Status: model.StatusResolved,
	})
	if err != repository.ErrNotFound {
		t.Errorf("UpdateStatus() error = %v, want ErrNotFound", err)
	}
}

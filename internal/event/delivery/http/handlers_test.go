package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"threatmonitor-api/internal/event"
	"threatmonitor-api/internal/model"
	pkgErrors "threatmonitor-api/pkg/errors"
	"threatmonitor-api/pkg/scope"
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

type fakeUseCase struct {
	createInput event.CreateInput
	createErr   error
}

func (f *fakeUseCase) Create(ctx context.Context, sc model.Scope, ip event.CreateInput) (event.EventOutput, error) {
	f.createInput = ip
	if f.createErr != nil {
		return event.EventOutput{}, f.createErr
	}
	severity, _ := model.ParseSeverity(ip.Severity)
	return event.EventOutput{Event: model.Event{
		ID:          "550e8400-e29b-41d4-a716-446655440000",
		SourceName:  ip.SourceName,
		EventType:   ip.EventType,
		Severity:    severity,
		Description: ip.Description,
	}}, nil
}

func (f *fakeUseCase) Get(ctx context.Context, sc model.Scope, ip event.GetInput) (event.GetEventOutput, error) {
	return event.GetEventOutput{}, nil
}

func (f *fakeUseCase) Detail(ctx context.Context, sc model.Scope, id string) (event.EventOutput, error) {
	return event.EventOutput{}, event.ErrEventNotFound
}

func newTestRouter(uc event.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := New(&mockLogger{}, uc)

	r := gin.New()
	// Inject a resolved scope so handlers behave as if auth ran.
	r.Use(func(c *gin.Context) {
		sc := model.Scope{UserID: "u1", Username: "alice", Role: model.RoleViewer}
		c.Request = c.Request.WithContext(scope.SetScopeToContext(c.Request.Context(), sc))
	})
	r.POST("/api/events", h.CreateEvent)
	r.GET("/api/events/:id", h.GetEventDetail)
	return r
}

func TestCreateEventReturns201(t *testing.T) {
	uc := &fakeUseCase{}
	r := newTestRouter(uc)

	body := `{
		"source_name": "firewall-01",
		"event_type": "Intrusion Attempt",
		"severity": "HIGH",
		"description": "Multiple failed SSH login attempts"
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/events", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201, body %s", w.Code, w.Body.String())
	}
	if uc.createInput.SourceName != "firewall-01" || uc.createInput.Severity != "HIGH" {
		t.Errorf("usecase input = %+v", uc.createInput)
	}

	var resp struct {
		Data eventResp `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("response decode error = %v", err)
	}
	if resp.Data.ID == "" || resp.Data.Severity != "HIGH" {
		t.Errorf("response data = %+v", resp.Data)
	}
}

func TestCreateEventMalformedBody(t *testing.T) {
	r := newTestRouter(&fakeUseCase{})

	req := httptest.NewRequest(http.MethodPost, "/api/events", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestCreateEventValidationErrorBody(t *testing.T) {
	uc := &fakeUseCase{
		createErr: pkgErrors.NewValidationErrorCollector().
			Add(pkgErrors.NewValidationError(400, "severity", "Severity is required.")),
	}
	r := newTestRouter(uc)

	req := httptest.NewRequest(http.MethodPost, "/api/events", strings.NewReader(`{"source_name":"s"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	var resp struct {
		Errors []struct {
			Field    string   `json:"field"`
			Messages []string `json:"messages"`
		} `json:"errors"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("response decode error = %v", err)
	}
	if len(resp.Errors) != 1 || resp.Errors[0].Field != "severity" {
		t.Errorf("errors = %+v", resp.Errors)
	}
}

func TestGetEventDetailNotFound(t *testing.T) {
	r := newTestRouter(&fakeUseCase{})

	req := httptest.NewRequest(http.MethodGet, "/api/events/missing", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}

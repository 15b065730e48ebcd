package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"threatmonitor-api/internal/policy"
	"threatmonitor-api/internal/ratelimit"
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

const testSecret = "test-secret-key-that-is-long-enough"

func newTestRouter(t *testing.T, limit int) (*gin.Engine, scope.Manager) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	manager := scope.New(testSecret)
	mw := New(&mockLogger{}, manager, ratelimit.NewMemory(limit))

	ok := func(c *gin.Context) { c.Status(http.StatusOK) }

	r := gin.New()
	api := r.Group("/api", mw.Auth())
	events := api.Group("/events", mw.Authorize(policy.ResourceEvent))
	events.POST("", mw.RateLimit(), ok)
	events.GET("", ok)
	alerts := api.Group("/alerts", mw.Authorize(policy.ResourceAlert))
	alerts.GET("", ok)
	alerts.PATCH("/:id", ok)

	return r, manager
}

func mintToken(t *testing.T, manager scope.Manager, userID string, groups ...string) string {
	t.Helper()
	token, err := manager.CreateToken(scope.Payload{
		UserID:   userID,
		Username: userID,
		Groups:   groups,
	})
	if err != nil {
		t.Fatalf("CreateToken() error = %v", err)
	}
	return token
}

func doRequest(r *gin.Engine, method, path, token string) int {
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w.Code
}

func TestAuthRejectsMissingOrBadToken(t *testing.T) {
	r, _ := newTestRouter(t, 100)

	tests := []struct {
		name   string
		header string
	}{
		{"no header", ""},
		{"not bearer", "Basic abc"},
		{"empty bearer", "Bearer "},
		{"garbage token", "Bearer not.a.token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/alerts", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			if w.Code != http.StatusUnauthorized {
				t.Errorf("status = %d, want 401", w.Code)
			}
		})
	}
}

func TestAuthorizeMatrix(t *testing.T) {
	r, manager := newTestRouter(t, 100)

	adminToken := mintToken(t, manager, "admin-1", "Admin")
	analystToken := mintToken(t, manager, "analyst-1", "Analyst")
	viewerToken := mintToken(t, manager, "viewer-1")

	tests := []struct {
		name   string
		method string
		path   string
		token  string
		want   int
	}{
		{"viewer ingests event", http.MethodPost, "/api/events", viewerToken, http.StatusOK},
		{"analyst ingests event", http.MethodPost, "/api/events", analystToken, http.StatusOK},
		{"admin ingests event", http.MethodPost, "/api/events", adminToken, http.StatusOK},

		{"admin lists events", http.MethodGet, "/api/events", adminToken, http.StatusOK},
		{"analyst lists events", http.MethodGet, "/api/events", analystToken, http.StatusForbidden},
		{"viewer lists events", http.MethodGet, "/api/events", viewerToken, http.StatusForbidden},

		{"admin lists alerts", http.MethodGet, "/api/alerts", adminToken, http.StatusOK},
		{"analyst lists alerts", http.MethodGet, "/api/alerts", analystToken, http.StatusOK},
		{"viewer lists alerts", http.MethodGet, "/api/alerts", viewerToken, http.StatusForbidden},

		{"admin patches alert", http.MethodPatch, "/api/alerts/a1", adminToken, http.StatusOK},
		{"analyst patches alert", http.MethodPatch, "/api/alerts/a1", analystToken, http.StatusForbidden},
		{"viewer patches alert", http.MethodPatch, "/api/alerts/a1", viewerToken, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := doRequest(r, tt.method, tt.path, tt.token); got != tt.want {
				t.Errorf("%s %s = %d, want %d", tt.method, tt.path, got, tt.want)
			}
		})
	}
}

func TestForbiddenBodyCarriesPermissionDenial(t *testing.T) {
	r, manager := newTestRouter(t, 100)
	token := mintToken(t, manager, "viewer-1")

	req := httptest.NewRequest(http.MethodGet, "/api/events", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", w.Code)
	}

	var body struct {
		ErrorCode int    `json:"error_code"`
		Message   string `json:"message"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if body.ErrorCode != http.StatusForbidden {
		t.Errorf("error_code = %d, want 403", body.ErrorCode)
	}
	if body.Message != "You do not have permission to perform this action." {
		t.Errorf("message = %q", body.Message)
	}
}

func TestAuthorizeRejectsSubjectlessToken(t *testing.T) {
	r, manager := newTestRouter(t, 100)

	token, err := manager.CreateToken(scope.Payload{Groups: []string{"Admin"}})
	if err != nil {
		t.Fatalf("CreateToken() error = %v", err)
	}
	if got := doRequest(r, http.MethodGet, "/api/alerts", token); got != http.StatusUnauthorized {
		t.Errorf("token without subject status = %d, want 401", got)
	}
}

func TestRateLimitExceeded(t *testing.T) {
	r, manager := newTestRouter(t, 3)
	token := mintToken(t, manager, "viewer-1")

	for i := 0; i < 3; i++ {
		if got := doRequest(r, http.MethodPost, "/api/events", token); got != http.StatusOK {
			t.Fatalf("request %d status = %d, want 200", i+1, got)
		}
	}
	if got := doRequest(r, http.MethodPost, "/api/events", token); got != http.StatusTooManyRequests {
		t.Errorf("over-budget request status = %d, want 429", got)
	}
}

func TestRateLimitIsPerPrincipal(t *testing.T) {
	r, manager := newTestRouter(t, 1)
	first := mintToken(t, manager, "user-1")
	second := mintToken(t, manager, "user-2")

	if got := doRequest(r, http.MethodPost, "/api/events", first); got != http.StatusOK {
		t.Fatalf("first principal status = %d, want 200", got)
	}
	if got := doRequest(r, http.MethodPost, "/api/events", second); got != http.StatusOK {
		t.Errorf("second principal should have an independent budget, status = %d", got)
	}
	if got := doRequest(r, http.MethodPost, "/api/events", first); got != http.StatusTooManyRequests {
		t.Errorf("first principal over budget status = %d, want 429", got)
	}
}

func TestRateLimitDoesNotGateReads(t *testing.T) {
	r, manager := newTestRouter(t, 1)
	token := mintToken(t, manager, "admin-1", "Admin")

	doRequest(r, http.MethodPost, "/api/events", token)
	for i := 0; i < 3; i++ {
		if got := doRequest(r, http.MethodGet, "/api/alerts", token); got != http.StatusOK {
			t.Errorf("read %d status = %d, want 200 (reads are not rate limited)", i+1, got)
		}
	}
}

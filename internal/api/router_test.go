package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/commutersec/admin-dashboard/internal/app"
	"github.com/commutersec/admin-dashboard/internal/core/domain"
	"github.com/commutersec/admin-dashboard/internal/infrastructure/db/memory"
)

// ---- Stubs ----

type fakeAPI struct{}

func (fakeAPI) Do(_ context.Context, method, path string, body, out any) error {
	var v any
	switch path {
	case "/auth/login":
		v = domain.LoginResponse{Success: true, Token: "tok", Admin: &domain.Admin{ID: 1, Username: "jojoKing", FirstName: "Jojo"}}
	case "/dashboard/stats":
		v = domain.Envelope[domain.DashboardStats]{Success: true, Data: domain.DashboardStats{TotalRides: 5}}
	case "/admins":
		v = domain.Envelope[[]domain.Admin]{Success: true, Data: []domain.Admin{{ID: 1, Username: "jojoKing"}}}
	default:
		return &domain.APIError{Status: http.StatusNotFound, Message: "Not found"}
	}
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, out)
}

func newTestRouter() (*echo.Echo, *app.App) {
	a := app.New(app.Deps{API: fakeAPI{}, Tokens: memory.NewTokenStore(), Logger: zerolog.Nop()})
	return NewRouter(Options{App: a, Logger: zerolog.Nop()}), a
}

func serve(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestRouter_SessionFlow(t *testing.T) {
	e, a := newTestRouter()

	rec := serve(e, http.MethodGet, "/admins", "")
	if rec.Code != http.StatusSeeOther || rec.Header().Get("Location") != "/" {
		t.Fatalf("expected anonymous redirect to /, got %d %q", rec.Code, rec.Header().Get("Location"))
	}

	rec = serve(e, http.MethodGet, "/", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected login page, got %d", rec.Code)
	}

	rec = serve(e, http.MethodPost, "/session", "username=jojoKing&password=password123")
	if rec.Code != http.StatusSeeOther || rec.Header().Get("Location") != "/dashboard" {
		t.Fatalf("expected redirect to /dashboard, got %d %q", rec.Code, rec.Header().Get("Location"))
	}

	rec = serve(e, http.MethodGet, "/", "")
	if rec.Code != http.StatusSeeOther || rec.Header().Get("Location") != "/dashboard" {
		t.Fatalf("expected signed-in redirect away from login, got %d", rec.Code)
	}

	rec = serve(e, http.MethodGet, "/admins", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected admins page, got %d", rec.Code)
	}
	if len(a.Admins.Items()) != 1 {
		t.Fatalf("expected admins loaded")
	}

	rec = serve(e, http.MethodDelete, "/session", "")
	if rec.Code != http.StatusSeeOther || rec.Header().Get("Location") != "/" {
		t.Fatalf("expected logout redirect, got %d", rec.Code)
	}
	if len(a.Admins.Items()) != 0 {
		t.Fatalf("expected admins cleared after logout")
	}
}

func TestRouter_AnonymousMutationIsUnauthorized(t *testing.T) {
	e, _ := newTestRouter()

	rec := serve(e, http.MethodPost, "/ui/sidebar/toggle", "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["error"] != "authentication required" {
		t.Fatalf("unexpected error body %v", resp)
	}
	if resp["request_id"] == "" {
		t.Fatalf("expected request id in error body, got %v", resp)
	}
}

func TestRouter_HealthIsPublic(t *testing.T) {
	e, _ := newTestRouter()

	rec := serve(e, http.MethodGet, "/health", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestClassify(t *testing.T) {
	cases := map[string]struct {
		err      error
		wantCode int
		wantMsg  string
	}{
		"http error":   {echo.NewHTTPError(http.StatusBadRequest, "invalid id"), http.StatusBadRequest, "invalid id"},
		"api error":    {&domain.APIError{Status: http.StatusConflict, Message: "Username already taken"}, http.StatusConflict, "Username already taken"},
		"unsuccessful": {domain.ErrUnsuccessful, http.StatusUnprocessableEntity, "unsuccessful response"},
		"not found":    {domain.ErrNotFound, http.StatusNotFound, "record not found"},
		"deadline":     {fmt.Errorf("fetch: %w", context.DeadlineExceeded), http.StatusGatewayTimeout, "dashboard API timed out"},
		"unexpected":   {errors.New("boom"), http.StatusInternalServerError, "internal server error"},
	}
	for name, tc := range cases {
		p := classify(tc.err)
		if p.status != tc.wantCode || p.message != tc.wantMsg {
			t.Fatalf("%s: expected %d %q, got %d %q", name, tc.wantCode, tc.wantMsg, p.status, p.message)
		}
	}
}

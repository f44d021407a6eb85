package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/commutersec/admin-dashboard/internal/core/domain"
	"github.com/commutersec/admin-dashboard/internal/mockapi/middleware"
	"github.com/commutersec/admin-dashboard/pkg/validation"
)

// ---- Stubs ----

type stubAuthService struct {
	loginFn   func(ctx context.Context, username, password string) (string, *domain.Admin, error)
	currentFn func(ctx context.Context, adminID int64) (*domain.Admin, error)
}

func (s *stubAuthService) Login(ctx context.Context, username, password string) (string, *domain.Admin, error) {
	return s.loginFn(ctx, username, password)
}

func (s *stubAuthService) CurrentAdmin(ctx context.Context, adminID int64) (*domain.Admin, error) {
	return s.currentFn(ctx, adminID)
}

func (s *stubAuthService) SetPassword(context.Context, domain.Admin, string) error { return nil }

func (s *stubAuthService) Revoke(context.Context, int64) error { return nil }

func newEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validation.New()
	return e
}

func postJSON(e *echo.Echo, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Login_Success(t *testing.T) {
	e := newEcho()
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, username, password string) (string, *domain.Admin, error) {
			if username != "jojoKing" || password != "password123" {
				t.Fatalf("unexpected args: %s %s", username, password)
			}
			return "signed", &domain.Admin{ID: 1, Username: username, Role: domain.RoleSuperAdmin}, nil
		},
	}
	handler := NewAuthHandler(stub, zerolog.Nop())

	c, rec := postJSON(e, "/api/auth/login", `{"username":"jojoKing","password":"password123"}`)
	if err := handler.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp domain.LoginResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if !resp.Success || resp.Token != "signed" || resp.Admin == nil || resp.Admin.Username != "jojoKing" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestAuthHandler_Login_Failures(t *testing.T) {
	cases := map[string]struct {
		err      error
		wantCode int
		wantMsg  string
	}{
		"bad password":   {domain.ErrInvalidCredentials, http.StatusUnauthorized, "Invalid credentials"},
		"unknown user":   {domain.ErrUserNotFound, http.StatusUnauthorized, "Invalid credentials"},
		"inactive":       {domain.ErrInactiveAccount, http.StatusForbidden, "Account is inactive"},
		"storage failed": {context.DeadlineExceeded, http.StatusInternalServerError, "Login failed"},
	}
	for name, tc := range cases {
		e := newEcho()
		stub := &stubAuthService{
			loginFn: func(context.Context, string, string) (string, *domain.Admin, error) {
				return "", nil, tc.err
			},
		}
		handler := NewAuthHandler(stub, zerolog.Nop())

		c, rec := postJSON(e, "/api/auth/login", `{"username":"jojoKing","password":"wrong"}`)
		if err := handler.Login(c); err != nil {
			t.Fatalf("%s: handler error: %v", name, err)
		}
		if rec.Code != tc.wantCode {
			t.Fatalf("%s: expected %d, got %d", name, tc.wantCode, rec.Code)
		}
		var resp domain.LoginResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("%s: invalid json: %v", name, err)
		}
		if resp.Success || resp.Message != tc.wantMsg {
			t.Fatalf("%s: unexpected response: %+v", name, resp)
		}
	}
}

func TestAuthHandler_Login_MissingFields(t *testing.T) {
	e := newEcho()
	handler := NewAuthHandler(&stubAuthService{}, zerolog.Nop())

	c, rec := postJSON(e, "/api/auth/login", `{"username":"jojoKing"}`)
	if err := handler.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAuthHandler_Me(t *testing.T) {
	e := newEcho()
	stub := &stubAuthService{
		currentFn: func(_ context.Context, id int64) (*domain.Admin, error) {
			if id == 1 {
				return &domain.Admin{ID: 1, Username: "jojoKing"}, nil
			}
			return nil, domain.ErrUserNotFound
		},
	}
	handler := NewAuthHandler(stub, zerolog.Nop())

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.CtxAdminID, int64(1))
	if err := handler.Me(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	var resp domain.CurrentAdminResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if !resp.Success || resp.Admin == nil || resp.Admin.ID != 1 {
		t.Fatalf("unexpected response: %+v", resp)
	}

	c = e.NewContext(httptest.NewRequest(http.MethodGet, "/api/auth/me", nil), httptest.NewRecorder())
	c.Set(middleware.CtxAdminID, int64(99))
	he, ok := handler.Me(c).(*echo.HTTPError)
	if !ok || he.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for a deleted admin")
	}

	c = e.NewContext(httptest.NewRequest(http.MethodGet, "/api/auth/me", nil), httptest.NewRecorder())
	he, ok = handler.Me(c).(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without claims")
	}
}

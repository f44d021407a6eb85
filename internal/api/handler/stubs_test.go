package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/commutersec/admin-dashboard/internal/app"
	"github.com/commutersec/admin-dashboard/internal/core/domain"
	"github.com/commutersec/admin-dashboard/internal/infrastructure/db/memory"
	"github.com/commutersec/admin-dashboard/pkg/validation"
)

// ---- Stubs ----

// fakeAPI answers the dashboard endpoints the handlers touch.
type fakeAPI struct {
	mu         sync.Mutex
	admins     []domain.Admin
	rides      []domain.Ride
	statsCalls int
	adminPosts int
	rejectSave bool
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{
		admins: []domain.Admin{
			{ID: 1, Username: "jojoKing", FirstName: "Jojo", Role: domain.RoleSuperAdmin, IsActive: 1},
			{ID: 2, Username: "sara565", FirstName: "Sara", Role: domain.RoleAdmin, IsActive: 1},
		},
		rides: []domain.Ride{{ID: 10, DriverID: 1, PassengerID: 1}},
	}
}

func (f *fakeAPI) Do(_ context.Context, method, path string, body, out any) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	var v any
	switch {
	case path == "/auth/login":
		req := body.(domain.LoginRequest)
		if req.Username != "jojoKing" || req.Password != "password123" {
			return &domain.APIError{Status: http.StatusUnauthorized, Message: "Invalid credentials"}
		}
		v = domain.LoginResponse{Success: true, Token: "tok", Admin: &f.admins[0]}
	case path == "/dashboard/stats":
		f.statsCalls++
		v = domain.Envelope[domain.DashboardStats]{Success: true, Data: domain.DashboardStats{TotalAdmins: len(f.admins)}}
	case path == "/rides":
		v = domain.Envelope[[]domain.Ride]{Success: true, Data: f.rides}
	case path == "/admins" && method == http.MethodGet:
		v = domain.Envelope[[]domain.Admin]{Success: true, Data: f.admins}
	case path == "/admins" && method == http.MethodPost:
		f.adminPosts++
		if in := body.(domain.AdminInput); in.Email == "" {
			return &domain.APIError{Status: http.StatusBadRequest, Message: "Email is required"}
		}
		if f.rejectSave {
			v = domain.Envelope[any]{Success: false, Message: "Username already taken"}
			break
		}
		created := body.(domain.AdminInput).Apply(domain.Admin{}, domain.MustTime("2024-05-01")).WithKey(int64(len(f.admins) + 1))
		f.admins = append(f.admins, created)
		v = domain.Envelope[domain.Admin]{Success: true, Data: created}
	case strings.HasPrefix(path, "/admins/"):
		id, _ := strconv.ParseInt(strings.TrimPrefix(path, "/admins/"), 10, 64)
		for i, a := range f.admins {
			if a.ID != id {
				continue
			}
			switch method {
			case http.MethodGet:
				v = domain.Envelope[domain.Admin]{Success: true, Data: a}
			case http.MethodDelete:
				f.admins = append(f.admins[:i:i], f.admins[i+1:]...)
				v = domain.Envelope[any]{Success: true}
			}
		}
		if v == nil {
			return &domain.APIError{Status: http.StatusNotFound, Message: "Admin not found"}
		}
	default:
		return &domain.APIError{Status: http.StatusNotFound, Message: "Not found"}
	}

	if out == nil {
		return nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, out)
}

func newTestApp(t *testing.T, api *fakeAPI) *app.App {
	t.Helper()
	return app.New(app.Deps{
		API:    api,
		Tokens: memory.NewTokenStore(),
		Logger: zerolog.Nop(),
	})
}

func newEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validation.New()
	return e
}

func newContext(e *echo.Echo, method, target, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath(path)
	return c, rec
}

func httpStatus(t *testing.T, err error) int {
	t.Helper()
	he, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected *echo.HTTPError, got %T (%v)", err, err)
	}
	return he.Code
}

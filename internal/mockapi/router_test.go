package mockapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/commutersec/admin-dashboard/internal/core/domain"
)

const seedPassword = "password123"

func newSeededRouter(t *testing.T) (*echo.Echo, Repositories) {
	t.Helper()
	repos := NewMemoryRepositories()
	svc := NewServices(repos, "test-secret", time.Hour, zerolog.Nop())
	if err := Seed(context.Background(), repos, svc.Auth, seedPassword, zerolog.Nop()); err != nil {
		t.Fatalf("seed: %v", err)
	}
	return NewRouter(Options{Services: svc, JWTSecret: "test-secret", Logger: zerolog.Nop()}), repos
}

func call(e *echo.Echo, method, target, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func login(t *testing.T, e *echo.Echo, username, password string) (int, domain.LoginResponse) {
	t.Helper()
	body := `{"username":"` + username + `","password":"` + password + `"}`
	rec := call(e, http.MethodPost, "/api/auth/login", "", body)
	var resp domain.LoginResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	return rec.Code, resp
}

func TestMockAPI_LoginAndMe(t *testing.T) {
	e, _ := newSeededRouter(t)

	code, resp := login(t, e, "mikeT99", seedPassword)
	if code != http.StatusOK || !resp.Success || resp.Token == "" {
		t.Fatalf("expected login to succeed, got %d %+v", code, resp)
	}
	if resp.Admin == nil || resp.Admin.LastLoginAt == nil || resp.Admin.Role != domain.RoleSuperAdmin {
		t.Fatalf("unexpected admin: %+v", resp.Admin)
	}

	rec := call(e, http.MethodGet, "/api/auth/me", resp.Token, "")
	var me domain.CurrentAdminResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &me); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if rec.Code != http.StatusOK || me.Admin == nil || me.Admin.Username != "mikeT99" {
		t.Fatalf("unexpected /auth/me: %d %+v", rec.Code, me)
	}

	code, resp = login(t, e, "mikeT99", "wrong-password")
	if code != http.StatusUnauthorized || resp.Success || resp.Message != "Invalid credentials" {
		t.Fatalf("expected 401 Invalid credentials, got %d %+v", code, resp)
	}
}

func TestMockAPI_RequiresToken(t *testing.T) {
	e, _ := newSeededRouter(t)

	rec := call(e, http.MethodGet, "/api/drivers", "", "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["success"] != false || resp["message"] != "No token provided" {
		t.Fatalf("unexpected body: %v", resp)
	}
}

func TestMockAPI_UnknownRoute(t *testing.T) {
	e, _ := newSeededRouter(t)

	rec := call(e, http.MethodGet, "/nope", "", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["message"] != "Route not found" {
		t.Fatalf("unexpected body: %v", resp)
	}
}

func TestMessageFor(t *testing.T) {
	cases := []struct {
		err  error
		code int
		msg  string
	}{
		{echo.NewHTTPError(http.StatusForbidden, "Insufficient permissions"), http.StatusForbidden, "Insufficient permissions"},
		{fmt.Errorf("get admin: %w", domain.ErrNotFound), http.StatusNotFound, "Resource not found"},
		{domain.ErrUserExists, http.StatusConflict, "Username already exists"},
		{errors.New("disk full"), http.StatusInternalServerError, "Internal server error"},
	}
	for _, tc := range cases {
		code, msg := messageFor(tc.err)
		if code != tc.code || msg != tc.msg {
			t.Fatalf("%v: expected %d %q, got %d %q", tc.err, tc.code, tc.msg, code, msg)
		}
	}
}

func TestMockAPI_ListsFixtures(t *testing.T) {
	e, _ := newSeededRouter(t)
	_, auth := login(t, e, "sara565", seedPassword)

	rec := call(e, http.MethodGet, "/api/rides", auth.Token, "")
	var rides domain.Envelope[[]domain.Ride]
	if err := json.Unmarshal(rec.Body.Bytes(), &rides); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(rides.Data) != 5 || rides.Count == nil || *rides.Count != 5 {
		t.Fatalf("expected 5 rides, got %+v", rides)
	}
	if rides.Data[0].DriverFirstName != "John" || rides.Data[0].PassengerFirstName != "Alice" {
		t.Fatalf("expected joined names on ride 1, got %+v", rides.Data[0])
	}

	rec = call(e, http.MethodGet, "/api/dashboard/stats", auth.Token, "")
	var stats domain.Envelope[domain.DashboardStats]
	if err := json.Unmarshal(rec.Body.Bytes(), &stats); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	want := domain.DashboardStats{TotalPassengers: 3, TotalDrivers: 3, TotalRides: 5, TotalAdmins: 3, ActiveDrivers: 1}
	if stats.Data != want {
		t.Fatalf("expected %+v, got %+v", want, stats.Data)
	}
}

func TestMockAPI_AdminLifecycle(t *testing.T) {
	e, repos := newSeededRouter(t)
	_, super := login(t, e, "mikeT99", seedPassword)
	_, moderator := login(t, e, "jojoKing", seedPassword)

	body := `{"username":"newbie","first_name":"New","last_name":"Admin","email":"newbie@example.com","role":"moderator","is_active":1,"password":"s3cretpass"}`

	rec := call(e, http.MethodPost, "/api/admins", moderator.Token, body)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected moderator to be forbidden, got %d", rec.Code)
	}

	rec = call(e, http.MethodPost, "/api/admins", super.Token, body)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	var created domain.Envelope[domain.Admin]
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if created.Data.ID != 4 {
		t.Fatalf("expected id 4, got %d", created.Data.ID)
	}

	rec = call(e, http.MethodPost, "/api/admins", super.Token, strings.Replace(body, `"newbie@`, `"other@`, 1))
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected duplicate username to conflict, got %d", rec.Code)
	}

	if code, _ := login(t, e, "newbie", "s3cretpass"); code != http.StatusOK {
		t.Fatalf("expected new admin to log in, got %d", code)
	}

	rec = call(e, http.MethodDelete, "/api/admins/4", super.Token, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if code, _ := login(t, e, "newbie", "s3cretpass"); code != http.StatusUnauthorized {
		t.Fatalf("expected deleted admin to be refused, got %d", code)
	}
	if n, _ := repos.Admins.Count(context.Background()); n != 3 {
		t.Fatalf("expected 3 admins, got %d", n)
	}
}

func TestMockAPI_DriverGetsQRCode(t *testing.T) {
	e, _ := newSeededRouter(t)
	_, auth := login(t, e, "sara565", seedPassword)

	body := `{"first_name":"Pedro","last_name":"Santos","address_region":"NCR","address_province":"Metro Manila",` +
		`"address_city":"Quezon City","address_barangay":"Bagumbayan","phone_number":"09171234567","license_number":"D2222222",` +
		`"license_status":"active","vehicle_ownership":"company","vehicle_plate_number":"GHI-0001"}`
	rec := call(e, http.MethodPost, "/api/drivers", auth.Token, body)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	var created domain.Envelope[domain.Driver]
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if created.Data.ID != 104 || !strings.HasPrefix(created.Data.QRCode, "QR") || len(created.Data.QRCode) != 12 {
		t.Fatalf("unexpected driver: id=%d qr=%q", created.Data.ID, created.Data.QRCode)
	}
}

func TestSeed_SkipsSeededStore(t *testing.T) {
	repos := NewMemoryRepositories()
	svc := NewServices(repos, "s", time.Hour, zerolog.Nop())
	ctx := context.Background()

	if err := Seed(ctx, repos, svc.Auth, seedPassword, zerolog.Nop()); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if _, err := svc.Admins.Create(ctx, domain.AdminInput{Username: "x", Role: domain.RoleAdmin, IsActive: 1}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := Seed(ctx, repos, svc.Auth, seedPassword, zerolog.Nop()); err != nil {
		t.Fatalf("second seed: %v", err)
	}
	if n, _ := repos.Admins.Count(ctx); n != 4 {
		t.Fatalf("expected reseed to be skipped, got %d admins", n)
	}
}

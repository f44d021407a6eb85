package store

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"

	"github.com/rs/zerolog"

	"github.com/commutersec/admin-dashboard/internal/core/domain"
	"github.com/commutersec/admin-dashboard/internal/core/ports"
)

const (
	// EntryPath is the login page.
	EntryPath = "/"
	// LandingPath is where a successful login lands.
	LandingPath = "/dashboard"

	// SessionResource is the change-event name for auth state.
	SessionResource = "session"

	loginFallback = "Login failed"
)

// AuthState is a point-in-time copy of the session.
type AuthState struct {
	Admin     *domain.Admin `json:"admin"`
	IsLoading bool          `json:"isLoading"`
	Error     string        `json:"error,omitempty"`
}

// Auth owns the session: the persisted bearer token and the identity of the
// logged-in admin.
type Auth struct {
	api    ports.Requester
	tokens ports.TokenStore
	nav    ports.Navigator
	notify ports.ChangeNotifier
	logger zerolog.Logger

	mu      sync.RWMutex
	admin   *domain.Admin
	loading bool
	err     string
}

func NewAuth(api ports.Requester, tokens ports.TokenStore, nav ports.Navigator, notify ports.ChangeNotifier, logger zerolog.Logger) *Auth {
	return &Auth{
		api:    api,
		tokens: tokens,
		nav:    nav,
		notify: notifierOrNop(notify),
		logger: logger.With().Str("store", SessionResource).Logger(),
	}
}

// Login exchanges credentials for a token. On success the token is persisted,
// the identity stored and the operator sent to LandingPath. Failures are kept
// as the store's error message and never navigate.
func (a *Auth) Login(ctx context.Context, username, password string) Result[*domain.Admin] {
	a.mu.Lock()
	a.loading = true
	a.err = ""
	a.mu.Unlock()

	var resp domain.LoginResponse
	req := domain.LoginRequest{Username: username, Password: password}
	if err := a.api.Do(ctx, http.MethodPost, "/auth/login", req, &resp); err != nil {
		return a.loginFailed(failed[*domain.Admin](err, loginFallback))
	}
	if !resp.Success {
		return a.loginFailed(failed[*domain.Admin](unsuccessful(resp.Message, loginFallback), ""))
	}
	if err := a.tokens.SetToken(ctx, resp.Token); err != nil {
		return a.loginFailed(failed[*domain.Admin](fmt.Errorf("persist token: %w", err), ""))
	}

	a.mu.Lock()
	a.admin = cloneAdmin(resp.Admin)
	a.loading = false
	a.mu.Unlock()
	a.notify.Changed(SessionResource)

	if resp.Admin != nil {
		a.logger.Info().Str("username", resp.Admin.Username).Msg("logged in")
	}
	if err := a.nav.Navigate(ctx, LandingPath); err != nil {
		a.logger.Warn().Err(err).Msg("redirect after login failed")
	}
	return succeeded(cloneAdmin(resp.Admin))
}

func (a *Auth) loginFailed(res Result[*domain.Admin]) Result[*domain.Admin] {
	a.mu.Lock()
	a.err = res.Message
	a.loading = false
	a.mu.Unlock()

	a.logger.Warn().Err(res.Err).Msg("login failed")
	a.notify.Changed(SessionResource)
	return res
}

// Logout drops the token and identity and sends the operator to EntryPath.
// Identity is cleared even when the token store fails.
func (a *Auth) Logout(ctx context.Context) error {
	var errs []error
	if err := a.tokens.RemoveToken(ctx); err != nil {
		errs = append(errs, fmt.Errorf("remove token: %w", err))
	}

	a.mu.Lock()
	a.admin = nil
	a.mu.Unlock()
	a.notify.Changed(SessionResource)

	if err := a.nav.Navigate(ctx, EntryPath); err != nil {
		errs = append(errs, fmt.Errorf("redirect: %w", err))
	}
	return errors.Join(errs...)
}

// IsAuthenticated reports whether a non-empty token is persisted.
func (a *Auth) IsAuthenticated(ctx context.Context) bool {
	token, err := a.tokens.Token(ctx)
	if err != nil {
		a.logger.Warn().Err(err).Msg("token lookup failed")
		return false
	}
	return token != ""
}

// FetchCurrentAdmin reloads the identity behind the persisted token. Any
// failure ends the session.
func (a *Auth) FetchCurrentAdmin(ctx context.Context) error {
	var resp domain.CurrentAdminResponse
	if err := a.api.Do(ctx, http.MethodGet, "/auth/me", nil, &resp); err != nil {
		a.logger.Warn().Err(err).Msg("session check failed, logging out")
		if lerr := a.Logout(ctx); lerr != nil {
			a.logger.Error().Err(lerr).Msg("logout after failed session check")
		}
		return err
	}
	if resp.Success && resp.Admin != nil {
		a.mu.Lock()
		a.admin = cloneAdmin(resp.Admin)
		a.mu.Unlock()
		a.notify.Changed(SessionResource)
	}
	return nil
}

// InitAuth restores the identity when a token survived but no admin is loaded.
func (a *Auth) InitAuth(ctx context.Context) error {
	if !a.IsAuthenticated(ctx) || a.CurrentAdmin() != nil {
		return nil
	}
	return a.FetchCurrentAdmin(ctx)
}

// CurrentAdmin returns a copy of the logged-in admin, or nil.
func (a *Auth) CurrentAdmin() *domain.Admin {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return cloneAdmin(a.admin)
}

func (a *Auth) IsLoading() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.loading
}

func (a *Auth) Err() string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.err
}

func (a *Auth) State() AuthState {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return AuthState{Admin: cloneAdmin(a.admin), IsLoading: a.loading, Error: a.err}
}

func cloneAdmin(a *domain.Admin) *domain.Admin {
	if a == nil {
		return nil
	}
	clone := *a
	if a.LastLoginAt != nil {
		at := *a.LastLoginAt
		clone.LastLoginAt = &at
	}
	return &clone
}

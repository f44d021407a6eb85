package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/commutersec/admin-dashboard/internal/app"
	"github.com/commutersec/admin-dashboard/internal/core/domain"
	"github.com/commutersec/admin-dashboard/internal/core/store"
	"github.com/commutersec/admin-dashboard/pkg/format"
)

// PageHandler serves the login and dashboard views.
type PageHandler struct {
	app *app.App
}

func NewPageHandler(a *app.App) *PageHandler {
	return &PageHandler{app: a}
}

type loginPage struct {
	Title     string `json:"title"`
	IsLoading bool   `json:"isLoading"`
	Error     string `json:"error,omitempty"`
}

type dashboardPage struct {
	Title     string        `json:"title"`
	Admin     *domain.Admin `json:"admin,omitempty"`
	LastLogin string        `json:"lastLogin,omitempty"`
	store.StatsView
}

// Login renders the login view with the last sign-in error, if any.
func (h *PageHandler) Login(c echo.Context) error {
	visit(c, h.app.Router)

	state := h.app.Auth.State()
	return c.JSON(http.StatusOK, loginPage{
		Title:     format.PageTitle("Login"),
		IsLoading: state.IsLoading,
		Error:     state.Error,
	})
}

// Dashboard renders the counters, fetching them on first visit or when
// ?refresh=1 is given.
func (h *PageHandler) Dashboard(c echo.Context) error {
	if wantsRefresh(c) || !h.app.Stats.Loaded() {
		h.app.Stats.FetchStats(c.Request().Context())
	}
	visit(c, h.app.Router)

	page := dashboardPage{
		Title:     format.PageTitle("Dashboard"),
		Admin:     h.app.Auth.CurrentAdmin(),
		StatsView: h.app.Stats.Snapshot(),
	}
	if page.Admin != nil && page.Admin.LastLoginAt != nil {
		page.LastLogin = format.FormatLastLogin(page.Admin.LastLoginAt.Time)
	}
	return c.JSON(http.StatusOK, page)
}

// visit records the page the operator is on.
func visit(c echo.Context, router *app.Router) {
	path := c.Path()
	if path == "" {
		path = c.Request().URL.Path
	}
	// Navigate only fails once the request is cancelled.
	_ = router.Navigate(c.Request().Context(), path)
}

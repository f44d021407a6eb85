package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/commutersec/admin-dashboard/internal/app"
	"github.com/commutersec/admin-dashboard/internal/core/domain"
	"github.com/commutersec/admin-dashboard/internal/core/store"
)

type SessionHandler struct {
	app *app.App
}

func NewSessionHandler(a *app.App) *SessionHandler {
	return &SessionHandler{app: a}
}

// Login signs in with a form or JSON body and redirects to the page the
// session store navigated to.
func (h *SessionHandler) Login(c echo.Context) error {
	var req domain.LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	res := h.app.Login(c.Request().Context(), req.Username, req.Password)
	if !res.Success {
		status := http.StatusUnauthorized
		if s := StatusOf(res.Err); s >= http.StatusInternalServerError {
			status = s
		}
		return echo.NewHTTPError(status, res.Message)
	}
	return c.Redirect(http.StatusSeeOther, h.app.Router.Current())
}

func (h *SessionHandler) Logout(c echo.Context) error {
	// Logout clears local state even when it reports an error.
	_ = h.app.Logout(c.Request().Context())
	return c.Redirect(http.StatusSeeOther, store.EntryPath)
}

func (h *SessionHandler) Current(c echo.Context) error {
	return c.JSON(http.StatusOK, h.app.Auth.State())
}

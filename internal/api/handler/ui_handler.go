package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/commutersec/admin-dashboard/internal/app"
)

// UIHandler exposes the layout state: navigation, sidebar and toasts.
type UIHandler struct {
	app *app.App
}

func NewUIHandler(a *app.App) *UIHandler {
	return &UIHandler{app: a}
}

type sidebarState struct {
	Open bool `json:"open"`
}

func (h *UIHandler) Navigation(c echo.Context) error {
	return c.JSON(http.StatusOK, app.Navigation())
}

func (h *UIHandler) Sidebar(c echo.Context) error {
	return c.JSON(http.StatusOK, sidebarState{Open: h.app.Sidebar.IsOpen()})
}

func (h *UIHandler) ToggleSidebar(c echo.Context) error {
	return c.JSON(http.StatusOK, sidebarState{Open: h.app.Sidebar.Toggle()})
}

func (h *UIHandler) Toasts(c echo.Context) error {
	return c.JSON(http.StatusOK, h.app.Toasts.List())
}

func (h *UIHandler) DismissToast(c echo.Context) error {
	if !h.app.Toasts.Remove(c.Param("id")) {
		return echo.NewHTTPError(http.StatusNotFound, "toast not found")
	}
	return c.NoContent(http.StatusNoContent)
}

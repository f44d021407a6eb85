package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/commutersec/admin-dashboard/internal/mockapi/middleware"
)

// ctxAdminID returns the admin id injected by the Auth middleware. A missing
// id means the route was registered without Auth.
func ctxAdminID(c echo.Context) (int64, error) {
	id, _ := c.Get(middleware.CtxAdminID).(int64)
	if id <= 0 {
		return 0, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return id, nil
}

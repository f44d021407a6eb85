package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/commutersec/admin-dashboard/internal/core/domain"
)

// Require rejects requests whose admin role does not grant perm. Auth must
// run first so the role is on the context.
func Require(perm domain.Permission) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !roleOf(c).Can(perm) {
				return echo.NewHTTPError(http.StatusForbidden, "Insufficient permissions")
			}
			return next(c)
		}
	}
}

func roleOf(c echo.Context) domain.AdminRole {
	role, _ := c.Get(CtxRole).(domain.AdminRole)
	return role
}

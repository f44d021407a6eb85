package middleware

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/commutersec/admin-dashboard/internal/core/store"
)

// Authenticator reports whether the console holds a session.
type Authenticator interface {
	IsAuthenticated(ctx context.Context) bool
}

// Guard keeps anonymous operators on the login page and sends signed-in
// operators past it. Page loads are redirected; any other method gets 401.
func Guard(auth Authenticator) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authed := auth.IsAuthenticated(c.Request().Context())

			if c.Path() == store.EntryPath {
				if authed {
					return c.Redirect(http.StatusSeeOther, store.LandingPath)
				}
				return next(c)
			}

			if !authed {
				if c.Request().Method == http.MethodGet {
					return c.Redirect(http.StatusSeeOther, store.EntryPath)
				}
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}
			return next(c)
		}
	}
}

package middleware

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/commutersec/admin-dashboard/internal/core/domain"
)

// Context keys set by Auth.
const (
	CtxAdminID  = "admin_id"
	CtxUsername = "username"
	CtxRole     = "role"
)

// Auth validates the bearer token and injects the admin claims into context.
func Auth(jwtSecret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "No token provided")
			}

			scheme, token, ok := strings.Cut(authHeader, " ")
			if !ok || !strings.EqualFold(scheme, "bearer") || token == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "Invalid authorization header")
			}

			claims := jwt.MapClaims{}
			tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
				return []byte(jwtSecret), nil
			}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
			if err != nil || !tkn.Valid {
				return echo.NewHTTPError(http.StatusUnauthorized, "Invalid or expired token")
			}

			// Numeric claims decode as float64.
			id, _ := claims[CtxAdminID].(float64)
			if id <= 0 {
				return echo.NewHTTPError(http.StatusUnauthorized, "Token missing admin identity")
			}
			username, _ := claims[CtxUsername].(string)
			role, _ := claims[CtxRole].(string)

			c.Set(CtxAdminID, int64(id))
			c.Set(CtxUsername, username)
			c.Set(CtxRole, domain.AdminRole(role))

			return next(c)
		}
	}
}

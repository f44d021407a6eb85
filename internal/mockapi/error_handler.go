package mockapi

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/commutersec/admin-dashboard/internal/core/domain"
	"github.com/commutersec/admin-dashboard/internal/mockapi/handler"
)

// NewHTTPErrorHandler renders every error in the API's own shape,
// {"success": false, "message": ...}, the way the dashboard client expects.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := messageFor(err)
		if code == http.StatusInternalServerError {
			log.Error().
				Err(err).
				Str("method", c.Request().Method).
				Str("path", c.Path()).
				Msg("unhandled error")
		}
		_ = c.JSON(code, handler.MessageResponse{Success: false, Message: msg})
	}
}

func messageFor(err error) (int, string) {
	var he *echo.HTTPError
	switch {
	case errors.As(err, &he):
		if he.Code == http.StatusNotFound && he.Message == http.StatusText(http.StatusNotFound) {
			return he.Code, "Route not found"
		}
		return he.Code, fmt.Sprint(he.Message)
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, "Resource not found"
	case errors.Is(err, domain.ErrUserExists):
		return http.StatusConflict, "Username already exists"
	}
	return http.StatusInternalServerError, "Internal server error"
}

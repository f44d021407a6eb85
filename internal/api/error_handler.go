package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/commutersec/admin-dashboard/internal/api/handler"
	"github.com/commutersec/admin-dashboard/internal/core/domain"
)

// errorBody is how every console failure is rendered.
type errorBody struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}

// problem is an error reduced to what the client sees.
type problem struct {
	status  int
	message string
	// internal problems keep their detail in the log only.
	internal bool
}

func classify(err error) problem {
	var he *echo.HTTPError
	switch {
	case errors.As(err, &he):
		return problem{status: he.Code, message: fmt.Sprint(he.Message)}
	case errors.Is(err, domain.ErrRequestFailed), errors.Is(err, domain.ErrUnsuccessful):
		return problem{status: handler.StatusOf(err), message: err.Error()}
	case errors.Is(err, domain.ErrNotFound):
		return problem{status: http.StatusNotFound, message: "record not found"}
	case errors.Is(err, context.DeadlineExceeded):
		return problem{status: http.StatusGatewayTimeout, message: "dashboard API timed out"}
	}
	return problem{status: http.StatusInternalServerError, message: "internal server error", internal: true}
}

// NewHTTPErrorHandler renders errors as errorBody and logs the ones that
// are the console's or the upstream's fault.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		p := classify(err)
		reqID := c.Response().Header().Get(echo.HeaderXRequestID)

		if p.status >= http.StatusInternalServerError {
			ev := log.Warn()
			if p.internal {
				ev = log.Error()
			}
			ev.Err(err).
				Str("request_id", reqID).
				Str("method", c.Request().Method).
				Str("path", c.Path()).
				Int("status", p.status).
				Msg("request failed")
		}

		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(p.status)
			return
		}
		_ = c.JSON(p.status, errorBody{Error: p.message, RequestID: reqID})
	}
}

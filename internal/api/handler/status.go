package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/commutersec/admin-dashboard/internal/core/domain"
)

// StatusOf maps a dashboard API failure to the status the console answers with.
func StatusOf(err error) int {
	var apiErr *domain.APIError
	switch {
	case errors.As(err, &apiErr):
		if apiErr.Status >= http.StatusBadRequest {
			return apiErr.Status
		}
		return http.StatusBadGateway
	case errors.Is(err, domain.ErrUnsuccessful):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	default:
		return http.StatusBadGateway
	}
}

func parseID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return id, nil
}

func wantsRefresh(c echo.Context) bool {
	v := c.QueryParam("refresh")
	return v == "1" || v == "true"
}

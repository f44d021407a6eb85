package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/commutersec/admin-dashboard/internal/core/domain"
	"github.com/commutersec/admin-dashboard/internal/core/ports"
	"github.com/commutersec/admin-dashboard/internal/metrics"
)

type AuthHandler struct {
	authService ports.AuthService
	logger      zerolog.Logger
}

func NewAuthHandler(authService ports.AuthService, logger zerolog.Logger) *AuthHandler {
	return &AuthHandler{authService: authService, logger: logger}
}

// Login authenticates an admin and returns a JWT token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      domain.LoginRequest  true  "Login credentials"
// @Success      200   {object}  domain.LoginResponse
// @Failure      400   {object}  domain.LoginResponse
// @Failure      401   {object}  domain.LoginResponse
// @Failure      403   {object}  domain.LoginResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req domain.LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, domain.LoginResponse{Message: "Invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, domain.LoginResponse{Message: "Username and password are required"})
	}

	token, admin, err := h.authService.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		status, msg := http.StatusInternalServerError, "Login failed"
		switch {
		case errors.Is(err, domain.ErrInvalidCredentials), errors.Is(err, domain.ErrUserNotFound):
			status, msg = http.StatusUnauthorized, "Invalid credentials"
		case errors.Is(err, domain.ErrInactiveAccount):
			status, msg = http.StatusForbidden, "Account is inactive"
		default:
			h.logger.Error().Err(err).Str("username", req.Username).Msg("login error")
		}
		metrics.MockAPILoginsTotal.WithLabelValues("failure").Inc()
		return c.JSON(status, domain.LoginResponse{Message: msg})
	}

	metrics.MockAPILoginsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, domain.LoginResponse{
		Success: true,
		Message: "Login successful",
		Token:   token,
		Admin:   admin,
	})
}

// Me returns the admin the bearer token was issued for.
//
// @Summary      Current admin
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.CurrentAdminResponse
// @Failure      401  {object}  MessageResponse
// @Failure      404  {object}  MessageResponse
// @Router       /auth/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	id, err := ctxAdminID(c)
	if err != nil {
		return err
	}

	admin, err := h.authService.CurrentAdmin(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Admin not found")
		}
		return err
	}
	return c.JSON(http.StatusOK, domain.CurrentAdminResponse{Success: true, Admin: admin})
}

package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/competeconnect/competition-api/internal/api/metrics"
	"github.com/competeconnect/competition-api/internal/core/ports"
)

// SessionHandler signs users in and out of a workspace.
type SessionHandler struct {
	service ports.WorkspaceService
}

func NewSessionHandler(service ports.WorkspaceService) *SessionHandler {
	return &SessionHandler{service: service}
}

// SignIn handles POST /v1/session.
//
// @Summary      Sign in
// @Description  Demo session: login mode signs in the demo user, register mode uses the submitted profile. No password is checked.
// @Tags         session
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      signInRequest  true  "Sign-in form"
// @Success      201   {object}  signInResponse
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/session [post]
func (h *SessionHandler) SignIn(c echo.Context) error {
	id, err := workspaceID(c)
	if err != nil {
		return err
	}
	var req signInRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	user, err := h.service.SignIn(c.Request().Context(), id, ports.SignInInput{
		Mode:        ports.SignInMode(req.Mode),
		Name:        req.Name,
		Email:       req.Email,
		Role:        req.Role,
		Institution: req.Institution,
	})
	if err != nil {
		return err
	}

	metrics.SignInsTotal.WithLabelValues(req.Mode, string(user.Role)).Inc()
	return c.JSON(http.StatusCreated, signInResponse{User: user})
}

// SignOut handles DELETE /v1/session.
//
// @Summary      Sign out
// @Tags         session
// @Security     BearerAuth
// @Success      204
// @Router       /v1/session [delete]
func (h *SessionHandler) SignOut(c echo.Context) error {
	id, err := workspaceID(c)
	if err != nil {
		return err
	}
	if err := h.service.SignOut(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/competeconnect/competition-api/internal/core/ports"
)

// TokenIssuer signs workspace tokens.
type TokenIssuer interface {
	Issue(workspaceID string) (string, time.Time, error)
}

// WorkspaceHandler serves the workspace snapshot and the UI-only state:
// home, selection, shell flags and navigation.
type WorkspaceHandler struct {
	service ports.WorkspaceService
	tokens  TokenIssuer
}

func NewWorkspaceHandler(service ports.WorkspaceService, tokens TokenIssuer) *WorkspaceHandler {
	return &WorkspaceHandler{service: service, tokens: tokens}
}

// Create handles POST /v1/workspaces.
//
// @Summary      Open a workspace
// @Description  Creates a signed-out workspace and returns the token that names it.
// @Tags         workspace
// @Produce      json
// @Success      201  {object}  createWorkspaceResponse
// @Failure      500  {object}  errorResponse
// @Router       /v1/workspaces [post]
func (h *WorkspaceHandler) Create(c echo.Context) error {
	id, err := h.service.Create(c.Request().Context())
	if err != nil {
		return err
	}
	token, exp, err := h.tokens.Issue(id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, createWorkspaceResponse{WorkspaceID: id, Token: token, ExpiresAt: exp})
}

// Get handles GET /v1/workspace.
//
// @Summary      Workspace snapshot
// @Tags         workspace
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  state.Snapshot
// @Failure      401  {object}  errorResponse
// @Router       /v1/workspace [get]
func (h *WorkspaceHandler) Get(c echo.Context) error {
	id, err := workspaceID(c)
	if err != nil {
		return err
	}
	snap, err := h.service.Snapshot(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, snap)
}

// Home handles POST /v1/home. Results, selection and open overlays are
// dropped; filters and the session are kept.
//
// @Summary      Go home
// @Tags         workspace
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  state.Snapshot
// @Failure      401  {object}  errorResponse
// @Router       /v1/home [post]
func (h *WorkspaceHandler) Home(c echo.Context) error {
	id, err := workspaceID(c)
	if err != nil {
		return err
	}
	ctx := c.Request().Context()
	if err := h.service.GoHome(ctx, id); err != nil {
		return err
	}
	snap, err := h.service.Snapshot(ctx, id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, snap)
}

// Select handles PUT /v1/selection.
//
// @Summary      Open a competition's details
// @Tags         selection
// @Accept       json
// @Security     BearerAuth
// @Param        body  body  selectCompetitionRequest  true  "Competition to show"
// @Success      204
// @Failure      422  {object}  errorResponse
// @Router       /v1/selection [put]
func (h *WorkspaceHandler) Select(c echo.Context) error {
	id, err := workspaceID(c)
	if err != nil {
		return err
	}
	var req selectCompetitionRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	if err := h.service.Select(c.Request().Context(), id, req.toDomain()); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// ClearSelection handles DELETE /v1/selection.
//
// @Summary      Close the details view
// @Tags         selection
// @Security     BearerAuth
// @Success      204
// @Router       /v1/selection [delete]
func (h *WorkspaceHandler) ClearSelection(c echo.Context) error {
	id, err := workspaceID(c)
	if err != nil {
		return err
	}
	if err := h.service.ClearSelection(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// UpdateShell handles PATCH /v1/shell.
//
// @Summary      Change shell flags
// @Tags         shell
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      updateShellRequest  true  "Flags to change"
// @Success      200   {object}  state.Shell
// @Router       /v1/shell [patch]
func (h *WorkspaceHandler) UpdateShell(c echo.Context) error {
	id, err := workspaceID(c)
	if err != nil {
		return err
	}
	var req updateShellRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	sh, err := h.service.UpdateShell(c.Request().Context(), id, ports.ShellUpdate{
		SidePanelOpen: req.SidePanelOpen,
		AuthModalOpen: req.AuthModalOpen,
		ToggleTheme:   req.ToggleTheme,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, sh)
}

// Navigate handles POST /v1/navigation.
//
// @Summary      Follow a side panel item
// @Tags         shell
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      navigateRequest  true  "Menu item key"
// @Success      200   {object}  ports.NavigationResult
// @Failure      404   {object}  errorResponse
// @Router       /v1/navigation [post]
func (h *WorkspaceHandler) Navigate(c echo.Context) error {
	id, err := workspaceID(c)
	if err != nil {
		return err
	}
	var req navigateRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	res, err := h.service.Navigate(c.Request().Context(), id, req.Item)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, res)
}

package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/competeconnect/competition-api/internal/api/middleware"
)

// workspaceID returns the id injected by the Auth middleware. An empty id
// means the middleware did not run and the request is rejected.
func workspaceID(c echo.Context) (string, error) {
	id, _ := c.Get(middleware.WorkspaceIDKey).(string)
	if id == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing workspace token")
	}
	return id, nil
}

// bindAndValidate decodes the body into req and runs the echo validator.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}
	return nil
}

package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// WorkspaceIDKey is the echo context key holding the authenticated workspace id.
const WorkspaceIDKey = "workspace_id"

// Auth validates the workspace token and injects the workspace id into context.
func Auth(tokens *WorkspaceTokens) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			id, err := tokens.Parse(parts[1])
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			c.Set(WorkspaceIDKey, id)
			return next(c)
		}
	}
}

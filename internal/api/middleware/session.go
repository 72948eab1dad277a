package middleware

import (
	"context"

	"github.com/labstack/echo/v4"

	"github.com/competeconnect/competition-api/internal/core/domain"
)

// RoleKey is the echo context key holding the signed-in user's role.
const RoleKey = "role"

// RoleResolver reports the role of the user signed in to a workspace.
type RoleResolver interface {
	CurrentRole(ctx context.Context, workspaceID string) (domain.Role, error)
}

// Session loads the workspace's session role into context. Guests get an
// empty role. Must run after Auth.
func Session(resolver RoleResolver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id, _ := c.Get(WorkspaceIDKey).(string)
			role, err := resolver.CurrentRole(c.Request().Context(), id)
			if err != nil {
				return err
			}
			c.Set(RoleKey, string(role))
			return next(c)
		}
	}
}

package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/competeconnect/competition-api/internal/core/domain"
)

// RBAC lets the request through only when the session role is one of
// allowedRoles. Guests and other roles get domain.ErrSignInRequired.
func RBAC(allowedRoles ...domain.Role) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[string(r)] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get(RoleKey).(string)
			if _, ok := allowed[role]; !ok {
				return domain.ErrSignInRequired
			}
			return next(c)
		}
	}
}

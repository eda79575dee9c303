package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/saas-pm/project-hub/internal/core/domain"
)

// RequireRole admits only users whose role equals role. There is no role
// hierarchy: an ADMIN does not pass an EMPLOYEE gate.
func RequireRole(role domain.Role) echo.MiddlewareFunc {
	msg := string(role) + " access required"

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, ok := CurrentUser(c)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
			}
			if user.Role != role {
				return echo.NewHTTPError(http.StatusForbidden, msg)
			}
			return next(c)
		}
	}
}

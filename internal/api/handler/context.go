package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/saas-pm/project-hub/internal/api/middleware"
	"github.com/saas-pm/project-hub/internal/core/domain"
)

// currentUser returns the caller resolved by the Auth middleware. Its absence
// means the route was mounted without Auth.
func currentUser(c echo.Context) (*domain.User, error) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
	}
	return user, nil
}

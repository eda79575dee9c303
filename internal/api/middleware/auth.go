package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/saas-pm/project-hub/internal/core/domain"
)

const userKey = "user"

// Authenticator resolves a bearer token to the user it names.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*domain.User, error)
}

func unauthorized(msg string) *echo.HTTPError {
	return echo.NewHTTPError(http.StatusUnauthorized, msg)
}

// Auth validates the bearer token and stores the resolved user in the context.
func Auth(auth Authenticator) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" {
				c.Response().Header().Set(echo.HeaderWWWAuthenticate, "Bearer")
				return unauthorized("missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || strings.TrimSpace(parts[1]) == "" {
				c.Response().Header().Set(echo.HeaderWWWAuthenticate, "Bearer")
				return unauthorized("invalid authorization header")
			}

			user, err := auth.Authenticate(c.Request().Context(), strings.TrimSpace(parts[1]))
			if errors.Is(err, domain.ErrInvalidCredentials) {
				c.Response().Header().Set(echo.HeaderWWWAuthenticate, "Bearer")
				return unauthorized("could not validate credentials")
			}
			if err != nil {
				return fmt.Errorf("auth middleware: %w", err)
			}

			c.Set(userKey, user)
			return next(c)
		}
	}
}

// CurrentUser returns the user stored by Auth.
func CurrentUser(c echo.Context) (*domain.User, bool) {
	u, ok := c.Get(userKey).(*domain.User)
	return u, ok && u != nil
}

// WithUser stores user in c under the key Auth uses.
func WithUser(c echo.Context, user *domain.User) {
	c.Set(userKey, user)
}

package ports

import (
	"time"

	"github.com/saas-pm/project-hub/internal/core/domain"
)

// TokenClaims is the identity asserted by a validated bearer token.
type TokenClaims struct {
	SubjectID string
	Role      domain.Role
	ExpiresAt time.Time
}

// TokenService issues and validates signed, time-limited bearer tokens.
type TokenService interface {
	Issue(subjectID string, role domain.Role) (string, error)
	// Validate fails with domain.ErrInvalidCredentials for any token that is
	// malformed, badly signed, expired, or missing subject or role.
	Validate(token string) (*TokenClaims, error)
}

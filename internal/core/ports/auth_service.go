package ports

import (
	"context"

	"github.com/saas-pm/project-hub/internal/core/domain"
)

// RegisterInput carries the fields of a new account.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     domain.Role
}

// ProfileUpdateInput is a partial profile change. CurrentPassword is
// required whenever Password is set.
type ProfileUpdateInput struct {
	Name            *string
	Email           *string
	Password        *string
	CurrentPassword string
}

// LoginResult is returned by a successful login.
type LoginResult struct {
	Token  string
	Role   domain.Role
	UserID string
	Name   string
}

type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*domain.User, error)
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	// Authenticate resolves a bearer token to the user it names.
	Authenticate(ctx context.Context, token string) (*domain.User, error)
	UpdateProfile(ctx context.Context, user *domain.User, in ProfileUpdateInput) (*domain.User, error)
}

package ports

import (
	"context"

	"github.com/saas-pm/project-hub/internal/core/domain"
)

// UserService is the admin-facing user directory.
type UserService interface {
	List(ctx context.Context) ([]*domain.User, error)
	ListByRole(ctx context.Context, role domain.Role) ([]*domain.User, error)
	// Delete removes a non-admin user and unassigns it from every project.
	Delete(ctx context.Context, id string) error
}

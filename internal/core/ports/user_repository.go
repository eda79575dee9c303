package ports

import (
	"context"

	"github.com/saas-pm/project-hub/internal/core/domain"
)

// UserUpdate carries the optional fields of a profile change. Nil fields are
// left untouched.
type UserUpdate struct {
	Name         *string
	Email        *string
	PasswordHash *string
}

// IsEmpty reports whether the update changes nothing.
func (u UserUpdate) IsEmpty() bool {
	return u.Name == nil && u.Email == nil && u.PasswordHash == nil
}

// UserRepository defines persistence operations for user accounts.
// Email uniqueness is enforced by the store; Create and Update map a
// uniqueness violation to domain.ErrDuplicateEmail.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// List returns users holding any of roles; no roles means every user.
	List(ctx context.Context, roles ...domain.Role) ([]*domain.User, error)
	Update(ctx context.Context, id string, update UserUpdate) (*domain.User, error)
	Delete(ctx context.Context, id string) error
	// Count counts users holding any of roles; no roles means every user.
	Count(ctx context.Context, roles ...domain.Role) (int64, error)
}

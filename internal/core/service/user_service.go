package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/saas-pm/project-hub/internal/core/domain"
	"github.com/saas-pm/project-hub/internal/core/ports"
)

type UserService struct {
	users    ports.UserRepository
	projects ports.ProjectRepository
	log      zerolog.Logger
}

func NewUserService(users ports.UserRepository, projects ports.ProjectRepository, log zerolog.Logger) *UserService {
	return &UserService{users: users, projects: projects, log: log}
}

func (s *UserService) List(ctx context.Context) ([]*domain.User, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

func (s *UserService) ListByRole(ctx context.Context, role domain.Role) ([]*domain.User, error) {
	if !role.IsValid() {
		return nil, domain.ValidationError("unknown role")
	}
	users, err := s.users.List(ctx, role)
	if err != nil {
		return nil, fmt.Errorf("list users by role: %w", err)
	}
	return users, nil
}

// Delete removes the user and pulls its id from every project's assigned
// employees. Admin accounts cannot be deleted.
func (s *UserService) Delete(ctx context.Context, id string) error {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if user.Role == domain.RoleAdmin {
		return domain.ValidationError("cannot delete admin users")
	}

	unassigned, err := s.projects.RemoveEmployeeEverywhere(ctx, id)
	if err != nil {
		return fmt.Errorf("delete user: unassign: %w", err)
	}

	if err := s.users.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}

	s.log.Info().Str("user_id", id).Int64("projects_unassigned", unassigned).Msg("user deleted")
	return nil
}

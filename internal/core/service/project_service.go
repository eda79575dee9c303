package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/saas-pm/project-hub/internal/core/domain"
	"github.com/saas-pm/project-hub/internal/core/ports"
)

// ProjectService manages employee assignment and project progress.
type ProjectService struct {
	projects          ports.ProjectRepository
	requireMembership bool
	log               zerolog.Logger
}

// NewProjectService returns a ProjectService. When requireMembership is set,
// only employees assigned to a project may change its status.
func NewProjectService(projects ports.ProjectRepository, requireMembership bool, log zerolog.Logger) *ProjectService {
	return &ProjectService{projects: projects, requireMembership: requireMembership, log: log}
}

func (s *ProjectService) ListAll(ctx context.Context) ([]*domain.Project, error) {
	return s.list(ctx, ports.ProjectFilter{})
}

func (s *ProjectService) ListForClient(ctx context.Context, clientID string) ([]*domain.Project, error) {
	return s.list(ctx, ports.ProjectFilter{ClientID: clientID})
}

func (s *ProjectService) ListForEmployee(ctx context.Context, employeeID string) ([]*domain.Project, error) {
	return s.list(ctx, ports.ProjectFilter{EmployeeID: employeeID})
}

func (s *ProjectService) list(ctx context.Context, filter ports.ProjectFilter) ([]*domain.Project, error) {
	out, err := s.projects.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	return out, nil
}

// AssignEmployees replaces the project's employee set with employeeIDs.
// Repeated ids are collapsed; the ids are not checked against the user
// directory.
func (s *ProjectService) AssignEmployees(ctx context.Context, projectID string, employeeIDs []string) (*domain.Project, error) {
	ids := make([]string, 0, len(employeeIDs))
	seen := make(map[string]struct{}, len(employeeIDs))
	for _, id := range employeeIDs {
		if id == "" {
			return nil, domain.ValidationError("employee id cannot be empty")
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}

	project, err := s.projects.SetEmployees(ctx, projectID, ids)
	if err != nil {
		return nil, wrapProjectErr("assign employees", err)
	}

	s.log.Info().Str("project_id", projectID).Strs("employee_ids", ids).Msg("employees assigned")
	return project, nil
}

// UnassignEmployee removes one employee. Removing an id that is not assigned
// succeeds without change.
func (s *ProjectService) UnassignEmployee(ctx context.Context, projectID, employeeID string) (*domain.Project, error) {
	if employeeID == "" {
		return nil, domain.ValidationError("employee_id is required")
	}

	project, err := s.projects.RemoveEmployee(ctx, projectID, employeeID)
	if err != nil {
		return nil, wrapProjectErr("unassign employee", err)
	}

	s.log.Info().Str("project_id", projectID).Str("employee_id", employeeID).Msg("employee unassigned")
	return project, nil
}

// UpdateStatus sets the project status. Every status is reachable from every
// other.
func (s *ProjectService) UpdateStatus(ctx context.Context, employeeID, projectID string, status domain.ProjectStatus) (*domain.Project, error) {
	if !status.IsValid() {
		return nil, domain.ValidationError("status must be one of NOT_STARTED, IN_PROGRESS, COMPLETED")
	}

	if s.requireMembership {
		current, err := s.projects.FindByID(ctx, projectID)
		if err != nil {
			return nil, wrapProjectErr("update status", err)
		}
		if !current.HasEmployee(employeeID) {
			return nil, fmt.Errorf("update status: %w: employee is not assigned to project", domain.ErrForbidden)
		}
	}

	project, err := s.projects.SetStatus(ctx, projectID, status)
	if err != nil {
		return nil, wrapProjectErr("update status", err)
	}

	s.log.Info().
		Str("project_id", projectID).
		Str("employee_id", employeeID).
		Str("status", string(status)).
		Msg("project status updated")

	return project, nil
}

func wrapProjectErr(op string, err error) error {
	if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrValidation) {
		return err
	}
	return fmt.Errorf("%s: %w", op, err)
}

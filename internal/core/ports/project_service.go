package ports

import (
	"context"

	"github.com/saas-pm/project-hub/internal/core/domain"
)

type ProjectService interface {
	ListAll(ctx context.Context) ([]*domain.Project, error)
	ListForClient(ctx context.Context, clientID string) ([]*domain.Project, error)
	ListForEmployee(ctx context.Context, employeeID string) ([]*domain.Project, error)
	AssignEmployees(ctx context.Context, projectID string, employeeIDs []string) (*domain.Project, error)
	UnassignEmployee(ctx context.Context, projectID, employeeID string) (*domain.Project, error)
	UpdateStatus(ctx context.Context, employeeID, projectID string, status domain.ProjectStatus) (*domain.Project, error)
}

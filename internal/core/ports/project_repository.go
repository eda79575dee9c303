package ports

import (
	"context"

	"github.com/saas-pm/project-hub/internal/core/domain"
)

// ProjectFilter narrows a project listing. Zero-value fields are ignored.
type ProjectFilter struct {
	ClientID   string
	EmployeeID string
	Status     domain.ProjectStatus
}

// ProjectRepository persists projects. Every mutation is a single-document
// atomic update that returns the document as it is after the write.
type ProjectRepository interface {
	Create(ctx context.Context, p *domain.Project) (*domain.Project, error)
	FindByID(ctx context.Context, id string) (*domain.Project, error)
	List(ctx context.Context, filter ProjectFilter) ([]*domain.Project, error)
	// SetEmployees replaces the assigned employee set.
	SetEmployees(ctx context.Context, id string, employeeIDs []string) (*domain.Project, error)
	// RemoveEmployee pulls one employee from the set; absent ids are a no-op.
	RemoveEmployee(ctx context.Context, id string, employeeID string) (*domain.Project, error)
	// RemoveEmployeeEverywhere pulls employeeID from every project and
	// returns the number of projects modified.
	RemoveEmployeeEverywhere(ctx context.Context, employeeID string) (int64, error)
	SetStatus(ctx context.Context, id string, status domain.ProjectStatus) (*domain.Project, error)
	Count(ctx context.Context, filter ProjectFilter) (int64, error)
}

package ports

import (
	"context"

	"github.com/saas-pm/project-hub/internal/core/domain"
)

type CatalogService interface {
	Create(ctx context.Context, name, description string) (*domain.Service, error)
	List(ctx context.Context) ([]*domain.Service, error)
}

package ports

import (
	"context"

	"github.com/saas-pm/project-hub/internal/core/domain"
)

// ServiceRepository persists catalog entries.
type ServiceRepository interface {
	Create(ctx context.Context, s *domain.Service) (*domain.Service, error)
	FindByID(ctx context.Context, id string) (*domain.Service, error)
	List(ctx context.Context) ([]*domain.Service, error)
	Count(ctx context.Context) (int64, error)
}

// ServiceRequestFilter narrows a request listing. Empty ClientID means all clients.
type ServiceRequestFilter struct {
	ClientID string
	Status   domain.RequestStatus
}

// ServiceRequestRepository persists service requests.
type ServiceRequestRepository interface {
	Create(ctx context.Context, r *domain.ServiceRequest) (*domain.ServiceRequest, error)
	FindByID(ctx context.Context, id string) (*domain.ServiceRequest, error)
	List(ctx context.Context, filter ServiceRequestFilter) ([]*domain.ServiceRequest, error)
	// TransitionStatus atomically sets status to `to` only when the current
	// status is one of `from`, returning the updated request. When no request
	// matches both the id and the source states it returns
	// domain.ErrServiceRequestNotFound.
	TransitionStatus(ctx context.Context, id string, to domain.RequestStatus, from ...domain.RequestStatus) (*domain.ServiceRequest, error)
	Count(ctx context.Context, filter ServiceRequestFilter) (int64, error)
}

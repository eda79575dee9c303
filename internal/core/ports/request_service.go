package ports

import (
	"context"

	"github.com/saas-pm/project-hub/internal/core/domain"
)

// ApprovalResult pairs an approved request with the project it spawned.
type ApprovalResult struct {
	Request *domain.ServiceRequest
	Project *domain.Project
}

// RequestService drives the service request state machine.
type RequestService interface {
	File(ctx context.Context, clientID, serviceID string) (*domain.ServiceRequest, error)
	ListAll(ctx context.Context) ([]*domain.ServiceRequest, error)
	ListForClient(ctx context.Context, clientID string) ([]*domain.ServiceRequest, error)
	Approve(ctx context.Context, requestID string) (*ApprovalResult, error)
	Reject(ctx context.Context, requestID string) (*domain.ServiceRequest, error)
}

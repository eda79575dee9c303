package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/saas-pm/project-hub/internal/core/domain"
	"github.com/saas-pm/project-hub/internal/core/ports"
)

// RequestService files service requests and drives their approval.
type RequestService struct {
	requests ports.ServiceRequestRepository
	services ports.ServiceRepository
	projects ports.ProjectRepository
	tx       ports.Transactor
	log      zerolog.Logger
	now      func() time.Time
}

func NewRequestService(
	requests ports.ServiceRequestRepository,
	services ports.ServiceRepository,
	projects ports.ProjectRepository,
	tx ports.Transactor,
	log zerolog.Logger,
) *RequestService {
	return &RequestService{
		requests: requests,
		services: services,
		projects: projects,
		tx:       tx,
		log:      log,
		now:      time.Now,
	}
}

// File records a new PENDING request. The same client may file the same
// service any number of times.
func (s *RequestService) File(ctx context.Context, clientID, serviceID string) (*domain.ServiceRequest, error) {
	if serviceID == "" {
		return nil, domain.ValidationError("service_id is required")
	}

	created, err := s.requests.Create(ctx, &domain.ServiceRequest{
		ClientID:  clientID,
		ServiceID: serviceID,
		Status:    domain.RequestPending,
		CreatedAt: s.now().UTC(),
	})
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			return nil, err
		}
		return nil, fmt.Errorf("file request: %w", err)
	}

	s.log.Info().Str("request_id", created.ID).Str("client_id", clientID).Str("service_id", serviceID).Msg("service request filed")
	return created, nil
}

func (s *RequestService) ListAll(ctx context.Context) ([]*domain.ServiceRequest, error) {
	return s.list(ctx, ports.ServiceRequestFilter{})
}

func (s *RequestService) ListForClient(ctx context.Context, clientID string) ([]*domain.ServiceRequest, error) {
	return s.list(ctx, ports.ServiceRequestFilter{ClientID: clientID})
}

func (s *RequestService) list(ctx context.Context, filter ports.ServiceRequestFilter) ([]*domain.ServiceRequest, error) {
	out, err := s.requests.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list requests: %w", err)
	}
	return out, nil
}

// Approve moves a PENDING request to APPROVED and creates its project. Both
// writes run inside one transaction when the transactor supports it.
func (s *RequestService) Approve(ctx context.Context, requestID string) (*ports.ApprovalResult, error) {
	req, err := s.requests.FindByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if !req.Status.CanTransitionTo(domain.RequestApproved) {
		return nil, fmt.Errorf("approve request: %w (from %s to %s)", domain.ErrInvalidState, req.Status, domain.RequestApproved)
	}

	var result ports.ApprovalResult
	err = s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		approved, err := s.transition(ctx, requestID, domain.RequestApproved)
		if err != nil {
			return err
		}

		project := domain.NewProjectFromRequest(approved, s.serviceName(ctx, approved.ServiceID), s.now().UTC())
		created, err := s.projects.Create(ctx, project)
		if err != nil {
			return fmt.Errorf("approve request: create project: %w", err)
		}

		result = ports.ApprovalResult{Request: approved, Project: created}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Str("request_id", requestID).
		Str("project_id", result.Project.ID).
		Str("client_id", result.Project.ClientID).
		Msg("service request approved")

	return &result, nil
}

// Reject moves a request to REJECTED. Re-rejecting is accepted; rejecting an
// approved request is not.
func (s *RequestService) Reject(ctx context.Context, requestID string) (*domain.ServiceRequest, error) {
	req, err := s.requests.FindByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if !req.Status.CanTransitionTo(domain.RequestRejected) {
		return nil, fmt.Errorf("reject request: %w (from %s to %s)", domain.ErrInvalidState, req.Status, domain.RequestRejected)
	}

	rejected, err := s.transition(ctx, requestID, domain.RequestRejected)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("request_id", requestID).Msg("service request rejected")
	return rejected, nil
}

// transition applies a guarded status change. Losing a race to a concurrent
// decision surfaces as ErrInvalidState.
func (s *RequestService) transition(ctx context.Context, requestID string, to domain.RequestStatus) (*domain.ServiceRequest, error) {
	updated, err := s.requests.TransitionStatus(ctx, requestID, to, domain.SourcesOf(to)...)
	if err != nil {
		if errors.Is(err, domain.ErrServiceRequestNotFound) {
			return nil, fmt.Errorf("%w: request %s was decided concurrently", domain.ErrInvalidState, requestID)
		}
		return nil, fmt.Errorf("transition request to %s: %w", to, err)
	}
	return updated, nil
}

// serviceName returns the name of the requested service, or "" when it
// cannot be loaded.
func (s *RequestService) serviceName(ctx context.Context, serviceID string) string {
	svc, err := s.services.FindByID(ctx, serviceID)
	if err != nil {
		s.log.Warn().Err(err).Str("service_id", serviceID).Msg("service lookup failed, using fallback project name")
		return ""
	}
	return svc.Name
}

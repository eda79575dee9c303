package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/saas-pm/project-hub/internal/core/domain"
	"github.com/saas-pm/project-hub/internal/core/ports"
)

type CatalogService struct {
	services ports.ServiceRepository
	log      zerolog.Logger
}

func NewCatalogService(services ports.ServiceRepository, log zerolog.Logger) *CatalogService {
	return &CatalogService{services: services, log: log}
}

func (s *CatalogService) Create(ctx context.Context, name, description string) (*domain.Service, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.ValidationError("service name is required")
	}

	created, err := s.services.Create(ctx, &domain.Service{
		Name:        name,
		Description: strings.TrimSpace(description),
		CreatedAt:   time.Now().UTC(),
	})
	if err != nil {
		return nil, fmt.Errorf("create service: %w", err)
	}

	s.log.Info().Str("service_id", created.ID).Str("name", created.Name).Msg("service created")
	return created, nil
}

func (s *CatalogService) List(ctx context.Context) ([]*domain.Service, error) {
	services, err := s.services.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}
	return services, nil
}

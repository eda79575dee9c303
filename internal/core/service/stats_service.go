package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/saas-pm/project-hub/internal/core/domain"
	"github.com/saas-pm/project-hub/internal/core/ports"
)

// StatsCache abstracts the short-lived dashboard cache (Redis).
type StatsCache interface {
	Get(ctx context.Context) (*ports.Stats, bool, error)
	Set(ctx context.Context, stats *ports.Stats) error
}

type StatsService struct {
	users    ports.UserRepository
	services ports.ServiceRepository
	requests ports.ServiceRequestRepository
	projects ports.ProjectRepository
	cache    StatsCache
	log      zerolog.Logger
}

// NewStatsService returns a StatsService. cache may be nil.
func NewStatsService(
	users ports.UserRepository,
	services ports.ServiceRepository,
	requests ports.ServiceRequestRepository,
	projects ports.ProjectRepository,
	cache StatsCache,
	log zerolog.Logger,
) *StatsService {
	return &StatsService{
		users:    users,
		services: services,
		requests: requests,
		projects: projects,
		cache:    cache,
		log:      log,
	}
}

// Stats returns the dashboard counters, served from cache when fresh.
func (s *StatsService) Stats(ctx context.Context) (*ports.Stats, error) {
	if s.cache != nil {
		cached, ok, err := s.cache.Get(ctx)
		if err != nil {
			s.log.Warn().Err(err).Msg("stats cache read failed, computing fresh")
		} else if ok {
			return cached, nil
		}
	}

	stats, err := s.compute(ctx)
	if err != nil {
		return nil, fmt.Errorf("stats: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, stats); err != nil {
			s.log.Warn().Err(err).Msg("stats cache write failed")
		}
	}
	return stats, nil
}

func (s *StatsService) compute(ctx context.Context) (*ports.Stats, error) {
	var (
		st  ports.Stats
		err error
	)
	if st.TotalUsers, err = s.users.Count(ctx); err != nil {
		return nil, err
	}
	if st.TotalEmployees, err = s.users.Count(ctx, domain.RoleEmployee); err != nil {
		return nil, err
	}
	if st.TotalClients, err = s.users.Count(ctx, domain.RoleClient); err != nil {
		return nil, err
	}
	if st.TotalProjects, err = s.projects.Count(ctx, ports.ProjectFilter{}); err != nil {
		return nil, err
	}
	if st.TotalServices, err = s.services.Count(ctx); err != nil {
		return nil, err
	}
	if st.PendingRequests, err = s.requests.Count(ctx, ports.ServiceRequestFilter{Status: domain.RequestPending}); err != nil {
		return nil, err
	}
	if st.ActiveProjects, err = s.projects.Count(ctx, ports.ProjectFilter{Status: domain.ProjectInProgress}); err != nil {
		return nil, err
	}
	if st.CompletedProjects, err = s.projects.Count(ctx, ports.ProjectFilter{Status: domain.ProjectCompleted}); err != nil {
		return nil, err
	}
	return &st, nil
}

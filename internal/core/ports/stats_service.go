package ports

import "context"

// Stats is the admin dashboard summary.
type Stats struct {
	TotalUsers        int64 `json:"total_users"`
	TotalEmployees    int64 `json:"total_employees"`
	TotalClients      int64 `json:"total_clients"`
	TotalProjects     int64 `json:"total_projects"`
	TotalServices     int64 `json:"total_services"`
	PendingRequests   int64 `json:"pending_requests"`
	ActiveProjects    int64 `json:"active_projects"`
	CompletedProjects int64 `json:"completed_projects"`
}

type StatsService interface {
	Stats(ctx context.Context) (*Stats, error)
}

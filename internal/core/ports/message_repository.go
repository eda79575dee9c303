package ports

import (
	"context"

	"github.com/saas-pm/project-hub/internal/core/domain"
)

// MessageRepository persists direct messages.
type MessageRepository interface {
	Create(ctx context.Context, m *domain.Message) (*domain.Message, error)
	// ListForUser returns messages sent or received by userID, oldest first,
	// capped at limit documents.
	ListForUser(ctx context.Context, userID string, limit int) ([]*domain.Message, error)
}

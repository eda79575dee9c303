package ports

import (
	"context"

	"github.com/saas-pm/project-hub/internal/core/domain"
)

type MessageService interface {
	Send(ctx context.Context, senderID, receiverID, content string) (*domain.Message, error)
	List(ctx context.Context, userID string) ([]*domain.Message, error)
	// Contacts derives the users the caller may pick as message targets.
	Contacts(ctx context.Context, user *domain.User) ([]*domain.User, error)
}

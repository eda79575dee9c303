package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/saas-pm/project-hub/internal/core/domain"
	"github.com/saas-pm/project-hub/internal/core/ports"
)

// messageFetchLimit caps message and contact listings; there is no paging.
const messageFetchLimit = 1000

// MessageService sends and lists direct messages and resolves the
// role-scoped contact list.
type MessageService struct {
	messages ports.MessageRepository
	users    ports.UserRepository
	projects ports.ProjectRepository
	log      zerolog.Logger
	now      func() time.Time
}

func NewMessageService(
	messages ports.MessageRepository,
	users ports.UserRepository,
	projects ports.ProjectRepository,
	log zerolog.Logger,
) *MessageService {
	return &MessageService{messages: messages, users: users, projects: projects, log: log, now: time.Now}
}

// Send stores a message. The receiver is not checked for existence and the
// sender needs no relationship with it.
func (s *MessageService) Send(ctx context.Context, senderID, receiverID, content string) (*domain.Message, error) {
	if receiverID == "" {
		return nil, domain.ValidationError("receiver_id is required")
	}
	if strings.TrimSpace(content) == "" {
		return nil, domain.ValidationError("content is required")
	}

	msg, err := s.messages.Create(ctx, &domain.Message{
		SenderID:   senderID,
		ReceiverID: receiverID,
		Content:    content,
		CreatedAt:  s.now().UTC(),
	})
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			return nil, err
		}
		return nil, fmt.Errorf("send message: %w", err)
	}

	s.log.Debug().Str("message_id", msg.ID).Str("sender_id", senderID).Str("receiver_id", receiverID).Msg("message sent")
	return msg, nil
}

// List returns every message the user sent or received, oldest first.
func (s *MessageService) List(ctx context.Context, userID string) ([]*domain.Message, error) {
	out, err := s.messages.ListForUser(ctx, userID, messageFetchLimit)
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	return out, nil
}

// Contacts derives the caller's contact list from its role:
//
//	ADMIN    → every EMPLOYEE and CLIENT
//	EMPLOYEE → every ADMIN + clients of the projects it is assigned to
//	CLIENT   → every ADMIN + employees assigned to its projects
//
// Derived ids that fail to resolve are skipped.
func (s *MessageService) Contacts(ctx context.Context, user *domain.User) ([]*domain.User, error) {
	switch user.Role {
	case domain.RoleAdmin:
		users, err := s.users.List(ctx, domain.RoleEmployee, domain.RoleClient)
		if err != nil {
			return nil, fmt.Errorf("contacts: %w", err)
		}
		return users, nil

	case domain.RoleEmployee:
		projects, err := s.projects.List(ctx, ports.ProjectFilter{EmployeeID: user.ID})
		if err != nil {
			return nil, fmt.Errorf("contacts: %w", err)
		}
		var ids []string
		for _, p := range projects {
			if p.ClientID != "" {
				ids = append(ids, p.ClientID)
			}
		}
		return s.adminsPlus(ctx, ids)

	case domain.RoleClient:
		projects, err := s.projects.List(ctx, ports.ProjectFilter{ClientID: user.ID})
		if err != nil {
			return nil, fmt.Errorf("contacts: %w", err)
		}
		var ids []string
		for _, p := range projects {
			ids = append(ids, p.EmployeeIDs...)
		}
		return s.adminsPlus(ctx, ids)
	}

	return []*domain.User{}, nil
}

// adminsPlus returns all admins followed by the distinct users resolved from ids.
func (s *MessageService) adminsPlus(ctx context.Context, ids []string) ([]*domain.User, error) {
	admins, err := s.users.List(ctx, domain.RoleAdmin)
	if err != nil {
		return nil, fmt.Errorf("contacts: %w", err)
	}

	contacts := make([]*domain.User, 0, len(admins)+len(ids))
	seen := make(map[string]struct{}, len(admins)+len(ids))
	for _, a := range admins {
		seen[a.ID] = struct{}{}
		contacts = append(contacts, a)
	}

	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}

		u, err := s.users.FindByID(ctx, id)
		if err != nil {
			s.log.Debug().Err(err).Str("contact_id", id).Msg("contact lookup failed, skipping")
			continue
		}
		contacts = append(contacts, u)
	}
	return contacts, nil
}

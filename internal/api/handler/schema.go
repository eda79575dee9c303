package handler

import (
	"strings"
	"time"

	"github.com/saas-pm/project-hub/internal/core/domain"
	"github.com/saas-pm/project-hub/internal/core/ports"
)

// --- Requests ---

type loginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type profileUpdateRequest struct {
	Name            *string `json:"name,omitempty"`
	Email           *string `json:"email,omitempty" validate:"omitempty,email"`
	Password        *string `json:"password,omitempty"`
	CurrentPassword string  `json:"current_password,omitempty"`
}

func (r *profileUpdateRequest) normalize() {
	if r.Email != nil {
		email := strings.TrimSpace(*r.Email)
		r.Email = &email
	}
}

type createUserRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role" validate:"required,oneof=ADMIN EMPLOYEE CLIENT"`
}

func (r *createUserRequest) normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.TrimSpace(r.Email)
}

type createServiceRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

type fileRequestRequest struct {
	ServiceID string `json:"service_id" validate:"required,mongodb"`
}

type assignRequest struct {
	EmployeeIDs []string `json:"employee_ids" validate:"required,dive,mongodb"`
}

type unassignRequest struct {
	EmployeeID string `json:"employee_id" validate:"required"`
}

type statusRequest struct {
	Status string `json:"status" validate:"required,oneof=NOT_STARTED IN_PROGRESS COMPLETED"`
}

type sendMessageRequest struct {
	ReceiverID string `json:"receiver_id" validate:"required,mongodb"`
	Content    string `json:"content" validate:"required"`
}

// --- Responses ---

type loginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	Role        string `json:"role"`
	UserID      string `json:"user_id"`
	Name        string `json:"name"`
}

type userResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

type approvalResponse struct {
	Message string                 `json:"message"`
	Request *domain.ServiceRequest `json:"request"`
	Project *domain.Project        `json:"project"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// --- Mappers ---

func toLoginResponse(r *ports.LoginResult) loginResponse {
	return loginResponse{
		AccessToken: r.Token,
		TokenType:   "bearer",
		Role:        string(r.Role),
		UserID:      r.UserID,
		Name:        r.Name,
	}
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt,
	}
}

func toUserResponses(users []*domain.User) []userResponse {
	out := make([]userResponse, 0, len(users))
	for _, u := range users {
		out = append(out, toUserResponse(u))
	}
	return out
}

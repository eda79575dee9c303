package handler

import (
	"context"
	"net/http/httptest"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/saas-pm/project-hub/internal/api/middleware"
	"github.com/saas-pm/project-hub/internal/core/domain"
	"github.com/saas-pm/project-hub/internal/core/ports"
)

const validID = "65f1a2b3c4d5e6f708192a3b"

// newContext builds an echo context with a JSON body and, when user is
// non-nil, an authenticated caller.
func newContext(method, target, body string, user *domain.User) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if user != nil {
		middleware.WithUser(c, user)
	}
	return c, rec
}

type stubAuthService struct {
	registerFn func(ctx context.Context, in ports.RegisterInput) (*domain.User, error)
	loginFn    func(ctx context.Context, email, password string) (*ports.LoginResult, error)
	updateFn   func(ctx context.Context, user *domain.User, in ports.ProfileUpdateInput) (*domain.User, error)
}

func (s *stubAuthService) Register(ctx context.Context, in ports.RegisterInput) (*domain.User, error) {
	return s.registerFn(ctx, in)
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (*ports.LoginResult, error) {
	return s.loginFn(ctx, email, password)
}

func (s *stubAuthService) Authenticate(context.Context, string) (*domain.User, error) {
	return nil, domain.ErrInvalidCredentials
}

func (s *stubAuthService) UpdateProfile(ctx context.Context, user *domain.User, in ports.ProfileUpdateInput) (*domain.User, error) {
	return s.updateFn(ctx, user, in)
}

type stubRequestService struct {
	fileFn    func(ctx context.Context, clientID, serviceID string) (*domain.ServiceRequest, error)
	approveFn func(ctx context.Context, id string) (*ports.ApprovalResult, error)
	rejectFn  func(ctx context.Context, id string) (*domain.ServiceRequest, error)
	listed    string
}

func (s *stubRequestService) File(ctx context.Context, clientID, serviceID string) (*domain.ServiceRequest, error) {
	return s.fileFn(ctx, clientID, serviceID)
}

func (s *stubRequestService) ListAll(context.Context) ([]*domain.ServiceRequest, error) {
	s.listed = "all"
	return []*domain.ServiceRequest{}, nil
}

func (s *stubRequestService) ListForClient(_ context.Context, clientID string) ([]*domain.ServiceRequest, error) {
	s.listed = clientID
	return []*domain.ServiceRequest{{ID: "r1", ClientID: clientID, Status: domain.RequestPending}}, nil
}

func (s *stubRequestService) Approve(ctx context.Context, id string) (*ports.ApprovalResult, error) {
	return s.approveFn(ctx, id)
}

func (s *stubRequestService) Reject(ctx context.Context, id string) (*domain.ServiceRequest, error) {
	return s.rejectFn(ctx, id)
}

type stubProjectService struct {
	assigned []string
	status   domain.ProjectStatus
	caller   string
	err      error
}

func (s *stubProjectService) ListAll(context.Context) ([]*domain.Project, error) {
	return []*domain.Project{}, s.err
}

func (s *stubProjectService) ListForClient(_ context.Context, clientID string) ([]*domain.Project, error) {
	s.caller = clientID
	return []*domain.Project{}, s.err
}

func (s *stubProjectService) ListForEmployee(_ context.Context, employeeID string) ([]*domain.Project, error) {
	s.caller = employeeID
	return []*domain.Project{}, s.err
}

func (s *stubProjectService) AssignEmployees(_ context.Context, projectID string, ids []string) (*domain.Project, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.assigned = ids
	return &domain.Project{ID: projectID, EmployeeIDs: ids}, nil
}

func (s *stubProjectService) UnassignEmployee(_ context.Context, projectID, _ string) (*domain.Project, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &domain.Project{ID: projectID, EmployeeIDs: []string{}}, nil
}

func (s *stubProjectService) UpdateStatus(_ context.Context, employeeID, projectID string, status domain.ProjectStatus) (*domain.Project, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.caller, s.status = employeeID, status
	return &domain.Project{ID: projectID, Status: status}, nil
}

type stubMessageService struct {
	sent     []*domain.Message
	contacts []*domain.User
}

func (s *stubMessageService) Send(_ context.Context, senderID, receiverID, content string) (*domain.Message, error) {
	m := &domain.Message{ID: "m1", SenderID: senderID, ReceiverID: receiverID, Content: content}
	s.sent = append(s.sent, m)
	return m, nil
}

func (s *stubMessageService) List(_ context.Context, userID string) ([]*domain.Message, error) {
	return s.sent, nil
}

func (s *stubMessageService) Contacts(context.Context, *domain.User) ([]*domain.User, error) {
	return s.contacts, nil
}

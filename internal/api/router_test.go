package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/saas-pm/project-hub/internal/api/handler"
	"github.com/saas-pm/project-hub/internal/core/domain"
	"github.com/saas-pm/project-hub/internal/core/ports"
)

// --- stubs ---

type routerAuth struct{ users map[string]*domain.User }

func (a *routerAuth) Register(_ context.Context, in ports.RegisterInput) (*domain.User, error) {
	return &domain.User{ID: "new", Name: in.Name, Email: in.Email, Role: in.Role}, nil
}

func (a *routerAuth) Login(context.Context, string, string) (*ports.LoginResult, error) {
	return nil, domain.ErrInvalidCredentials
}

func (a *routerAuth) Authenticate(_ context.Context, token string) (*domain.User, error) {
	if u, ok := a.users[token]; ok {
		return u, nil
	}
	return nil, domain.ErrInvalidCredentials
}

func (a *routerAuth) UpdateProfile(_ context.Context, u *domain.User, _ ports.ProfileUpdateInput) (*domain.User, error) {
	return u, nil
}

type routerUsers struct{}

func (routerUsers) List(context.Context) ([]*domain.User, error) { return []*domain.User{}, nil }
func (routerUsers) ListByRole(context.Context, domain.Role) ([]*domain.User, error) {
	return []*domain.User{}, nil
}
func (routerUsers) Delete(_ context.Context, id string) error {
	if id == "admin-1" {
		return domain.ValidationError("admin users cannot be deleted")
	}
	return domain.ErrUserNotFound
}

type routerCatalog struct{}

func (routerCatalog) Create(_ context.Context, name, desc string) (*domain.Service, error) {
	return &domain.Service{ID: "s1", Name: name, Description: desc}, nil
}
func (routerCatalog) List(context.Context) ([]*domain.Service, error) {
	return []*domain.Service{{ID: "s1", Name: "SEO"}}, nil
}

type routerRequests struct{}

func (routerRequests) File(_ context.Context, clientID, serviceID string) (*domain.ServiceRequest, error) {
	return &domain.ServiceRequest{ID: "r1", ClientID: clientID, ServiceID: serviceID, Status: domain.RequestPending}, nil
}
func (routerRequests) ListAll(context.Context) ([]*domain.ServiceRequest, error) {
	return []*domain.ServiceRequest{}, nil
}
func (routerRequests) ListForClient(context.Context, string) ([]*domain.ServiceRequest, error) {
	return []*domain.ServiceRequest{}, nil
}
func (routerRequests) Approve(context.Context, string) (*ports.ApprovalResult, error) {
	return nil, domain.ErrInvalidState
}
func (routerRequests) Reject(context.Context, string) (*domain.ServiceRequest, error) {
	return nil, domain.ErrServiceRequestNotFound
}

type routerProjects struct{}

func (routerProjects) ListAll(context.Context) ([]*domain.Project, error) { return []*domain.Project{}, nil }
func (routerProjects) ListForClient(context.Context, string) ([]*domain.Project, error) {
	return []*domain.Project{}, nil
}
func (routerProjects) ListForEmployee(context.Context, string) ([]*domain.Project, error) {
	return []*domain.Project{}, nil
}
func (routerProjects) AssignEmployees(_ context.Context, id string, ids []string) (*domain.Project, error) {
	return &domain.Project{ID: id, EmployeeIDs: ids}, nil
}
func (routerProjects) UnassignEmployee(_ context.Context, id, _ string) (*domain.Project, error) {
	return &domain.Project{ID: id}, nil
}
func (routerProjects) UpdateStatus(_ context.Context, _, id string, s domain.ProjectStatus) (*domain.Project, error) {
	return &domain.Project{ID: id, Status: s}, nil
}

type routerMessages struct{}

func (routerMessages) Send(_ context.Context, from, to, content string) (*domain.Message, error) {
	return &domain.Message{ID: "m1", SenderID: from, ReceiverID: to, Content: content}, nil
}
func (routerMessages) List(context.Context, string) ([]*domain.Message, error) {
	return []*domain.Message{}, nil
}
func (routerMessages) Contacts(context.Context, *domain.User) ([]*domain.User, error) {
	return []*domain.User{}, nil
}

type routerStats struct{}

func (routerStats) Stats(context.Context) (*ports.Stats, error) { return &ports.Stats{TotalUsers: 3}, nil }

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	auth := &routerAuth{users: map[string]*domain.User{
		"admin":    {ID: "admin-1", Role: domain.RoleAdmin},
		"employee": {ID: "emp-1", Role: domain.RoleEmployee},
		"client":   {ID: "client-1", Role: domain.RoleClient},
	}}
	reg := prometheus.NewRegistry()
	return NewRouter(Services{
		Auth:     auth,
		Users:    routerUsers{},
		Catalog:  routerCatalog{},
		Requests: routerRequests{},
		Projects: routerProjects{},
		Messages: routerMessages{},
		Stats:    routerStats{},
	}, Options{
		Prefix:     "/api",
		Log:        zerolog.Nop(),
		Health:     map[string]handler.Check{"mongodb": func(context.Context) error { return nil }},
		Registerer: reg,
		Gatherer:   reg,
	})
}

func do(h http.Handler, method, path, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

// --- tests ---

func TestRouter_RoleGates(t *testing.T) {
	r := newTestRouter(t)

	cases := []struct {
		method, path, token string
		want                int
	}{
		{http.MethodGet, "/api/admin/users", "", http.StatusUnauthorized},
		{http.MethodGet, "/api/admin/users", "forged", http.StatusUnauthorized},
		{http.MethodGet, "/api/admin/users", "admin", http.StatusOK},
		{http.MethodGet, "/api/admin/users", "client", http.StatusForbidden},
		{http.MethodGet, "/api/admin/stats", "employee", http.StatusForbidden},
		{http.MethodGet, "/api/client/projects", "admin", http.StatusForbidden},
		{http.MethodGet, "/api/client/projects", "client", http.StatusOK},
		{http.MethodGet, "/api/client/services", "client", http.StatusOK},
		{http.MethodGet, "/api/employee/projects", "admin", http.StatusForbidden},
		{http.MethodGet, "/api/employee/projects", "employee", http.StatusOK},
		{http.MethodGet, "/api/messages", "client", http.StatusOK},
		{http.MethodGet, "/api/messages/contacts", "employee", http.StatusOK},
		{http.MethodGet, "/api/auth/profile", "admin", http.StatusOK},
	}
	for _, tc := range cases {
		rec := do(r, tc.method, tc.path, tc.token, "")
		if rec.Code != tc.want {
			t.Errorf("%s %s as %q: expected %d, got %d (%s)", tc.method, tc.path, tc.token, tc.want, rec.Code, rec.Body.String())
		}
	}
}

func TestRouter_ErrorMapping(t *testing.T) {
	r := newTestRouter(t)

	if rec := do(r, http.MethodPut, "/api/admin/service-requests/r1/approve", "admin", ""); rec.Code != http.StatusConflict {
		t.Fatalf("approve non-pending: expected 409, got %d", rec.Code)
	}
	if rec := do(r, http.MethodPut, "/api/admin/service-requests/r1/reject", "admin", ""); rec.Code != http.StatusNotFound {
		t.Fatalf("reject unknown: expected 404, got %d", rec.Code)
	}
	if rec := do(r, http.MethodDelete, "/api/admin/users/admin-1", "admin", ""); rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("delete admin: expected 422, got %d", rec.Code)
	}
	if rec := do(r, http.MethodPost, "/api/auth/login", "", `{"email":"x@example.com","password":"bad"}`); rec.Code != http.StatusUnauthorized {
		t.Fatalf("bad login: expected 401, got %d", rec.Code)
	}
	if rec := do(r, http.MethodPut, "/api/employee/projects/p1/status", "employee", `{"status":"DONE"}`); rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("bad status: expected 422, got %d", rec.Code)
	}
	if rec := do(r, http.MethodPost, "/api/admin/users", "admin", `{"name":"N","email":"n@example.com","password":"p","role":"ROOT"}`); rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("unknown role: expected 422, got %d", rec.Code)
	}
}

func TestRouter_CreatesResources(t *testing.T) {
	r := newTestRouter(t)

	if rec := do(r, http.MethodPost, "/api/admin/services", "admin", `{"name":"SEO","description":"Search"}`); rec.Code != http.StatusCreated {
		t.Fatalf("create service: expected 201, got %d", rec.Code)
	}
	body := `{"service_id":"65f1a2b3c4d5e6f708192a3b"}`
	if rec := do(r, http.MethodPost, "/api/client/service-requests", "client", body); rec.Code != http.StatusCreated {
		t.Fatalf("file request: expected 201, got %d (%s)", rec.Code, rec.Body.String())
	}
}

func TestRouter_MessagesAcceptTrailingSlash(t *testing.T) {
	r := newTestRouter(t)

	for _, path := range []string{"/api/messages", "/api/messages/"} {
		if rec := do(r, http.MethodGet, path, "client", ""); rec.Code != http.StatusOK {
			t.Errorf("GET %s: expected 200, got %d (%s)", path, rec.Code, rec.Body.String())
		}
		body := `{"receiver_id":"65f1a2b3c4d5e6f708192a3b","content":"hi"}`
		if rec := do(r, http.MethodPost, path, "client", body); rec.Code != http.StatusCreated {
			t.Errorf("POST %s: expected 201, got %d (%s)", path, rec.Code, rec.Body.String())
		}
	}
}

func TestRouter_OperationalEndpointsAreUnprefixed(t *testing.T) {
	r := newTestRouter(t)

	for _, path := range []string{"/health", "/health/ready", "/metrics"} {
		if rec := do(r, http.MethodGet, path, "", ""); rec.Code != http.StatusOK {
			t.Errorf("GET %s: expected 200, got %d", path, rec.Code)
		}
	}
}

func TestRouter_SetsRequestID(t *testing.T) {
	rec := do(newTestRouter(t), http.MethodGet, "/health", "", "")
	if rec.Header().Get("X-Request-Id") == "" {
		t.Fatalf("expected a generated request id")
	}
}

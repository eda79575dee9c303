package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/rs/zerolog"

	"github.com/saas-pm/project-hub/internal/core/domain"
	"github.com/saas-pm/project-hub/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stub repositories. They mirror the Mongo repositories' contracts:
// sentinel not-found errors, duplicate email detection, replace/pull
// semantics on employee sets, insertion-ordered listings.
// ---------------------------------------------------------------------------

var discardLogger = zerolog.Nop()

type stubUserRepo struct {
	users   []*domain.User
	seq     int
	findErr map[string]error // per-id FindByID failure
	listErr error
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{findErr: make(map[string]error)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == user.Email {
			return nil, domain.ErrDuplicateEmail
		}
	}
	r.seq++
	c := cloneUser(user)
	c.ID = fmt.Sprintf("user-%d", r.seq)
	r.users = append(r.users, c)
	return cloneUser(c), nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	if err, ok := r.findErr[id]; ok {
		return nil, err
	}
	for _, u := range r.users {
		if u.ID == id {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func hasRole(role domain.Role, roles []domain.Role) bool {
	if len(roles) == 0 {
		return true
	}
	for _, r := range roles {
		if r == role {
			return true
		}
	}
	return false
}

func (r *stubUserRepo) List(_ context.Context, roles ...domain.Role) ([]*domain.User, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	out := []*domain.User{}
	for _, u := range r.users {
		if hasRole(u.Role, roles) {
			out = append(out, cloneUser(u))
		}
	}
	return out, nil
}

func (r *stubUserRepo) Update(_ context.Context, id string, update ports.UserUpdate) (*domain.User, error) {
	for _, u := range r.users {
		if u.ID != id {
			continue
		}
		if update.Email != nil {
			for _, other := range r.users {
				if other.ID != id && other.Email == *update.Email {
					return nil, domain.ErrDuplicateEmail
				}
			}
			u.Email = *update.Email
		}
		if update.Name != nil {
			u.Name = *update.Name
		}
		if update.PasswordHash != nil {
			u.PasswordHash = *update.PasswordHash
		}
		return cloneUser(u), nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) Delete(_ context.Context, id string) error {
	for i, u := range r.users {
		if u.ID == id {
			r.users = append(r.users[:i], r.users[i+1:]...)
			return nil
		}
	}
	return domain.ErrUserNotFound
}

func (r *stubUserRepo) Count(ctx context.Context, roles ...domain.Role) (int64, error) {
	users, err := r.List(ctx, roles...)
	return int64(len(users)), err
}

// seed inserts a user directly, bypassing hashing.
func (r *stubUserRepo) seed(name, email string, role domain.Role) *domain.User {
	u, err := r.Create(context.Background(), &domain.User{Name: name, Email: email, Role: role})
	if err != nil {
		panic(err)
	}
	return u
}

type stubServiceRepo struct {
	services []*domain.Service
	seq      int
	findErr  error
}

func (r *stubServiceRepo) Create(_ context.Context, s *domain.Service) (*domain.Service, error) {
	r.seq++
	c := *s
	c.ID = fmt.Sprintf("service-%d", r.seq)
	r.services = append(r.services, &c)
	out := c
	return &out, nil
}

func (r *stubServiceRepo) FindByID(_ context.Context, id string) (*domain.Service, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	for _, s := range r.services {
		if s.ID == id {
			c := *s
			return &c, nil
		}
	}
	return nil, domain.ErrServiceNotFound
}

func (r *stubServiceRepo) List(context.Context) ([]*domain.Service, error) {
	out := []*domain.Service{}
	for _, s := range r.services {
		c := *s
		out = append(out, &c)
	}
	return out, nil
}

func (r *stubServiceRepo) Count(context.Context) (int64, error) {
	return int64(len(r.services)), nil
}

type stubRequestRepo struct {
	requests      []*domain.ServiceRequest
	seq           int
	transitionErr error
}

func (r *stubRequestRepo) Create(_ context.Context, req *domain.ServiceRequest) (*domain.ServiceRequest, error) {
	r.seq++
	c := *req
	c.ID = fmt.Sprintf("request-%d", r.seq)
	r.requests = append(r.requests, &c)
	out := c
	return &out, nil
}

func (r *stubRequestRepo) FindByID(_ context.Context, id string) (*domain.ServiceRequest, error) {
	for _, req := range r.requests {
		if req.ID == id {
			c := *req
			return &c, nil
		}
	}
	return nil, domain.ErrServiceRequestNotFound
}

func (r *stubRequestRepo) List(_ context.Context, f ports.ServiceRequestFilter) ([]*domain.ServiceRequest, error) {
	out := []*domain.ServiceRequest{}
	for _, req := range r.requests {
		if f.ClientID != "" && req.ClientID != f.ClientID {
			continue
		}
		if f.Status != "" && req.Status != f.Status {
			continue
		}
		c := *req
		out = append(out, &c)
	}
	return out, nil
}

func (r *stubRequestRepo) TransitionStatus(_ context.Context, id string, to domain.RequestStatus, from ...domain.RequestStatus) (*domain.ServiceRequest, error) {
	if r.transitionErr != nil {
		return nil, r.transitionErr
	}
	for _, req := range r.requests {
		if req.ID != id {
			continue
		}
		for _, f := range from {
			if req.Status == f {
				req.Status = to
				c := *req
				return &c, nil
			}
		}
	}
	return nil, domain.ErrServiceRequestNotFound
}

func (r *stubRequestRepo) Count(ctx context.Context, f ports.ServiceRequestFilter) (int64, error) {
	out, _ := r.List(ctx, f)
	return int64(len(out)), nil
}

type stubProjectRepo struct {
	projects  []*domain.Project
	seq       int
	createErr error
}

func cloneProject(p *domain.Project) *domain.Project {
	c := *p
	c.EmployeeIDs = append([]string{}, p.EmployeeIDs...)
	return &c
}

func (r *stubProjectRepo) get(id string) *domain.Project {
	for _, p := range r.projects {
		if p.ID == id {
			return p
		}
	}
	return nil
}

func (r *stubProjectRepo) Create(_ context.Context, p *domain.Project) (*domain.Project, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	r.seq++
	c := cloneProject(p)
	c.ID = fmt.Sprintf("project-%d", r.seq)
	r.projects = append(r.projects, c)
	return cloneProject(c), nil
}

func (r *stubProjectRepo) FindByID(_ context.Context, id string) (*domain.Project, error) {
	if p := r.get(id); p != nil {
		return cloneProject(p), nil
	}
	return nil, domain.ErrProjectNotFound
}

func (r *stubProjectRepo) List(_ context.Context, f ports.ProjectFilter) ([]*domain.Project, error) {
	out := []*domain.Project{}
	for _, p := range r.projects {
		if f.ClientID != "" && p.ClientID != f.ClientID {
			continue
		}
		if f.EmployeeID != "" && !p.HasEmployee(f.EmployeeID) {
			continue
		}
		if f.Status != "" && p.Status != f.Status {
			continue
		}
		out = append(out, cloneProject(p))
	}
	return out, nil
}

func (r *stubProjectRepo) SetEmployees(_ context.Context, id string, employeeIDs []string) (*domain.Project, error) {
	p := r.get(id)
	if p == nil {
		return nil, domain.ErrProjectNotFound
	}
	p.EmployeeIDs = append([]string{}, employeeIDs...)
	return cloneProject(p), nil
}

func pull(ids []string, target string) ([]string, bool) {
	out := ids[:0:0]
	removed := false
	for _, id := range ids {
		if id == target {
			removed = true
			continue
		}
		out = append(out, id)
	}
	return out, removed
}

func (r *stubProjectRepo) RemoveEmployee(_ context.Context, id, employeeID string) (*domain.Project, error) {
	p := r.get(id)
	if p == nil {
		return nil, domain.ErrProjectNotFound
	}
	p.EmployeeIDs, _ = pull(p.EmployeeIDs, employeeID)
	return cloneProject(p), nil
}

func (r *stubProjectRepo) RemoveEmployeeEverywhere(_ context.Context, employeeID string) (int64, error) {
	var n int64
	for _, p := range r.projects {
		var removed bool
		p.EmployeeIDs, removed = pull(p.EmployeeIDs, employeeID)
		if removed {
			n++
		}
	}
	return n, nil
}

func (r *stubProjectRepo) SetStatus(_ context.Context, id string, status domain.ProjectStatus) (*domain.Project, error) {
	p := r.get(id)
	if p == nil {
		return nil, domain.ErrProjectNotFound
	}
	p.Status = status
	return cloneProject(p), nil
}

func (r *stubProjectRepo) Count(ctx context.Context, f ports.ProjectFilter) (int64, error) {
	out, _ := r.List(ctx, f)
	return int64(len(out)), nil
}

// seed inserts a project owned by clientID with the given employees.
func (r *stubProjectRepo) seed(clientID string, employeeIDs ...string) *domain.Project {
	p, _ := r.Create(context.Background(), &domain.Project{
		Name:        "Project - seed",
		ClientID:    clientID,
		EmployeeIDs: employeeIDs,
		Status:      domain.ProjectNotStarted,
	})
	return p
}

type stubMessageRepo struct {
	messages []*domain.Message
	seq      int
}

func (r *stubMessageRepo) Create(_ context.Context, m *domain.Message) (*domain.Message, error) {
	r.seq++
	c := *m
	c.ID = fmt.Sprintf("message-%d", r.seq)
	r.messages = append(r.messages, &c)
	out := c
	return &out, nil
}

func (r *stubMessageRepo) ListForUser(_ context.Context, userID string, limit int) ([]*domain.Message, error) {
	out := []*domain.Message{}
	for _, m := range r.messages {
		if m.SenderID == userID || m.ReceiverID == userID {
			c := *m
			out = append(out, &c)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// stubTransactor runs fn inline and records how many transactions ran.
type stubTransactor struct {
	calls int
}

func (t *stubTransactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	t.calls++
	return fn(ctx)
}

package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/saas-pm/project-hub/internal/core/domain"
	"github.com/saas-pm/project-hub/internal/core/ports"
)

func TestAuthHandler_Login_Success(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (*ports.LoginResult, error) {
			if email != "alice@example.com" || password != "secret" {
				t.Fatalf("unexpected args: %s %s", email, password)
			}
			return &ports.LoginResult{Token: "token123", Role: domain.RoleClient, UserID: "u1", Name: "Alice"}, nil
		},
	}
	c, rec := newContext(http.MethodPost, "/auth/login", `{"email":"alice@example.com","password":"secret"}`, nil)

	if err := NewAuthHandler(stub).Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["access_token"] != "token123" || resp["token_type"] != "bearer" ||
		resp["role"] != "CLIENT" || resp["user_id"] != "u1" || resp["name"] != "Alice" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(context.Context, string, string) (*ports.LoginResult, error) {
			return nil, domain.ErrInvalidCredentials
		},
	}
	c, _ := newContext(http.MethodPost, "/auth/login", `{"email":"a@example.com","password":"x"}`, nil)

	if err := NewAuthHandler(stub).Login(c); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthHandler_Login_MissingFields(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(context.Context, string, string) (*ports.LoginResult, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	c, _ := newContext(http.MethodPost, "/auth/login", `{"email":"a@example.com"}`, nil)

	if err := NewAuthHandler(stub).Login(c); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestAuthHandler_Profile(t *testing.T) {
	user := &domain.User{ID: "u1", Name: "Alice", Email: "a@example.com", PasswordHash: "hash", Role: domain.RoleEmployee}
	c, rec := newContext(http.MethodGet, "/auth/profile", "", user)

	if err := NewAuthHandler(&stubAuthService{}).Profile(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp map[string]any
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp["id"] != "u1" || resp["role"] != "EMPLOYEE" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
	if _, leaked := resp["password_hash"]; leaked {
		t.Fatalf("password hash must never be serialized")
	}
}

func TestAuthHandler_UpdateProfile_PassesPatch(t *testing.T) {
	user := &domain.User{ID: "u1", Name: "Alice", Email: "a@example.com", Role: domain.RoleClient}
	stub := &stubAuthService{
		updateFn: func(_ context.Context, u *domain.User, in ports.ProfileUpdateInput) (*domain.User, error) {
			if u.ID != "u1" {
				t.Fatalf("update applied to wrong user %s", u.ID)
			}
			if in.Name == nil || *in.Name != "Alicia" || in.Email != nil || in.Password == nil || in.CurrentPassword != "old" {
				t.Fatalf("unexpected patch: %+v", in)
			}
			updated := *u
			updated.Name = *in.Name
			return &updated, nil
		},
	}
	c, rec := newContext(http.MethodPut, "/auth/profile", `{"name":"Alicia","password":"new","current_password":"old"}`, user)

	if err := NewAuthHandler(stub).UpdateProfile(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuthHandler_UpdateProfile_TrimsEmailBeforeValidation(t *testing.T) {
	user := &domain.User{ID: "u1", Name: "Alice", Email: "a@example.com", Role: domain.RoleClient}
	stub := &stubAuthService{
		updateFn: func(_ context.Context, u *domain.User, in ports.ProfileUpdateInput) (*domain.User, error) {
			if in.Email == nil || *in.Email != "b@example.com" {
				t.Fatalf("expected trimmed email, got %+v", in.Email)
			}
			updated := *u
			updated.Email = *in.Email
			return &updated, nil
		},
	}
	c, rec := newContext(http.MethodPut, "/auth/profile", `{"email":"  b@example.com "}`, user)

	if err := NewAuthHandler(stub).UpdateProfile(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestUserHandler_Create_TrimsBeforeValidation(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(_ context.Context, in ports.RegisterInput) (*domain.User, error) {
			if in.Email != "n@example.com" || in.Name != "Nora" {
				t.Fatalf("expected trimmed input, got %+v", in)
			}
			return &domain.User{ID: "u2", Name: in.Name, Email: in.Email, Role: in.Role}, nil
		},
	}
	body := `{"name":" Nora ","email":" n@example.com ","password":"p","role":"CLIENT"}`
	c, rec := newContext(http.MethodPost, "/admin/users", body, nil)

	if err := NewUserHandler(nil, stub).Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestAuthHandler_UpdateProfile_RequiresUser(t *testing.T) {
	c, _ := newContext(http.MethodPut, "/auth/profile", `{"name":"x"}`, nil)
	if err := NewAuthHandler(&stubAuthService{}).UpdateProfile(c); err == nil {
		t.Fatalf("expected an error without an authenticated user")
	}
}

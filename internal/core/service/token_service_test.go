package service

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/saas-pm/project-hub/internal/core/domain"
)

func TestTokenService_IssueValidate_RoundTrip(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)

	token, err := svc.Issue("user-1", domain.RoleEmployee)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	claims, err := svc.Validate(token)
	if err != nil {
		t.Fatalf("Validate returned error: %v", err)
	}
	if claims.SubjectID != "user-1" || claims.Role != domain.RoleEmployee {
		t.Fatalf("unexpected claims: %+v", claims)
	}
	if d := time.Until(claims.ExpiresAt); d <= 0 || d > time.Hour {
		t.Fatalf("unexpected expiry in %v", d)
	}
}

func TestTokenService_DefaultTTL(t *testing.T) {
	svc := NewTokenService("secret", 0)
	if svc.ttl != 24*time.Hour {
		t.Fatalf("expected 24h default ttl, got %v", svc.ttl)
	}
}

func TestTokenService_Validate_Expired(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)
	svc.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	token, err := svc.Issue("user-1", domain.RoleClient)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	svc.now = time.Now
	if _, err := svc.Validate(token); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestTokenService_Validate_WrongSecret(t *testing.T) {
	token, _ := NewTokenService("other", time.Hour).Issue("user-1", domain.RoleAdmin)

	if _, err := NewTokenService("secret", time.Hour).Validate(token); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestTokenService_Validate_Malformed(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)
	for _, token := range []string{"", "not-a-token", "a.b.c"} {
		if _, err := svc.Validate(token); !errors.Is(err, domain.ErrInvalidCredentials) {
			t.Fatalf("token %q: expected ErrInvalidCredentials, got %v", token, err)
		}
	}
}

func TestTokenService_Validate_MissingClaims(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)
	exp := time.Now().Add(time.Hour).Unix()

	cases := map[string]jwt.MapClaims{
		"missing sub":  {"role": "ADMIN", "exp": exp},
		"missing role": {"sub": "user-1", "exp": exp},
		"unknown role": {"sub": "user-1", "role": "SUPERUSER", "exp": exp},
		"missing exp":  {"sub": "user-1", "role": "ADMIN"},
	}
	for name, claims := range cases {
		signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
		if err != nil {
			t.Fatalf("%s: sign: %v", name, err)
		}
		if _, err := svc.Validate(signed); !errors.Is(err, domain.ErrInvalidCredentials) {
			t.Fatalf("%s: expected ErrInvalidCredentials, got %v", name, err)
		}
	}
}

func TestTokenService_Validate_RejectsOtherAlgorithms(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)
	claims := jwt.MapClaims{"sub": "user-1", "role": "ADMIN", "exp": time.Now().Add(time.Hour).Unix()}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if _, err := svc.Validate(signed); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for HS512, got %v", err)
	}
}

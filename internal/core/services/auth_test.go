package services

import (
	"context"
	"errors"
	"testing"

	"github.com/docintel-labs/docintel-core/internal/core/domain"
	"github.com/docintel-labs/docintel-core/internal/core/ports/driven/mocks"
)

func TestVerifyToken(t *testing.T) {
	verifier := mocks.NewMockTokenVerifier()
	verifier.AddToken("good-token", &domain.UserInfo{
		UserID: "alice",
		Email:  "alice@example.com",
		Name:   "Alice",
	})
	svc := NewAuthService(verifier)

	user, err := svc.VerifyToken(context.Background(), "good-token")
	if err != nil {
		t.Fatalf("VerifyToken() error = %v", err)
	}
	if user.UserID != "alice" || user.Email != "alice@example.com" {
		t.Errorf("user = %+v, want alice", user)
	}

	if _, err := svc.VerifyToken(context.Background(), "bad-token"); !errors.Is(err, domain.ErrTokenInvalid) {
		t.Errorf("VerifyToken(bad) error = %v, want ErrTokenInvalid", err)
	}
	if _, err := svc.VerifyToken(context.Background(), ""); !errors.Is(err, domain.ErrTokenInvalid) {
		t.Errorf("VerifyToken(empty) error = %v, want ErrTokenInvalid", err)
	}
}

func TestResolveTenant(t *testing.T) {
	verifier := mocks.NewMockTokenVerifier()
	verifier.AddToken("good-token", &domain.UserInfo{UserID: "alice", Email: "alice@example.com"})
	svc := NewAuthService(verifier)

	tests := []struct {
		name       string
		token      string
		explicit   string
		wantTenant string
		wantSource domain.TenantSource
	}{
		{
			name:       "valid token wins over explicit id",
			token:      "good-token",
			explicit:   "someone-else",
			wantTenant: "alice",
			wantSource: domain.TenantFromToken,
		},
		{
			name:       "invalid token falls back to explicit id",
			token:      "bad-token",
			explicit:   "acme",
			wantTenant: "acme",
			wantSource: domain.TenantFallback,
		},
		{
			name:       "invalid token without explicit id falls back to default",
			token:      "bad-token",
			wantTenant: domain.DefaultTenant,
			wantSource: domain.TenantFallback,
		},
		{
			name:       "explicit id without token",
			explicit:   "acme",
			wantTenant: "acme",
			wantSource: domain.TenantFromRequest,
		},
		{
			name:       "nothing supplied",
			wantTenant: domain.DefaultTenant,
			wantSource: domain.TenantDefault,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := svc.ResolveTenant(context.Background(), tt.token, tt.explicit)
			if res.TenantID != tt.wantTenant {
				t.Errorf("TenantID = %q, want %q", res.TenantID, tt.wantTenant)
			}
			if res.Source != tt.wantSource {
				t.Errorf("Source = %q, want %q", res.Source, tt.wantSource)
			}
		})
	}
}

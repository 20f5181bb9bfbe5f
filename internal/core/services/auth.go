package services

import (
	"context"
	"log/slog"

	"github.com/docintel-labs/docintel-core/internal/core/domain"
	"github.com/docintel-labs/docintel-core/internal/core/ports/driven"
	"github.com/docintel-labs/docintel-core/internal/core/ports/driving"
)

// Ensure authService implements AuthService
var _ driving.AuthService = (*authService)(nil)

// authService delegates token verification to the identity provider and
// maps requests onto tenants.
type authService struct {
	verifier driven.TokenVerifier
}

// NewAuthService creates a new AuthService
func NewAuthService(verifier driven.TokenVerifier) driving.AuthService {
	return &authService{verifier: verifier}
}

// VerifyToken exchanges an identity-provider token for user info.
func (s *authService) VerifyToken(ctx context.Context, token string) (*domain.UserInfo, error) {
	if token == "" {
		return nil, domain.ErrTokenInvalid
	}
	return s.verifier.Verify(ctx, token)
}

// ResolveTenant maps an optional bearer token and an optional explicit
// tenant identifier to the tenant a request operates on.
//
// A verified token wins over everything: the caller's proven identity is
// the tenant. A token that fails verification never fails the request;
// it degrades to the explicit identifier or the default, and the
// resolution records that a fallback happened.
func (s *authService) ResolveTenant(ctx context.Context, token, explicit string) domain.TenantResolution {
	if token != "" {
		user, err := s.verifier.Verify(ctx, token)
		if err == nil {
			return domain.TenantResolution{TenantID: user.UserID, Source: domain.TenantFromToken}
		}
		slog.Warn("token verification failed, falling back", "error", err)

		if explicit != "" {
			return domain.TenantResolution{TenantID: explicit, Source: domain.TenantFallback}
		}
		return domain.TenantResolution{TenantID: domain.DefaultTenant, Source: domain.TenantFallback}
	}

	if explicit != "" {
		return domain.TenantResolution{TenantID: explicit, Source: domain.TenantFromRequest}
	}
	return domain.TenantResolution{TenantID: domain.DefaultTenant, Source: domain.TenantDefault}
}

package driving

import (
	"context"

	"github.com/docintel-labs/docintel-core/internal/core/domain"
)

// AuthService verifies identity-provider tokens and resolves request tenants.
type AuthService interface {
	// VerifyToken exchanges an identity-provider token for user info.
	// Returns domain.ErrTokenInvalid when verification fails.
	VerifyToken(ctx context.Context, token string) (*domain.UserInfo, error)

	// ResolveTenant maps an optional bearer token and an optional explicit
	// tenant identifier to the tenant a request operates on. An invalid
	// token does not fail the request; the fallback is recorded in the
	// resolution's Source.
	ResolveTenant(ctx context.Context, token, explicit string) domain.TenantResolution
}

package driven

import (
	"context"

	"github.com/docintel-labs/docintel-core/internal/core/domain"
)

// TokenVerifier validates an external identity-provider token and extracts
// the user identity. Returns domain.ErrTokenInvalid for tokens that fail
// verification.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (*domain.UserInfo, error)
}

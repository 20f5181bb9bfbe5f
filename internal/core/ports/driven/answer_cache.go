package driven

import (
	"context"

	"github.com/docintel-labs/docintel-core/internal/core/domain"
)

// AnswerCache memoises query answers per tenant for a bounded TTL.
type AnswerCache interface {
	// Get returns a cached answer or domain.ErrNotFound on a miss
	Get(ctx context.Context, tenantID, question string) (*domain.Answer, error)

	// Set stores an answer for the tenant/question pair
	Set(ctx context.Context, tenantID, question string, answer *domain.Answer) error
}

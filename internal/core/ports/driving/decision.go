package driving

import (
	"context"

	"github.com/docintel-labs/docintel-core/internal/core/domain"
)

// DecisionService applies fixed analytical templates over the retrieval
// pipeline.
type DecisionService interface {
	// Decide runs one of the closed decision modes against a tenant's
	// documents
	Decide(ctx context.Context, query string, mode domain.DecisionMode, tenantID string) (*domain.DecisionResult, error)
}

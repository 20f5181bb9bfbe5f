package driving

import (
	"context"

	"github.com/docintel-labs/docintel-core/internal/core/domain"
)

// QueryService answers natural-language questions over a tenant's documents.
type QueryService interface {
	// Answer retrieves relevant chunks and synthesizes a cited answer
	Answer(ctx context.Context, question, tenantID string) (*domain.Answer, error)
}

package driving

import (
	"context"

	"github.com/docintel-labs/docintel-core/internal/core/domain"
)

// DocumentService serves document listings and deletions.
type DocumentService interface {
	// List returns the documents uploaded by a tenant
	List(ctx context.Context, tenantID string) ([]*domain.Document, error)

	// Clear deletes a tenant's chunks, narrowed to filename when non-empty.
	// Store failure is non-fatal: it is reported via DeletionResult.Failed
	// rather than an error.
	Clear(ctx context.Context, tenantID, filename string) domain.DeletionResult
}

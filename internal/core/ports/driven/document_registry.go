package driven

import (
	"context"

	"github.com/docintel-labs/docintel-core/internal/core/domain"
)

// DocumentRegistry tracks uploaded documents per tenant. The vector store
// owns the chunk data; the registry only serves listings and bookkeeping.
type DocumentRegistry interface {
	// Record upserts a registry entry for an uploaded document
	Record(ctx context.Context, doc *domain.Document) error

	// List returns the documents uploaded by a tenant
	List(ctx context.Context, tenantID string) ([]*domain.Document, error)

	// Remove deletes registry entries for a tenant, narrowed to filename
	// when non-empty
	Remove(ctx context.Context, tenantID, filename string) error
}

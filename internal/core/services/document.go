package services

import (
	"context"
	"log/slog"

	"github.com/docintel-labs/docintel-core/internal/core/domain"
	"github.com/docintel-labs/docintel-core/internal/core/ports/driven"
	"github.com/docintel-labs/docintel-core/internal/core/ports/driving"
)

// Ensure documentService implements DocumentService
var _ driving.DocumentService = (*documentService)(nil)

// documentService serves document listings and deletions.
type documentService struct {
	store    driven.VectorStore
	registry driven.DocumentRegistry // optional
}

// NewDocumentService creates a new DocumentService.
// registry may be nil when no document registry is configured; listings
// are then empty.
func NewDocumentService(store driven.VectorStore, registry driven.DocumentRegistry) driving.DocumentService {
	return &documentService{store: store, registry: registry}
}

// List returns the documents uploaded by a tenant.
func (s *documentService) List(ctx context.Context, tenantID string) ([]*domain.Document, error) {
	if tenantID == "" {
		tenantID = domain.DefaultTenant
	}
	if s.registry == nil {
		return []*domain.Document{}, nil
	}
	return s.registry.List(ctx, tenantID)
}

// Clear deletes a tenant's chunks, narrowed to filename when non-empty.
// A store failure is reported via DeletionResult.Failed so callers can
// distinguish it from a successful zero-match deletion.
func (s *documentService) Clear(ctx context.Context, tenantID, filename string) domain.DeletionResult {
	if tenantID == "" {
		tenantID = domain.DefaultTenant
	}

	deleted, err := s.store.Delete(ctx, tenantID, filename)
	if err != nil {
		slog.Error("vector store deletion failed",
			"tenant_id", tenantID,
			"filename", filename,
			"error", err)
		return domain.DeletionResult{TenantID: tenantID, Filename: filename, Failed: true}
	}

	if s.registry != nil {
		if err := s.registry.Remove(ctx, tenantID, filename); err != nil {
			slog.Warn("document registry removal failed",
				"tenant_id", tenantID,
				"filename", filename,
				"error", err)
		}
	}

	return domain.DeletionResult{
		TenantID:      tenantID,
		Filename:      filename,
		ChunksDeleted: deleted,
	}
}

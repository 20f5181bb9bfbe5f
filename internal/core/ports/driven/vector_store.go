package driven

import (
	"context"

	"github.com/docintel-labs/docintel-core/internal/core/domain"
)

// VectorStore persists embedding records and performs tenant-scoped
// nearest-neighbour search under cosine similarity.
//
// Records are keyed by the deterministic ID from domain.EmbeddingRecordID,
// and Store has upsert semantics: a repeat write with the same ID replaces
// the prior record. Backends whose native write is insert-only must
// simulate this (delete-then-insert).
type VectorStore interface {
	// Store writes chunks and their vectors for a tenant.
	// Fails with domain.ErrInvalidInput when the lengths differ.
	Store(ctx context.Context, chunks []domain.Chunk, vectors [][]float32, tenantID string) error

	// Search returns at most topK records matching the tenant (and any
	// extra filters), ranked by ascending distance. No matches is an
	// empty slice, not an error.
	Search(ctx context.Context, vector []float32, topK int, tenantID string, filters domain.SearchFilters) ([]domain.RetrievedChunk, error)

	// Delete removes all records for the tenant, narrowed to filename when
	// non-empty. Implemented as resolve-matching-IDs then delete-by-ID to
	// tolerate backends with inconsistent filtered-delete support.
	// Returns the number of records removed; zero matches is (0, nil).
	Delete(ctx context.Context, tenantID, filename string) (int, error)

	// HealthCheck verifies the store is reachable
	HealthCheck(ctx context.Context) error
}

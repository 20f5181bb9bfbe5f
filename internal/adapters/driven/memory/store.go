// Package memory provides an in-process vector store using brute-force
// cosine similarity. It backs local development and tests; production
// deployments use the Qdrant adapter.
package memory

import (
	"context"
	"fmt"
	"math"
	"sort"
	"sync"

	"github.com/docintel-labs/docintel-core/internal/core/domain"
	"github.com/docintel-labs/docintel-core/internal/core/ports/driven"
)

// Verify interface compliance
var _ driven.VectorStore = (*Store)(nil)

type record struct {
	chunk  domain.Chunk
	vector []float32
}

// Store implements driven.VectorStore in memory.
// Records are keyed by their deterministic ID, so a repeat write with the
// same ID overwrites the prior record (upsert).
type Store struct {
	mu      sync.RWMutex
	records map[string]record
}

// NewStore creates an empty in-memory vector store.
func NewStore() *Store {
	return &Store{
		records: make(map[string]record),
	}
}

// Store writes chunks and their vectors for a tenant.
func (s *Store) Store(ctx context.Context, chunks []domain.Chunk, vectors [][]float32, tenantID string) error {
	if len(chunks) != len(vectors) {
		return fmt.Errorf("%w: %d chunks but %d vectors", domain.ErrInvalidInput, len(chunks), len(vectors))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i, chunk := range chunks {
		chunk.TenantID = tenantID
		s.records[chunk.RecordID()] = record{chunk: chunk, vector: vectors[i]}
	}
	return nil
}

// Search returns the topK closest records for the tenant by cosine distance.
func (s *Store) Search(ctx context.Context, vector []float32, topK int, tenantID string, filters domain.SearchFilters) ([]domain.RetrievedChunk, error) {
	if topK <= 0 {
		return nil, fmt.Errorf("%w: top_k must be positive", domain.ErrInvalidInput)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	type scored struct {
		id       string
		rec      record
		distance float64
	}

	var hits []scored
	for id, rec := range s.records {
		if rec.chunk.TenantID != tenantID {
			continue
		}
		if filters.Filename != "" && rec.chunk.Filename != filters.Filename {
			continue
		}
		hits = append(hits, scored{id: id, rec: rec, distance: cosineDistance(rec.vector, vector)})
	}

	sort.Slice(hits, func(i, j int) bool {
		if hits[i].distance != hits[j].distance {
			return hits[i].distance < hits[j].distance
		}
		return hits[i].id < hits[j].id
	})

	if len(hits) > topK {
		hits = hits[:topK]
	}

	results := make([]domain.RetrievedChunk, 0, len(hits))
	for _, h := range hits {
		d := h.distance
		results = append(results, domain.RetrievedChunk{
			ID:       h.id,
			Text:     h.rec.chunk.Text,
			Metadata: h.rec.chunk.ChunkMetadata,
			ChunkID:  h.rec.chunk.Index,
			Distance: &d,
		})
	}
	return results, nil
}

// Delete removes all records for the tenant, narrowed to filename when
// non-empty. Matching IDs are resolved first, then deleted.
func (s *Store) Delete(ctx context.Context, tenantID, filename string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var ids []string
	for id, rec := range s.records {
		if rec.chunk.TenantID != tenantID {
			continue
		}
		if filename != "" && rec.chunk.Filename != filename {
			continue
		}
		ids = append(ids, id)
	}

	for _, id := range ids {
		delete(s.records, id)
	}
	return len(ids), nil
}

// HealthCheck always succeeds for the in-memory store.
func (s *Store) HealthCheck(ctx context.Context) error {
	return nil
}

// Len returns the number of stored records. Intended for tests.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

func cosineDistance(a, b []float32) float64 {
	var dot, normA, normB float64
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 1
	}
	return 1 - dot/(math.Sqrt(normA)*math.Sqrt(normB))
}

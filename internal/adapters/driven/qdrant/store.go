// Package qdrant implements the vector store against Qdrant's REST API.
// It assumes cosine distance and creates the collection if missing.
package qdrant

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/docintel-labs/docintel-core/internal/core/domain"
	"github.com/docintel-labs/docintel-core/internal/core/ports/driven"
)

// Ensure Store implements VectorStore
var _ driven.VectorStore = (*Store)(nil)

// scrollPageSize bounds how many point IDs a single scroll page resolves
// during deletion.
const scrollPageSize = 256

// Store is a minimal REST client to Qdrant.
type Store struct {
	baseURL    string
	apiKey     string
	collection string
	client     *http.Client
}

// Config configures the Qdrant store
type Config struct {
	URL        string
	APIKey     string
	Collection string
	Timeout    time.Duration
}

// NewStore creates a Qdrant-backed vector store
func NewStore(cfg Config) *Store {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 15 * time.Second
	}
	collection := cfg.Collection
	if collection == "" {
		collection = "documents"
	}
	return &Store{
		baseURL:    cfg.URL,
		apiKey:     cfg.APIKey,
		collection: collection,
		client:     &http.Client{Timeout: timeout},
	}
}

// EnsureCollection creates the collection if missing.
// Qdrant returns 200 for an existing collection with the same schema.
func (s *Store) EnsureCollection(ctx context.Context, dimension int) error {
	if dimension <= 0 {
		return fmt.Errorf("%w: invalid dimension %d", domain.ErrInvalidInput, dimension)
	}
	body := map[string]any{
		"vectors": map[string]any{
			"size":     dimension,
			"distance": "Cosine",
		},
	}
	return s.doJSON(ctx, http.MethodPut, s.collectionURL(""), body, nil)
}

// Store upserts chunks and their vectors. Point IDs are the deterministic
// record UUIDs, so Qdrant's native upsert gives overwrite-on-reupload.
func (s *Store) Store(ctx context.Context, chunks []domain.Chunk, vectors [][]float32, tenantID string) error {
	if len(chunks) != len(vectors) {
		return fmt.Errorf("%w: %d chunks but %d vectors", domain.ErrInvalidInput, len(chunks), len(vectors))
	}
	if len(chunks) == 0 {
		return nil
	}

	points := make([]map[string]any, len(chunks))
	for i, chunk := range chunks {
		chunk.TenantID = tenantID
		points[i] = map[string]any{
			"id":     chunk.RecordID(),
			"vector": vectors[i],
			"payload": map[string]any{
				"text":         chunk.Text,
				"filename":     chunk.Filename,
				"tenant_id":    tenantID,
				"file_type":    chunk.FileType,
				"chunk_index":  chunk.Index,
				"start_offset": chunk.StartOffset,
				"end_offset":   chunk.EndOffset,
				"source_chars": chunk.SourceChars,
			},
		}
	}

	body := map[string]any{"points": points}
	return s.doJSON(ctx, http.MethodPut, s.collectionURL("/points?wait=true"), body, nil)
}

// searchResponse is Qdrant's points/search result envelope
type searchResponse struct {
	Result []struct {
		ID      any            `json:"id"`
		Score   float64        `json:"score"`
		Payload map[string]any `json:"payload"`
	} `json:"result"`
}

// Search returns the topK closest records for the tenant.
// Qdrant reports cosine similarity; distance = 1 - score.
func (s *Store) Search(ctx context.Context, vector []float32, topK int, tenantID string, filters domain.SearchFilters) ([]domain.RetrievedChunk, error) {
	if topK <= 0 {
		return nil, fmt.Errorf("%w: top_k must be positive", domain.ErrInvalidInput)
	}

	body := map[string]any{
		"vector":       vector,
		"limit":        topK,
		"with_payload": true,
		"filter":       s.tenantFilter(tenantID, filters.Filename),
	}

	var resp searchResponse
	if err := s.doJSON(ctx, http.MethodPost, s.collectionURL("/points/search"), body, &resp); err != nil {
		return nil, err
	}

	results := make([]domain.RetrievedChunk, 0, len(resp.Result))
	for _, r := range resp.Result {
		distance := 1 - r.Score
		rc := domain.RetrievedChunk{
			ID:       fmt.Sprintf("%v", r.ID),
			Distance: &distance,
		}
		if v, ok := r.Payload["text"].(string); ok {
			rc.Text = v
		}
		if v, ok := r.Payload["filename"].(string); ok {
			rc.Metadata.Filename = v
		}
		if v, ok := r.Payload["tenant_id"].(string); ok {
			rc.Metadata.TenantID = v
		}
		if v, ok := r.Payload["file_type"].(string); ok {
			rc.Metadata.FileType = v
		}
		if v, ok := r.Payload["source_chars"].(float64); ok {
			rc.Metadata.SourceChars = int(v)
		}
		if v, ok := r.Payload["chunk_index"].(float64); ok {
			rc.ChunkID = int(v)
		}
		results = append(results, rc)
	}
	return results, nil
}

// scrollResponse is Qdrant's points/scroll result envelope
type scrollResponse struct {
	Result struct {
		Points []struct {
			ID any `json:"id"`
		} `json:"points"`
		NextPageOffset any `json:"next_page_offset"`
	} `json:"result"`
}

// Delete removes the tenant's records, narrowed to filename when non-empty.
// Matching IDs are resolved via scroll, then deleted by ID; filtered
// deletes do not report counts, scroll-then-delete does.
func (s *Store) Delete(ctx context.Context, tenantID, filename string) (int, error) {
	filter := s.tenantFilter(tenantID, filename)

	var ids []any
	var offset any
	for {
		body := map[string]any{
			"filter":       filter,
			"limit":        scrollPageSize,
			"with_payload": false,
			"with_vector":  false,
		}
		if offset != nil {
			body["offset"] = offset
		}

		var resp scrollResponse
		if err := s.doJSON(ctx, http.MethodPost, s.collectionURL("/points/scroll"), body, &resp); err != nil {
			return 0, err
		}
		for _, p := range resp.Result.Points {
			ids = append(ids, p.ID)
		}
		if resp.Result.NextPageOffset == nil {
			break
		}
		offset = resp.Result.NextPageOffset
	}

	if len(ids) == 0 {
		return 0, nil
	}

	body := map[string]any{"points": ids}
	if err := s.doJSON(ctx, http.MethodPost, s.collectionURL("/points/delete?wait=true"), body, nil); err != nil {
		return 0, err
	}
	return len(ids), nil
}

// HealthCheck verifies the collection is reachable
func (s *Store) HealthCheck(ctx context.Context) error {
	return s.doJSON(ctx, http.MethodGet, s.collectionURL(""), nil, nil)
}

// tenantFilter builds the must-match filter scoping every read and delete
// to one tenant.
func (s *Store) tenantFilter(tenantID, filename string) map[string]any {
	must := []map[string]any{
		{"key": "tenant_id", "match": map[string]any{"value": tenantID}},
	}
	if filename != "" {
		must = append(must, map[string]any{
			"key": "filename", "match": map[string]any{"value": filename},
		})
	}
	return map[string]any{"must": must}
}

func (s *Store) collectionURL(suffix string) string {
	return fmt.Sprintf("%s/collections/%s%s", s.baseURL, s.collection, suffix)
}

// doJSON issues one JSON request and decodes the response into out when
// non-nil.
func (s *Store) doJSON(ctx context.Context, method, url string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if s.apiKey != "" {
		req.Header.Set("api-key", s.apiKey)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("qdrant %s %s failed: %s", method, url, resp.Status)
	}
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to parse response: %w", err)
		}
	}
	return nil
}

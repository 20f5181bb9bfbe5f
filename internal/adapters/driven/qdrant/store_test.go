package qdrant

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/docintel-labs/docintel-core/internal/core/domain"
)

func testChunk(tenant, filename string, index int, text string) domain.Chunk {
	return domain.Chunk{
		Text:  text,
		Index: index,
		ChunkMetadata: domain.ChunkMetadata{
			Filename: filename,
			TenantID: tenant,
			FileType: ".txt",
		},
	}
}

func TestStoreUpsertsDeterministicIDs(t *testing.T) {
	var gotPoints []map[string]any

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut || r.URL.Path != "/collections/documents/points" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		var body struct {
			Points []map[string]any `json:"points"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decode points: %v", err)
		}
		gotPoints = body.Points
		_, _ = w.Write([]byte(`{"result": {"status": "completed"}}`))
	}))
	defer server.Close()

	s := NewStore(Config{URL: server.URL})

	chunks := []domain.Chunk{
		testChunk("acme", "contract.txt", 0, "first chunk"),
		testChunk("acme", "contract.txt", 1, "second chunk"),
	}
	vectors := [][]float32{{0.1, 0.2}, {0.3, 0.4}}

	if err := s.Store(context.Background(), chunks, vectors, "acme"); err != nil {
		t.Fatalf("Store() error = %v", err)
	}

	if len(gotPoints) != 2 {
		t.Fatalf("sent %d points, want 2", len(gotPoints))
	}
	wantID := domain.EmbeddingRecordID("acme", "contract.txt", 0)
	if gotPoints[0]["id"] != wantID {
		t.Errorf("point id = %v, want deterministic record id %s", gotPoints[0]["id"], wantID)
	}
	payload := gotPoints[0]["payload"].(map[string]any)
	if payload["tenant_id"] != "acme" || payload["filename"] != "contract.txt" {
		t.Errorf("payload = %v", payload)
	}
}

func TestStoreLengthMismatch(t *testing.T) {
	s := NewStore(Config{URL: "http://unused"})

	err := s.Store(context.Background(), []domain.Chunk{testChunk("a", "f", 0, "x")}, nil, "a")
	if err == nil {
		t.Error("Store() with mismatched lengths should fail")
	}
}

func TestSearchConvertsScoreToDistance(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/collections/documents/points/search" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}

		var body struct {
			Limit  int            `json:"limit"`
			Filter map[string]any `json:"filter"`
		}
		_ = json.NewDecoder(r.Body).Decode(&body)
		if body.Limit != 8 {
			t.Errorf("limit = %d, want 8", body.Limit)
		}
		must := body.Filter["must"].([]any)
		first := must[0].(map[string]any)
		if first["key"] != "tenant_id" {
			t.Errorf("filter missing tenant_id match: %v", body.Filter)
		}

		_, _ = w.Write([]byte(`{
			"result": [
				{"id": "aaa", "score": 0.9, "payload": {"text": "hit one", "filename": "a.txt", "tenant_id": "acme", "chunk_index": 2}},
				{"id": "bbb", "score": 0.5, "payload": {"text": "hit two", "filename": "b.txt", "tenant_id": "acme", "chunk_index": 0}}
			]
		}`))
	}))
	defer server.Close()

	s := NewStore(Config{URL: server.URL})

	results, err := s.Search(context.Background(), []float32{0.1}, 8, "acme", domain.SearchFilters{})
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}

	if results[0].Text != "hit one" || results[0].ChunkID != 2 {
		t.Errorf("first result = %+v", results[0])
	}
	if results[0].Distance == nil || *results[0].Distance != 1-0.9 {
		t.Errorf("Distance = %v, want 1 - score", results[0].Distance)
	}
	if results[0].RelevanceScore() == nil || *results[0].RelevanceScore() != 0.9 {
		t.Errorf("RelevanceScore = %v, want score round-trip", results[0].RelevanceScore())
	}
}

func TestSearchFilenameFilter(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Filter map[string]any `json:"filter"`
		}
		_ = json.NewDecoder(r.Body).Decode(&body)
		must := body.Filter["must"].([]any)
		if len(must) != 2 {
			t.Errorf("filter must = %v, want tenant and filename clauses", must)
		}
		_, _ = w.Write([]byte(`{"result": []}`))
	}))
	defer server.Close()

	s := NewStore(Config{URL: server.URL})

	results, err := s.Search(context.Background(), []float32{0.1}, 5, "acme", domain.SearchFilters{Filename: "a.txt"})
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(results) != 0 {
		t.Errorf("got %d results, want 0", len(results))
	}
}

func TestDeleteScrollsThenDeletesByID(t *testing.T) {
	var deleted []any

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/collections/documents/points/scroll":
			var body struct {
				Offset any `json:"offset"`
			}
			_ = json.NewDecoder(r.Body).Decode(&body)
			if body.Offset == nil {
				// First page with a continuation offset.
				_, _ = w.Write([]byte(`{"result": {"points": [{"id": "p1"}, {"id": "p2"}], "next_page_offset": "p3"}}`))
			} else {
				_, _ = w.Write([]byte(`{"result": {"points": [{"id": "p3"}], "next_page_offset": null}}`))
			}
		case "/collections/documents/points/delete":
			var body struct {
				Points []any `json:"points"`
			}
			_ = json.NewDecoder(r.Body).Decode(&body)
			deleted = body.Points
			_, _ = w.Write([]byte(`{"result": {"status": "completed"}}`))
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))
	defer server.Close()

	s := NewStore(Config{URL: server.URL})

	count, err := s.Delete(context.Background(), "acme", "contract.txt")
	if err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if count != 3 {
		t.Errorf("Delete() = %d, want 3", count)
	}
	if len(deleted) != 3 {
		t.Errorf("deleted %v, want all three scrolled IDs", deleted)
	}
}

func TestDeleteZeroMatches(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"result": {"points": [], "next_page_offset": null}}`))
	}))
	defer server.Close()

	s := NewStore(Config{URL: server.URL})

	count, err := s.Delete(context.Background(), "acme", "missing.txt")
	if err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if count != 0 {
		t.Errorf("Delete() = %d, want 0", count)
	}
}

func TestEnsureCollection(t *testing.T) {
	var created map[string]any

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut || r.URL.Path != "/collections/documents" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		_ = json.NewDecoder(r.Body).Decode(&created)
		_, _ = w.Write([]byte(`{"result": true}`))
	}))
	defer server.Close()

	s := NewStore(Config{URL: server.URL})

	if err := s.EnsureCollection(context.Background(), 384); err != nil {
		t.Fatalf("EnsureCollection() error = %v", err)
	}
	vectors := created["vectors"].(map[string]any)
	if vectors["distance"] != "Cosine" || vectors["size"] != float64(384) {
		t.Errorf("collection schema = %v", created)
	}

	if err := s.EnsureCollection(context.Background(), 0); err == nil {
		t.Error("EnsureCollection(0) should fail")
	}
}

func TestServerErrorSurfaces(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	s := NewStore(Config{URL: server.URL})

	if _, err := s.Search(context.Background(), []float32{0.1}, 5, "acme", domain.SearchFilters{}); err == nil {
		t.Error("Search() should surface server errors")
	}
	if err := s.HealthCheck(context.Background()); err == nil {
		t.Error("HealthCheck() should surface server errors")
	}
}

package mocks

import (
	"context"
	"hash/fnv"
)

// MockEmbedder is a mock implementation of Embedder for testing
type MockEmbedder struct {
	dimensions int
	model      string
	failNext   bool

	EmbedCalls      [][]string
	EmbedQueryCalls []string
}

// NewMockEmbedder creates a new MockEmbedder
func NewMockEmbedder() *MockEmbedder {
	return &MockEmbedder{
		dimensions: 384,
		model:      "mock-embedding-model",
	}
}

func (m *MockEmbedder) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	if m.failNext {
		m.failNext = false
		return nil, context.DeadlineExceeded
	}

	m.EmbedCalls = append(m.EmbedCalls, texts)
	result := make([][]float32, len(texts))
	for i, text := range texts {
		result[i] = m.generateEmbedding(text)
	}
	return result, nil
}

func (m *MockEmbedder) EmbedQuery(ctx context.Context, query string) ([]float32, error) {
	if m.failNext {
		m.failNext = false
		return nil, context.DeadlineExceeded
	}
	m.EmbedQueryCalls = append(m.EmbedQueryCalls, query)
	return m.generateEmbedding(query), nil
}

func (m *MockEmbedder) Dimensions() int {
	return m.dimensions
}

func (m *MockEmbedder) Model() string {
	return m.model
}

func (m *MockEmbedder) HealthCheck(ctx context.Context) error {
	return nil
}

func (m *MockEmbedder) Close() error {
	return nil
}

// generateEmbedding generates a deterministic embedding based on text hash
func (m *MockEmbedder) generateEmbedding(text string) []float32 {
	h := fnv.New32a()
	h.Write([]byte(text))
	seed := h.Sum32()

	embedding := make([]float32, m.dimensions)
	for i := range embedding {
		// Generate deterministic pseudo-random values
		seed = seed*1103515245 + 12345
		embedding[i] = float32(seed%1000) / 1000.0
	}
	return embedding
}

// Helper methods for testing

func (m *MockEmbedder) SetFailNext(fail bool) {
	m.failNext = fail
}

func (m *MockEmbedder) SetDimensions(dim int) {
	m.dimensions = dim
}

package ai

import (
	"context"
	"hash/fnv"
	"math"

	"github.com/docintel-labs/docintel-core/internal/core/ports/driven"
)

// Ensure LocalEmbedding implements Embedder
var _ driven.Embedder = (*LocalEmbedding)(nil)

// LocalEmbedding is a keyless, offline embedder. Vectors are derived from
// hashed character trigrams and L2-normalised, so similar texts land near
// each other. Good enough for development and demos; not for production
// retrieval quality.
type LocalEmbedding struct {
	dimensions int
}

// NewLocalEmbedding creates a local hashing embedder
func NewLocalEmbedding(dimensions int) *LocalEmbedding {
	if dimensions <= 0 {
		dimensions = 384
	}
	return &LocalEmbedding{dimensions: dimensions}
}

// Embed generates embeddings for multiple texts
func (e *LocalEmbedding) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	result := make([][]float32, len(texts))
	for i, text := range texts {
		result[i] = e.embed(text)
	}
	return result, nil
}

// EmbedQuery generates an embedding for a search query
func (e *LocalEmbedding) EmbedQuery(ctx context.Context, query string) ([]float32, error) {
	return e.embed(query), nil
}

// Dimensions returns the embedding dimension size
func (e *LocalEmbedding) Dimensions() int {
	return e.dimensions
}

// Model returns the model name being used
func (e *LocalEmbedding) Model() string {
	return "local-trigram-hash"
}

// HealthCheck always succeeds for the local embedder
func (e *LocalEmbedding) HealthCheck(ctx context.Context) error {
	return nil
}

// Close releases resources held by the embedder
func (e *LocalEmbedding) Close() error {
	return nil
}

// embed hashes each character trigram into a bucket and normalises the
// resulting histogram.
func (e *LocalEmbedding) embed(text string) []float32 {
	vec := make([]float32, e.dimensions)
	runes := []rune(text)
	if len(runes) < 3 {
		runes = append(runes, ' ', ' ')
	}
	for i := 0; i+3 <= len(runes); i++ {
		h := fnv.New32a()
		h.Write([]byte(string(runes[i : i+3])))
		vec[h.Sum32()%uint32(e.dimensions)]++
	}

	var norm float64
	for _, v := range vec {
		norm += float64(v) * float64(v)
	}
	if norm > 0 {
		scale := float32(1 / math.Sqrt(norm))
		for i := range vec {
			vec[i] *= scale
		}
	}
	return vec
}

package driven

import (
	"context"
)

// Embedder maps text to fixed-length vectors via an external encoder.
type Embedder interface {
	// Embed generates embeddings for multiple texts, preserving order.
	Embed(ctx context.Context, texts []string) ([][]float32, error)

	// EmbedQuery generates an embedding for a search query.
	// May use different model/parameters optimized for queries.
	EmbedQuery(ctx context.Context, query string) ([]float32, error)

	// Dimensions returns the embedding dimension size
	Dimensions() int

	// Model returns the model name being used
	Model() string

	// HealthCheck verifies the encoder is available
	HealthCheck(ctx context.Context) error

	// Close releases resources held by the embedder
	Close() error
}

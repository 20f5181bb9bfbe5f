package driven

import (
	"context"

	"github.com/docintel-labs/docintel-core/internal/core/domain"
)

// Generator sends a rendered prompt to an external completion service.
type Generator interface {
	// Generate returns the completion text for a prompt within the given
	// temperature/token budget. Implementations may try an ordered list of
	// backend models, surfacing the last error only when all are exhausted.
	Generate(ctx context.Context, prompt string, opts domain.GenerateOptions) (string, error)

	// Model returns the (primary) model name being used
	Model() string

	// Ping verifies the completion service is available
	Ping(ctx context.Context) error

	// Close releases resources held by the generator
	Close() error
}

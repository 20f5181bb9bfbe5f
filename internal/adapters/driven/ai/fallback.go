package ai

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/docintel-labs/docintel-core/internal/core/domain"
	"github.com/docintel-labs/docintel-core/internal/core/ports/driven"
)

// Ensure FallbackGenerator implements Generator
var _ driven.Generator = (*FallbackGenerator)(nil)

// FallbackGenerator chains generators: each Generate call tries them in
// order and returns the first success. Used to back the Groq primary with
// Gemini when both keys are configured.
type FallbackGenerator struct {
	generators []driven.Generator
}

// NewFallbackGenerator creates a generator chain. At least one generator
// is required; nil entries are skipped.
func NewFallbackGenerator(generators ...driven.Generator) (driven.Generator, error) {
	var chain []driven.Generator
	for _, g := range generators {
		if g != nil {
			chain = append(chain, g)
		}
	}
	if len(chain) == 0 {
		return nil, fmt.Errorf("at least one generator is required")
	}
	if len(chain) == 1 {
		return chain[0], nil
	}
	return &FallbackGenerator{generators: chain}, nil
}

// Generate tries each generator in order, surfacing the last error only
// when all are exhausted.
func (f *FallbackGenerator) Generate(ctx context.Context, prompt string, opts domain.GenerateOptions) (string, error) {
	var lastErr error
	for _, g := range f.generators {
		text, err := g.Generate(ctx, prompt, opts)
		if err == nil {
			return text, nil
		}
		lastErr = err
		slog.Warn("generator failed, trying fallback", "model", g.Model(), "error", err)
	}
	return "", fmt.Errorf("all generators failed: %w", lastErr)
}

// Model returns the primary generator's model name
func (f *FallbackGenerator) Model() string {
	return f.generators[0].Model()
}

// Ping succeeds when any generator in the chain is reachable
func (f *FallbackGenerator) Ping(ctx context.Context) error {
	var lastErr error
	for _, g := range f.generators {
		if err := g.Ping(ctx); err == nil {
			return nil
		} else {
			lastErr = err
		}
	}
	return lastErr
}

// Close closes every generator in the chain
func (f *FallbackGenerator) Close() error {
	var firstErr error
	for _, g := range f.generators {
		if err := g.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

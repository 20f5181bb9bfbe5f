// Package runtime owns the process-wide AI service instances. The embedder
// and generator are constructed once by the composition root and shared
// read-only across requests; access is guarded so a future reconfiguration
// path stays safe.
package runtime

import (
	"context"
	"sync"

	"github.com/docintel-labs/docintel-core/internal/core/ports/driven"
)

// Services holds the shared embedder and generator.
// Thread-safe for concurrent access.
type Services struct {
	mu sync.RWMutex

	embedder  driven.Embedder
	generator driven.Generator
}

// NewServices creates an empty Services registry.
func NewServices() *Services {
	return &Services{}
}

// Embedder returns the current embedder (may be nil).
func (s *Services) Embedder() driven.Embedder {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.embedder
}

// Generator returns the current generator (may be nil).
func (s *Services) Generator() driven.Generator {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.generator
}

// SetEmbedder replaces the embedder, closing the previous one.
func (s *Services) SetEmbedder(e driven.Embedder) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.embedder != nil {
		_ = s.embedder.Close()
	}
	s.embedder = e
}

// SetGenerator replaces the generator, closing the previous one.
func (s *Services) SetGenerator(g driven.Generator) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.generator != nil {
		_ = s.generator.Close()
	}
	s.generator = g
}

// ValidateAndSetEmbedder verifies connectivity before installing the embedder.
func (s *Services) ValidateAndSetEmbedder(ctx context.Context, e driven.Embedder) error {
	if e == nil {
		s.SetEmbedder(nil)
		return nil
	}

	if err := e.HealthCheck(ctx); err != nil {
		_ = e.Close()
		return err
	}

	s.SetEmbedder(e)
	return nil
}

// ValidateAndSetGenerator verifies connectivity before installing the generator.
func (s *Services) ValidateAndSetGenerator(ctx context.Context, g driven.Generator) error {
	if g == nil {
		s.SetGenerator(nil)
		return nil
	}

	if err := g.Ping(ctx); err != nil {
		_ = g.Close()
		return err
	}

	s.SetGenerator(g)
	return nil
}

// Close shuts down all services.
func (s *Services) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.embedder != nil {
		_ = s.embedder.Close()
		s.embedder = nil
	}
	if s.generator != nil {
		_ = s.generator.Close()
		s.generator = nil
	}
	return nil
}

// Package extract converts uploaded files into plain text. Extractors are
// looked up by file extension; additional formats plug in through the same
// registry.
package extract

import (
	"sort"
	"strings"
	"sync"

	"github.com/docintel-labs/docintel-core/internal/core/ports/driven"
)

// Verify interface compliance
var _ driven.ExtractorRegistry = (*Registry)(nil)

// Registry implements ExtractorRegistry. Later registrations win for an
// extension, so callers can override the defaults.
type Registry struct {
	mu         sync.RWMutex
	extractors map[string]driven.Extractor
}

// NewRegistry creates an empty extractor registry.
func NewRegistry() *Registry {
	return &Registry{
		extractors: make(map[string]driven.Extractor),
	}
}

// DefaultRegistry returns a registry with the built-in extractors.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(NewPlainText())
	r.Register(NewDOCX())
	r.Register(NewPDF())
	return r
}

// Register registers an extractor for each of its supported extensions.
func (r *Registry) Register(e driven.Extractor) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, ext := range e.SupportedTypes() {
		r.extractors[normalizeExt(ext)] = e
	}
}

// Get retrieves the extractor for an extension.
// Returns nil if none is registered.
func (r *Registry) Get(ext string) driven.Extractor {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.extractors[normalizeExt(ext)]
}

// List returns all registered extensions, sorted.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	exts := make([]string, 0, len(r.extractors))
	for ext := range r.extractors {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}

func normalizeExt(ext string) string {
	ext = strings.ToLower(strings.TrimSpace(ext))
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}

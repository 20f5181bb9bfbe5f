package mocks

import (
	"context"
	"sync"

	"github.com/docintel-labs/docintel-core/internal/core/domain"
)

// MockDocumentRegistry is an in-memory DocumentRegistry for testing
type MockDocumentRegistry struct {
	mu   sync.Mutex
	docs map[string][]*domain.Document // tenant -> documents
}

// NewMockDocumentRegistry creates a new MockDocumentRegistry
func NewMockDocumentRegistry() *MockDocumentRegistry {
	return &MockDocumentRegistry{
		docs: make(map[string][]*domain.Document),
	}
}

func (m *MockDocumentRegistry) Record(ctx context.Context, doc *domain.Document) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	existing := m.docs[doc.TenantID]
	for i, d := range existing {
		if d.Filename == doc.Filename {
			existing[i] = doc
			return nil
		}
	}
	m.docs[doc.TenantID] = append(existing, doc)
	return nil
}

func (m *MockDocumentRegistry) List(ctx context.Context, tenantID string) ([]*domain.Document, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]*domain.Document(nil), m.docs[tenantID]...), nil
}

func (m *MockDocumentRegistry) Remove(ctx context.Context, tenantID, filename string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if filename == "" {
		delete(m.docs, tenantID)
		return nil
	}

	kept := m.docs[tenantID][:0]
	for _, d := range m.docs[tenantID] {
		if d.Filename != filename {
			kept = append(kept, d)
		}
	}
	m.docs[tenantID] = kept
	return nil
}

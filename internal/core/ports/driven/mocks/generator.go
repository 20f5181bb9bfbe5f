package mocks

import (
	"context"
	"errors"

	"github.com/docintel-labs/docintel-core/internal/core/domain"
)

// MockGenerator is a mock implementation of Generator for testing
type MockGenerator struct {
	// Response is returned verbatim; when empty, the prompt is echoed back
	Response string
	failNext bool

	Prompts []string
	Options []domain.GenerateOptions
}

// NewMockGenerator creates a new MockGenerator
func NewMockGenerator() *MockGenerator {
	return &MockGenerator{}
}

func (m *MockGenerator) Generate(ctx context.Context, prompt string, opts domain.GenerateOptions) (string, error) {
	if m.failNext {
		m.failNext = false
		return "", errors.New("generation failed")
	}

	m.Prompts = append(m.Prompts, prompt)
	m.Options = append(m.Options, opts)

	if m.Response != "" {
		return m.Response, nil
	}
	return "generated: " + prompt, nil
}

func (m *MockGenerator) Model() string {
	return "mock-completion-model"
}

func (m *MockGenerator) Ping(ctx context.Context) error {
	return nil
}

func (m *MockGenerator) Close() error {
	return nil
}

// SetFailNext makes the next Generate call fail
func (m *MockGenerator) SetFailNext(fail bool) {
	m.failNext = fail
}

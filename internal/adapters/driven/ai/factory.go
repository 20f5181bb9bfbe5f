package ai

import (
	"fmt"

	"github.com/docintel-labs/docintel-core/internal/core/domain"
	"github.com/docintel-labs/docintel-core/internal/core/ports/driven"
)

// Provider names accepted by the factory
const (
	ProviderOpenAI = "openai"
	ProviderLocal  = "local"
	ProviderGroq   = "groq"
	ProviderGemini = "gemini"
)

// Ensure Factory implements AIServiceFactory
var _ driven.AIServiceFactory = (*Factory)(nil)

// Factory creates AI services based on configuration
type Factory struct{}

// NewFactory creates a new AI service factory
func NewFactory() *Factory {
	return &Factory{}
}

// CreateEmbedder creates an embedder for a provider name.
// Returns nil, nil when the provider is unset.
func (f *Factory) CreateEmbedder(provider, apiKey, model, baseURL string) (driven.Embedder, error) {
	switch provider {
	case "":
		return nil, nil
	case ProviderOpenAI:
		return NewOpenAIEmbedding(apiKey, model, baseURL)
	case ProviderLocal:
		return NewLocalEmbedding(0), nil
	default:
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidProvider, provider)
	}
}

// CreateGenerator creates a generator for a provider name.
// Returns nil, nil when the provider is unset.
func (f *Factory) CreateGenerator(provider, apiKey, model string) (driven.Generator, error) {
	switch provider {
	case "":
		return nil, nil
	case ProviderGroq:
		return NewGroqGenerator(apiKey, model, "")
	case ProviderGemini:
		return NewGeminiGenerator(apiKey, model, "")
	default:
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidProvider, provider)
	}
}

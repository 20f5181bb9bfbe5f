package driven

// AIServiceFactory creates AI services based on configuration
type AIServiceFactory interface {
	// CreateEmbedder creates an embedder for a provider name.
	// Returns nil, nil when the provider is unset.
	CreateEmbedder(provider, apiKey, model, baseURL string) (Embedder, error)

	// CreateGenerator creates a generator for a provider name.
	// Returns nil, nil when the provider is unset.
	CreateGenerator(provider, apiKey, model string) (Generator, error)
}

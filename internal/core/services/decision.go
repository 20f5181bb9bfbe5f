package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/docintel-labs/docintel-core/internal/core/domain"
	"github.com/docintel-labs/docintel-core/internal/core/ports/driven"
	"github.com/docintel-labs/docintel-core/internal/core/ports/driving"
	"github.com/docintel-labs/docintel-core/internal/prompt"
	"github.com/docintel-labs/docintel-core/internal/runtime"
)

const noDecisionContextMessage = "No relevant information found in documents."

// Ensure decisionService implements DecisionService
var _ driving.DecisionService = (*decisionService)(nil)

// decisionService runs the closed analytical templates over retrieval.
// Decision modes always use the wide retrieval window and cool sampling;
// structured extraction degrades fast with creative generation.
type decisionService struct {
	store    driven.VectorStore
	services *runtime.Services // Dynamic AI services

	topK int
}

// NewDecisionService creates a new DecisionService.
// A non-positive topK falls back to the complex-question default.
func NewDecisionService(store driven.VectorStore, services *runtime.Services, topK int) driving.DecisionService {
	if topK <= 0 {
		topK = defaultTopKComplex
	}
	return &decisionService{
		store:    store,
		services: services,
		topK:     topK,
	}
}

// Decide runs one of the closed decision modes against a tenant's documents.
func (s *decisionService) Decide(ctx context.Context, query string, mode domain.DecisionMode, tenantID string) (*domain.DecisionResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("%w: query must not be empty", domain.ErrInvalidInput)
	}
	if tenantID == "" {
		tenantID = domain.DefaultTenant
	}

	embedder := s.services.Embedder()
	if embedder == nil {
		return nil, fmt.Errorf("%w: no embedder configured", domain.ErrServiceUnavailable)
	}

	vector, err := embedder.EmbedQuery(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}

	chunks, err := s.store.Search(ctx, vector, s.topK, tenantID, domain.SearchFilters{})
	if err != nil {
		return nil, fmt.Errorf("vector search: %w", err)
	}

	if len(chunks) == 0 {
		return &domain.DecisionResult{
			Mode:   mode,
			Result: noDecisionContextMessage,
			Metadata: map[string]any{
				"chunks_analyzed": 0,
			},
		}, nil
	}

	generator := s.services.Generator()
	if generator == nil {
		return nil, fmt.Errorf("%w: no generator configured", domain.ErrServiceUnavailable)
	}

	promptText, err := prompt.ComposeDecision(mode, query, decisionContext(chunks))
	if err != nil {
		return nil, err
	}

	result, err := generator.Generate(ctx, promptText, domain.GenerateOptions{
		Temperature: 0.2,
		MaxTokens:   2000,
	})
	if err != nil {
		return nil, fmt.Errorf("generate decision: %w", err)
	}

	return &domain.DecisionResult{
		Mode:   mode,
		Result: result,
		StructuredData: &domain.DecisionData{
			Sources:        sourceFilenames(chunks),
			ChunksAnalyzed: len(chunks),
		},
		Metadata: map[string]any{
			"chunks_analyzed": len(chunks),
			"model":           generator.Model(),
		},
	}, nil
}

// decisionContext labels each chunk with its source file. Decision
// templates carry their own structure, so no per-source numbering here.
func decisionContext(chunks []domain.RetrievedChunk) string {
	parts := make([]string, len(chunks))
	for i, rc := range chunks {
		parts[i] = fmt.Sprintf("[%s]\n%s", rc.Metadata.Filename, rc.Text)
	}
	return strings.Join(parts, "\n\n")
}

// sourceFilenames dedupes chunk filenames preserving first-seen order.
func sourceFilenames(chunks []domain.RetrievedChunk) []string {
	seen := make(map[string]bool)
	var names []string
	for _, rc := range chunks {
		if seen[rc.Metadata.Filename] {
			continue
		}
		seen[rc.Metadata.Filename] = true
		names = append(names, rc.Metadata.Filename)
	}
	return names
}

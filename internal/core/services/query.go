package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/docintel-labs/docintel-core/internal/core/domain"
	"github.com/docintel-labs/docintel-core/internal/core/ports/driven"
	"github.com/docintel-labs/docintel-core/internal/core/ports/driving"
	"github.com/docintel-labs/docintel-core/internal/nlp"
	"github.com/docintel-labs/docintel-core/internal/prompt"
	"github.com/docintel-labs/docintel-core/internal/runtime"
)

// Retrieval widths. Complex questions get a wider window.
const (
	defaultTopK        = 8
	defaultTopKComplex = 12
)

// noResultsMessage is returned when nothing matches and no generator is
// available for the general-knowledge fallback.
const noResultsMessage = "I couldn't find any relevant information in the uploaded documents."

const previewLength = 200

// Ensure queryService implements QueryService
var _ driving.QueryService = (*queryService)(nil)

// queryService implements the RAG read path: analyze the question, retrieve
// matching chunks, compose a prompt and synthesize a cited answer.
type queryService struct {
	store    driven.VectorStore
	cache    driven.AnswerCache // optional
	services *runtime.Services  // Dynamic AI services

	topK        int
	topKComplex int
}

// NewQueryService creates a new QueryService.
// cache may be nil when answer caching is not configured. Non-positive
// widths fall back to the defaults.
func NewQueryService(
	store driven.VectorStore,
	cache driven.AnswerCache,
	services *runtime.Services,
	topK, topKComplex int,
) driving.QueryService {
	if topK <= 0 {
		topK = defaultTopK
	}
	if topKComplex <= 0 {
		topKComplex = defaultTopKComplex
	}
	return &queryService{
		store:       store,
		cache:       cache,
		services:    services,
		topK:        topK,
		topKComplex: topKComplex,
	}
}

// Answer retrieves relevant chunks and synthesizes a cited answer.
func (s *queryService) Answer(ctx context.Context, question, tenantID string) (*domain.Answer, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return nil, fmt.Errorf("%w: question must not be empty", domain.ErrInvalidInput)
	}
	if tenantID == "" {
		tenantID = domain.DefaultTenant
	}

	analysis := nlp.Analyze(question)

	topK := s.topK
	if analysis.IsComplex() {
		topK = s.topKComplex
	}

	if s.cache != nil {
		cached, err := s.cache.Get(ctx, tenantID, question)
		if err == nil {
			return cached, nil
		}
		if !errors.Is(err, domain.ErrNotFound) {
			slog.Warn("answer cache read failed", "tenant_id", tenantID, "error", err)
		}
	}

	chunks, err := s.retrieve(ctx, question, topK, tenantID)
	if err != nil {
		return nil, err
	}

	if len(chunks) == 0 {
		return s.answerWithoutDocuments(ctx, question, tenantID, analysis)
	}

	generator := s.services.Generator()
	if generator == nil {
		return nil, fmt.Errorf("%w: no generator configured", domain.ErrServiceUnavailable)
	}

	contextBlock, sources := buildContext(chunks)
	promptText := prompt.Compose(question, contextBlock, analysis)

	answerText, err := generator.Generate(ctx, promptText, generateOptions(analysis))
	if err != nil {
		return nil, fmt.Errorf("generate answer: %w", err)
	}

	answer := &domain.Answer{
		Answer:  answerText,
		Sources: sources,
		Metadata: domain.AnswerMetadata{
			ChunksRetrieved: len(chunks),
			Question:        question,
			QueryAnalysis:   &analysis,
		},
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, tenantID, question, answer); err != nil {
			slog.Warn("answer cache write failed", "tenant_id", tenantID, "error", err)
		}
	}
	return answer, nil
}

// retrieve embeds the question and its expansion variants, searches each,
// and merges results by record ID keeping the best distance per record.
func (s *queryService) retrieve(ctx context.Context, question string, topK int, tenantID string) ([]domain.RetrievedChunk, error) {
	embedder := s.services.Embedder()
	if embedder == nil {
		return nil, fmt.Errorf("%w: no embedder configured", domain.ErrServiceUnavailable)
	}

	best := make(map[string]domain.RetrievedChunk)
	var order []string

	for _, variant := range nlp.Expand(question) {
		vector, err := embedder.EmbedQuery(ctx, variant)
		if err != nil {
			return nil, fmt.Errorf("embed query: %w", err)
		}

		results, err := s.store.Search(ctx, vector, topK, tenantID, domain.SearchFilters{})
		if err != nil {
			return nil, fmt.Errorf("vector search: %w", err)
		}

		for _, rc := range results {
			prev, seen := best[rc.ID]
			if !seen {
				best[rc.ID] = rc
				order = append(order, rc.ID)
				continue
			}
			if closerThan(rc.Distance, prev.Distance) {
				best[rc.ID] = rc
			}
		}
	}

	merged := make([]domain.RetrievedChunk, 0, len(order))
	for _, id := range order {
		merged = append(merged, best[id])
	}
	sort.SliceStable(merged, func(i, j int) bool {
		return closerThan(merged[i].Distance, merged[j].Distance)
	})
	if len(merged) > topK {
		merged = merged[:topK]
	}
	return merged, nil
}

// closerThan orders distances ascending, ranking unknown distances last.
func closerThan(a, b *float64) bool {
	if a == nil {
		return false
	}
	if b == nil {
		return true
	}
	return *a < *b
}

// answerWithoutDocuments handles the empty-retrieval case. Questions that
// need explanation and carry key terms are answered from general knowledge
// with an explicit caveat; everything else gets a fixed message. Never
// cached.
func (s *queryService) answerWithoutDocuments(ctx context.Context, question, tenantID string, analysis domain.QueryAnalysis) (*domain.Answer, error) {
	answer := &domain.Answer{
		Answer:  noResultsMessage,
		Sources: []domain.Source{},
		Metadata: domain.AnswerMetadata{
			ChunksRetrieved: 0,
			Question:        question,
			QueryAnalysis:   &analysis,
		},
	}

	if !analysis.NeedsExplanation || len(analysis.KeyTerms) == 0 {
		return answer, nil
	}

	generator := s.services.Generator()
	if generator == nil {
		return answer, nil
	}

	text, err := generator.Generate(ctx, prompt.ComposeFallback(question, analysis.KeyTerms), domain.GenerateOptions{
		Temperature: 0.3,
		MaxTokens:   1500,
	})
	if err != nil {
		slog.Warn("fallback generation failed", "tenant_id", tenantID, "error", err)
		return answer, nil
	}
	answer.Answer = text
	return answer, nil
}

// buildContext renders retrieved chunks grouped by source document with a
// global source numbering, and returns the matching citation entries.
func buildContext(chunks []domain.RetrievedChunk) (string, []domain.Source) {
	grouped := make(map[string][]domain.RetrievedChunk)
	var filenames []string
	for _, rc := range chunks {
		name := rc.Metadata.Filename
		if _, seen := grouped[name]; !seen {
			filenames = append(filenames, name)
		}
		grouped[name] = append(grouped[name], rc)
	}

	var b strings.Builder
	sources := make([]domain.Source, 0, len(chunks))
	sourceID := 0
	for _, name := range filenames {
		fmt.Fprintf(&b, "=== Document: %s ===\n", name)
		for _, rc := range grouped[name] {
			sourceID++
			fmt.Fprintf(&b, "[Source %d - %s]\n%s\n\n", sourceID, name, rc.Text)
			sources = append(sources, domain.Source{
				SourceID:       sourceID,
				Filename:       name,
				ChunkID:        rc.ChunkID,
				TextPreview:    preview(rc.Text),
				RelevanceScore: rc.RelevanceScore(),
			})
		}
	}
	return strings.TrimRight(b.String(), "\n"), sources
}

func preview(text string) string {
	if len(text) <= previewLength {
		return text
	}
	return text[:previewLength] + "..."
}

// generateOptions maps the query analysis onto sampling bounds. Complex
// questions run cooler with a larger budget; simple questions from
// beginners run slightly warmer for a friendlier register.
func generateOptions(analysis domain.QueryAnalysis) domain.GenerateOptions {
	opts := domain.GenerateOptions{Temperature: 0.3, MaxTokens: 1500}

	complex := analysis.IsComplex()
	switch {
	case complex:
		opts.Temperature = 0.2
	case analysis.UserLevel == domain.LevelBeginner:
		opts.Temperature = 0.4
	}

	switch {
	case analysis.NeedsExplanation:
		opts.MaxTokens = 2500
	case complex:
		opts.MaxTokens = 2000
	}
	return opts
}

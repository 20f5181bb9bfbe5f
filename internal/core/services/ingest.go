package services

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/docintel-labs/docintel-core/internal/chunker"
	"github.com/docintel-labs/docintel-core/internal/cleanup"
	"github.com/docintel-labs/docintel-core/internal/core/domain"
	"github.com/docintel-labs/docintel-core/internal/core/ports/driven"
	"github.com/docintel-labs/docintel-core/internal/core/ports/driving"
	"github.com/docintel-labs/docintel-core/internal/runtime"
)

// Ensure ingestService implements IngestService
var _ driving.IngestService = (*ingestService)(nil)

// ingestService implements the document write path:
// extract text, chunk it, embed the chunks, store the records.
type ingestService struct {
	extractors driven.ExtractorRegistry
	cleanup    *cleanup.Pipeline
	chunker    *chunker.Chunker
	store      driven.VectorStore
	registry   driven.DocumentRegistry // optional
	services   *runtime.Services       // Dynamic AI services
}

// NewIngestService creates a new IngestService.
// The embedder is accessed dynamically via runtime.Services so it can be
// reconfigured without restarting. registry may be nil when no document
// registry is configured.
func NewIngestService(
	extractors driven.ExtractorRegistry,
	chk *chunker.Chunker,
	store driven.VectorStore,
	registry driven.DocumentRegistry,
	services *runtime.Services,
) driving.IngestService {
	return &ingestService{
		extractors: extractors,
		cleanup:    cleanup.DefaultPipeline(),
		chunker:    chk,
		store:      store,
		registry:   registry,
		services:   services,
	}
}

// Ingest processes an uploaded document end to end.
func (s *ingestService) Ingest(ctx context.Context, req driving.IngestRequest) (*domain.IngestResult, error) {
	tenantID := req.TenantID
	if tenantID == "" {
		tenantID = domain.DefaultTenant
	}

	ext := strings.ToLower(filepath.Ext(req.Filename))
	extractor := s.extractors.Get(ext)
	if extractor == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedFileType, ext)
	}

	text, err := extractor.Extract(req.Path)
	if err != nil {
		return nil, fmt.Errorf("extract %s: %w", req.Filename, err)
	}
	// Cleanup runs before the empty check so a document of pure control
	// characters is rejected like any other empty one.
	text = s.cleanup.Process(text)
	if text == "" {
		return nil, fmt.Errorf("%w: %s", domain.ErrEmptyDocument, req.Filename)
	}

	chunks := s.chunker.Chunk(text, domain.ChunkMetadata{
		Filename: req.Filename,
		TenantID: tenantID,
		FileType: ext,
	})

	embedder := s.services.Embedder()
	if embedder == nil {
		return nil, fmt.Errorf("%w: no embedder configured", domain.ErrServiceUnavailable)
	}

	texts := make([]string, len(chunks))
	for i, c := range chunks {
		texts[i] = c.Text
	}
	vectors, err := embedder.Embed(ctx, texts)
	if err != nil {
		return nil, fmt.Errorf("embed %s: %w", req.Filename, err)
	}

	if err := s.store.Store(ctx, chunks, vectors, tenantID); err != nil {
		return nil, fmt.Errorf("store %s: %w", req.Filename, err)
	}

	// The vector store is the source of truth; registry bookkeeping
	// failure does not undo a successful ingest.
	if s.registry != nil {
		doc := &domain.Document{
			TenantID:    tenantID,
			Filename:    req.Filename,
			FileType:    ext,
			ChunkCount:  len(chunks),
			SourceChars: len(text),
			UploadedAt:  time.Now().UTC(),
		}
		if err := s.registry.Record(ctx, doc); err != nil {
			slog.Warn("document registry record failed",
				"tenant_id", tenantID,
				"filename", req.Filename,
				"error", err)
		}
	}

	return &domain.IngestResult{
		Filename:      req.Filename,
		ChunksCreated: len(chunks),
		TenantID:      tenantID,
	}, nil
}

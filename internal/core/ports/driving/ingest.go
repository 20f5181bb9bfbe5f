package driving

import (
	"context"

	"github.com/docintel-labs/docintel-core/internal/core/domain"
)

// IngestRequest describes an uploaded file to process.
type IngestRequest struct {
	// Path is the location of the temporary upload on disk
	Path string

	// Filename is the original client-supplied name
	Filename string

	// Size is the upload size in bytes
	Size int64

	// TenantID scopes the resulting chunks
	TenantID string
}

// IngestService runs the write path: extract, chunk, embed, store.
type IngestService interface {
	// Ingest processes an uploaded document end to end
	Ingest(ctx context.Context, req IngestRequest) (*domain.IngestResult, error)
}

package postgres

import (
	"context"

	"github.com/docintel-labs/docintel-core/internal/core/domain"
	"github.com/docintel-labs/docintel-core/internal/core/ports/driven"
)

// Verify interface compliance
var _ driven.DocumentRegistry = (*DocumentRegistry)(nil)

// DocumentRegistry implements driven.DocumentRegistry using PostgreSQL
type DocumentRegistry struct {
	db *DB
}

// NewDocumentRegistry creates a new DocumentRegistry
func NewDocumentRegistry(db *DB) *DocumentRegistry {
	return &DocumentRegistry{db: db}
}

// Record upserts a registry entry for an uploaded document.
// Re-uploading a file replaces its entry; (tenant_id, filename) is the key.
func (r *DocumentRegistry) Record(ctx context.Context, doc *domain.Document) error {
	query := `
		INSERT INTO documents (tenant_id, filename, file_type, chunk_count, source_chars, uploaded_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (tenant_id, filename) DO UPDATE SET
			file_type = EXCLUDED.file_type,
			chunk_count = EXCLUDED.chunk_count,
			source_chars = EXCLUDED.source_chars,
			uploaded_at = EXCLUDED.uploaded_at
	`

	_, err := r.db.ExecContext(ctx, query,
		doc.TenantID,
		doc.Filename,
		doc.FileType,
		doc.ChunkCount,
		doc.SourceChars,
		doc.UploadedAt,
	)
	return err
}

// List returns the documents uploaded by a tenant, most recent first
func (r *DocumentRegistry) List(ctx context.Context, tenantID string) ([]*domain.Document, error) {
	query := `
		SELECT tenant_id, filename, file_type, chunk_count, source_chars, uploaded_at
		FROM documents
		WHERE tenant_id = $1
		ORDER BY uploaded_at DESC, filename
	`

	rows, err := r.db.QueryContext(ctx, query, tenantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var docs []*domain.Document
	for rows.Next() {
		var doc domain.Document
		if err := rows.Scan(
			&doc.TenantID,
			&doc.Filename,
			&doc.FileType,
			&doc.ChunkCount,
			&doc.SourceChars,
			&doc.UploadedAt,
		); err != nil {
			return nil, err
		}
		docs = append(docs, &doc)
	}
	if docs == nil {
		docs = []*domain.Document{}
	}
	return docs, rows.Err()
}

// Remove deletes registry entries for a tenant, narrowed to filename when
// non-empty
func (r *DocumentRegistry) Remove(ctx context.Context, tenantID, filename string) error {
	if filename == "" {
		_, err := r.db.ExecContext(ctx, `DELETE FROM documents WHERE tenant_id = $1`, tenantID)
		return err
	}
	_, err := r.db.ExecContext(ctx, `DELETE FROM documents WHERE tenant_id = $1 AND filename = $2`, tenantID, filename)
	return err
}

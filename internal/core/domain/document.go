package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// DefaultTenant is used when no tenant can be resolved from the request.
const DefaultTenant = "default"

// recordNamespace is the UUIDv5 namespace for embedding record IDs.
// Derived once from the URL namespace so IDs stay stable across releases.
var recordNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("docintel/embedding-record"))

// ChunkMetadata carries the document-level attributes every chunk inherits.
type ChunkMetadata struct {
	Filename    string `json:"filename"`
	TenantID    string `json:"tenant_id"`
	FileType    string `json:"file_type"`
	SourceChars int    `json:"source_chars"`
}

// Chunk is a contiguous slice of a document's extracted text.
// Chunks are created in bulk at upload time and immutable thereafter.
type Chunk struct {
	Text        string `json:"text"`
	Index       int    `json:"chunk_index"`
	StartOffset int    `json:"start_offset"`
	EndOffset   int    `json:"end_offset"`

	ChunkMetadata
}

// RecordID derives the deterministic embedding-record ID for this chunk.
// The same (tenant, filename, chunk index) triple always maps to the same
// UUID, so re-uploading a document overwrites rather than duplicates.
func (c Chunk) RecordID() string {
	return EmbeddingRecordID(c.TenantID, c.Filename, c.Index)
}

// EmbeddingRecordID derives a deterministic UUIDv5 from the identifying triple.
func EmbeddingRecordID(tenantID, filename string, chunkIndex int) string {
	key := fmt.Sprintf("%s|%s|%d", tenantID, filename, chunkIndex)
	return uuid.NewSHA1(recordNamespace, []byte(key)).String()
}

// Document is a registry entry for an uploaded file.
type Document struct {
	TenantID    string    `json:"tenant_id"`
	Filename    string    `json:"filename"`
	FileType    string    `json:"file_type"`
	ChunkCount  int       `json:"chunk_count"`
	SourceChars int       `json:"source_chars"`
	UploadedAt  time.Time `json:"uploaded_at"`
}

// IngestResult summarises a processed upload.
type IngestResult struct {
	Filename      string `json:"filename"`
	ChunksCreated int    `json:"chunks_created"`
	TenantID      string `json:"tenant_id"`
}

// DeletionResult reports the outcome of a clear operation.
// Failed distinguishes "the store errored" from "nothing matched" -
// both report zero chunks, only one of them is a successful no-op.
type DeletionResult struct {
	TenantID      string `json:"tenant_id"`
	Filename      string `json:"filename,omitempty"`
	ChunksDeleted int    `json:"chunks_deleted"`
	Failed        bool   `json:"failed,omitempty"`
}

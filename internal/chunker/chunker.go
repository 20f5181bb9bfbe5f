// Package chunker splits extracted text into fixed-size overlapping windows.
package chunker

import (
	"github.com/docintel-labs/docintel-core/internal/core/domain"
)

const (
	// DefaultChunkSize is the window width in characters
	DefaultChunkSize = 1000

	// DefaultOverlap is the overlap between consecutive windows
	DefaultOverlap = 200
)

// Chunker produces overlapping fixed-width chunks.
type Chunker struct {
	chunkSize int
	overlap   int
}

// New creates a Chunker. Invalid sizes fall back to the defaults;
// overlap must stay strictly smaller than the window.
func New(chunkSize, overlap int) *Chunker {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	if overlap < 0 || overlap >= chunkSize {
		overlap = DefaultOverlap
		if overlap >= chunkSize {
			overlap = chunkSize / 5
		}
	}
	return &Chunker{chunkSize: chunkSize, overlap: overlap}
}

// Chunk splits text into windows of chunkSize characters advancing by
// chunkSize-overlap, so consecutive chunks share exactly overlap characters.
// The final chunk may be shorter. Empty text yields no chunks; text no
// longer than one window yields exactly one chunk spanning the whole text.
func (c *Chunker) Chunk(text string, meta domain.ChunkMetadata) []domain.Chunk {
	if text == "" {
		return nil
	}

	meta.SourceChars = len(text)

	var chunks []domain.Chunk
	step := c.chunkSize - c.overlap
	for start, index := 0, 0; start < len(text); start, index = start+step, index+1 {
		end := start + c.chunkSize
		if end > len(text) {
			end = len(text)
		}
		chunks = append(chunks, domain.Chunk{
			Text:          text[start:end],
			Index:         index,
			StartOffset:   start,
			EndOffset:     end,
			ChunkMetadata: meta,
		})
		// The window reached the end of the text; advancing further would
		// only re-emit the trailing overlap.
		if end == len(text) {
			break
		}
	}
	return chunks
}

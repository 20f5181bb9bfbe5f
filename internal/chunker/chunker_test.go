package chunker

import (
	"strings"
	"testing"

	"github.com/docintel-labs/docintel-core/internal/core/domain"
)

func testMeta() domain.ChunkMetadata {
	return domain.ChunkMetadata{
		Filename: "report.txt",
		TenantID: "acme",
		FileType: ".txt",
	}
}

func TestChunkEmptyText(t *testing.T) {
	c := New(1000, 200)
	if chunks := c.Chunk("", testMeta()); len(chunks) != 0 {
		t.Errorf("expected no chunks for empty text, got %d", len(chunks))
	}
}

func TestChunkShortText(t *testing.T) {
	c := New(1000, 200)
	text := "short document"

	chunks := c.Chunk(text, testMeta())
	if len(chunks) != 1 {
		t.Fatalf("expected exactly 1 chunk, got %d", len(chunks))
	}
	if chunks[0].Text != text {
		t.Errorf("expected chunk to span the whole text")
	}
	if chunks[0].StartOffset != 0 || chunks[0].EndOffset != len(text) {
		t.Errorf("unexpected offsets [%d, %d)", chunks[0].StartOffset, chunks[0].EndOffset)
	}
}

func TestChunkExactWindow(t *testing.T) {
	c := New(100, 20)
	text := strings.Repeat("a", 100)

	chunks := c.Chunk(text, testMeta())
	if len(chunks) != 1 {
		t.Fatalf("expected exactly 1 chunk for len == window, got %d", len(chunks))
	}
}

func TestChunkOffsetsAndOverlap(t *testing.T) {
	const w, o = 100, 20
	c := New(w, o)
	text := strings.Repeat("x", 350)

	chunks := c.Chunk(text, testMeta())
	if len(chunks) < 2 {
		t.Fatalf("expected multiple chunks, got %d", len(chunks))
	}

	for i, ch := range chunks {
		if ch.Index != i {
			t.Errorf("chunk %d has index %d", i, ch.Index)
		}
		if ch.StartOffset != i*(w-o) {
			t.Errorf("chunk %d start = %d, want %d", i, ch.StartOffset, i*(w-o))
		}
		if i < len(chunks)-1 && ch.EndOffset-ch.StartOffset != w {
			t.Errorf("chunk %d width = %d, want %d", i, ch.EndOffset-ch.StartOffset, w)
		}
		if i > 0 && chunks[i-1].EndOffset-ch.StartOffset != o {
			t.Errorf("overlap between chunk %d and %d = %d, want %d",
				i-1, i, chunks[i-1].EndOffset-ch.StartOffset, o)
		}
	}

	last := chunks[len(chunks)-1]
	if last.EndOffset != len(text) {
		t.Errorf("final chunk ends at %d, want %d", last.EndOffset, len(text))
	}
}

func TestChunkCoversFullText(t *testing.T) {
	c := New(100, 20)
	text := strings.Repeat("abcdefghij", 57) // 570 chars, not window-aligned

	chunks := c.Chunk(text, testMeta())

	// Reassemble from spans: each chunk's non-overlapping tail continues
	// the previous chunk's coverage.
	rebuilt := chunks[0].Text
	for i := 1; i < len(chunks); i++ {
		rebuilt += chunks[i].Text[chunks[i-1].EndOffset-chunks[i].StartOffset:]
	}
	if rebuilt != text {
		t.Error("chunks do not cover the source text")
	}
}

func TestChunkInheritsMetadata(t *testing.T) {
	c := New(100, 20)
	text := strings.Repeat("y", 250)

	chunks := c.Chunk(text, testMeta())
	for _, ch := range chunks {
		if ch.Filename != "report.txt" || ch.TenantID != "acme" || ch.FileType != ".txt" {
			t.Errorf("chunk %d lost caller metadata: %+v", ch.Index, ch.ChunkMetadata)
		}
		if ch.SourceChars != len(text) {
			t.Errorf("chunk %d source_chars = %d, want %d", ch.Index, ch.SourceChars, len(text))
		}
	}
}

func TestNewClampsBadConfig(t *testing.T) {
	c := New(0, -5)
	if c.chunkSize != DefaultChunkSize || c.overlap != DefaultOverlap {
		t.Errorf("expected defaults, got size=%d overlap=%d", c.chunkSize, c.overlap)
	}

	// Overlap >= window must be reduced, never allowed to stall the loop.
	c = New(50, 100)
	if c.overlap >= c.chunkSize {
		t.Errorf("overlap %d not clamped below window %d", c.overlap, c.chunkSize)
	}
}

package ai

import (
	"context"
	"math"
	"testing"
)

func TestLocalEmbedding_Deterministic(t *testing.T) {
	e := NewLocalEmbedding(0)

	a, err := e.EmbedQuery(context.Background(), "termination clause")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := e.EmbedQuery(context.Background(), "termination clause")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(a) != 384 {
		t.Fatalf("expected 384 dimensions, got %d", len(a))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatal("same text produced different vectors")
		}
	}
}

func TestLocalEmbedding_Normalised(t *testing.T) {
	e := NewLocalEmbedding(64)

	vec, err := e.EmbedQuery(context.Background(), "the quick brown fox")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var norm float64
	for _, v := range vec {
		norm += float64(v) * float64(v)
	}
	if math.Abs(norm-1) > 1e-4 {
		t.Errorf("vector norm = %v, want 1", norm)
	}
}

func TestLocalEmbedding_SimilarTextsCloser(t *testing.T) {
	e := NewLocalEmbedding(0)
	ctx := context.Background()

	base, _ := e.EmbedQuery(ctx, "the contract termination notice period")
	near, _ := e.EmbedQuery(ctx, "the contract termination notice window")
	far, _ := e.EmbedQuery(ctx, "zebra quantum spaghetti")

	dot := func(a, b []float32) float64 {
		var sum float64
		for i := range a {
			sum += float64(a[i]) * float64(b[i])
		}
		return sum
	}

	if dot(base, near) <= dot(base, far) {
		t.Error("overlapping text should score higher than unrelated text")
	}
}

func TestLocalEmbedding_Batch(t *testing.T) {
	e := NewLocalEmbedding(0)

	vecs, err := e.Embed(context.Background(), []string{"one", "two", "three"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(vecs) != 3 {
		t.Fatalf("expected 3 vectors, got %d", len(vecs))
	}
}

package redis

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/docintel-labs/docintel-core/internal/core/domain"
)

// setupTestCache creates a test Redis client and AnswerCache
func setupTestCache(t *testing.T, ttl time.Duration) (*AnswerCache, *miniredis.Miniredis, func()) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	cache := NewAnswerCache(client, ttl)

	return cache, mr, func() {
		client.Close()
		mr.Close()
	}
}

func testAnswer(text string) *domain.Answer {
	score := 0.9
	return &domain.Answer{
		Answer: text,
		Sources: []domain.Source{
			{SourceID: 1, Filename: "contract.txt", ChunkID: 0, TextPreview: "preview", RelevanceScore: &score},
		},
		Metadata: domain.AnswerMetadata{ChunksRetrieved: 1},
	}
}

func TestAnswerCacheRoundTrip(t *testing.T) {
	cache, _, cleanup := setupTestCache(t, 0)
	defer cleanup()
	ctx := context.Background()

	question := "What does the contract say about termination?"
	if err := cache.Set(ctx, "acme", question, testAnswer("cached answer")); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	got, err := cache.Get(ctx, "acme", question)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.Answer != "cached answer" {
		t.Errorf("Answer = %q, want cached answer", got.Answer)
	}
	if len(got.Sources) != 1 || got.Sources[0].RelevanceScore == nil {
		t.Errorf("Sources = %+v, want preserved source with score", got.Sources)
	}
	if got.Metadata.ChunksRetrieved != 1 {
		t.Errorf("ChunksRetrieved = %d, want 1", got.Metadata.ChunksRetrieved)
	}
}

func TestAnswerCacheMiss(t *testing.T) {
	cache, _, cleanup := setupTestCache(t, 0)
	defer cleanup()

	_, err := cache.Get(context.Background(), "acme", "never asked")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("Get() error = %v, want ErrNotFound", err)
	}
}

func TestAnswerCacheTenantScoping(t *testing.T) {
	cache, _, cleanup := setupTestCache(t, 0)
	defer cleanup()
	ctx := context.Background()

	question := "What is the notice period?"
	if err := cache.Set(ctx, "acme", question, testAnswer("acme answer")); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	_, err := cache.Get(ctx, "other", question)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("Get() for another tenant = %v, want ErrNotFound", err)
	}
}

func TestAnswerCacheNormalisesQuestion(t *testing.T) {
	cache, _, cleanup := setupTestCache(t, 0)
	defer cleanup()
	ctx := context.Background()

	if err := cache.Set(ctx, "acme", "What is the notice period?", testAnswer("normalised")); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	got, err := cache.Get(ctx, "acme", "  WHAT IS THE NOTICE PERIOD?  ")
	if err != nil {
		t.Fatalf("Get() with different casing error = %v", err)
	}
	if got.Answer != "normalised" {
		t.Errorf("Answer = %q", got.Answer)
	}
}

func TestAnswerCacheExpiry(t *testing.T) {
	cache, mr, cleanup := setupTestCache(t, time.Minute)
	defer cleanup()
	ctx := context.Background()

	question := "What expires?"
	if err := cache.Set(ctx, "acme", question, testAnswer("ephemeral")); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	mr.FastForward(2 * time.Minute)

	_, err := cache.Get(ctx, "acme", question)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("Get() after TTL = %v, want ErrNotFound", err)
	}
}

package redis

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/docintel-labs/docintel-core/internal/core/domain"
	"github.com/docintel-labs/docintel-core/internal/core/ports/driven"
)

// Verify interface compliance
var _ driven.AnswerCache = (*AnswerCache)(nil)

const answerPrefix = "answer:"

// DefaultAnswerTTL bounds how long a cached answer can go stale after the
// underlying documents change.
const DefaultAnswerTTL = 15 * time.Minute

// AnswerCache implements driven.AnswerCache using Redis.
// Entries use Redis TTL for automatic expiration.
type AnswerCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewAnswerCache creates a new Redis-backed AnswerCache.
// A non-positive ttl falls back to DefaultAnswerTTL.
func NewAnswerCache(client *redis.Client, ttl time.Duration) *AnswerCache {
	if ttl <= 0 {
		ttl = DefaultAnswerTTL
	}
	return &AnswerCache{client: client, ttl: ttl}
}

// Get returns a cached answer or domain.ErrNotFound on a miss
func (c *AnswerCache) Get(ctx context.Context, tenantID, question string) (*domain.Answer, error) {
	data, err := c.client.Get(ctx, answerKey(tenantID, question)).Bytes()
	if err == redis.Nil {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get cached answer: %w", err)
	}

	var answer domain.Answer
	if err := json.Unmarshal(data, &answer); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cached answer: %w", err)
	}
	return &answer, nil
}

// Set stores an answer for the tenant/question pair
func (c *AnswerCache) Set(ctx context.Context, tenantID, question string, answer *domain.Answer) error {
	data, err := json.Marshal(answer)
	if err != nil {
		return fmt.Errorf("failed to marshal answer: %w", err)
	}

	if err := c.client.Set(ctx, answerKey(tenantID, question), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache answer: %w", err)
	}
	return nil
}

// answerKey hashes the normalised question so arbitrary-length text never
// leaks into key space.
func answerKey(tenantID, question string) string {
	sum := sha256.Sum256([]byte(strings.ToLower(strings.TrimSpace(question))))
	return answerPrefix + tenantID + ":" + hex.EncodeToString(sum[:])
}

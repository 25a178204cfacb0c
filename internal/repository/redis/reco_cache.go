package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"shopReco/domain"
	"time"

	"github.com/redis/go-redis/v9"
)

// PageCache keeps rendered recommendation pages in Redis. The engine is
// deterministic over an immutable snapshot, so a cached page can never
// diverge from a recomputed one; the TTL only bounds memory.
type PageCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewPageCache(client *redis.Client, ttl time.Duration) *PageCache {
	return &PageCache{
		client: client,
		ttl:    ttl,
	}
}

func pageKey(productID string, k int, alpha float64, cursor string, diversify bool) string {
	return fmt.Sprintf("reco:page:%s:%d:%g:%t:%s", productID, k, alpha, diversify, cursor)
}

// Get returns (page, true) on a hit. Redis errors degrade to a miss.
func (c *PageCache) Get(ctx context.Context, productID string, k int, alpha float64, cursor string, diversify bool) (domain.RecommendationPage, bool) {
	data, err := c.client.Get(ctx, pageKey(productID, k, alpha, cursor, diversify)).Bytes()
	if err != nil {
		return domain.RecommendationPage{}, false
	}

	var page domain.RecommendationPage
	if err := json.Unmarshal(data, &page); err != nil {
		return domain.RecommendationPage{}, false
	}

	return page, true
}

func (c *PageCache) Set(ctx context.Context, productID string, k int, alpha float64, cursor string, diversify bool, page domain.RecommendationPage) error {
	data, err := json.Marshal(page)
	if err != nil {
		return fmt.Errorf("failed to marshal page: %w", err)
	}

	err = c.client.Set(ctx, pageKey(productID, k, alpha, cursor, diversify), data, c.ttl).Err()
	if err != nil {
		return fmt.Errorf("failed to cache page: %w", err)
	}

	return nil
}

// Flush drops all cached pages. Called after an admin snapshot reload.
func (c *PageCache) Flush(ctx context.Context) error {
	iter := c.client.Scan(ctx, 0, "reco:page:*", 0).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			return fmt.Errorf("failed to delete cached page: %w", err)
		}
	}
	if err := iter.Err(); err != nil && !errors.Is(err, redis.Nil) {
		return fmt.Errorf("failed to scan cache keys: %w", err)
	}

	return nil
}

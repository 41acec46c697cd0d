package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"hash/fnv"
	"time"

	"github.com/Neha-Agarwal-coder/shopingRecommendation/business/recommender"
	"github.com/Neha-Agarwal-coder/shopingRecommendation/domain"

	"github.com/redis/go-redis/v9"
)

// RecommendationCache stores served rankings keyed by customer, topN,
// weight configuration and catalog snapshot version. Including the snapshot
// version means a reload naturally invalidates every cached ranking.
type RecommendationCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRecommendationCache(client *redis.Client, ttl time.Duration) *RecommendationCache {
	return &RecommendationCache{
		client: client,
		ttl:    ttl,
	}
}

func cacheKey(customerID string, topN int, weights recommender.WeightConfig, snapshotVersion int64) string {
	h := fnv.New64a()
	fmt.Fprintf(h, "%v", weights)
	return fmt.Sprintf("reco:%s:%d:%x:v%d", customerID, topN, h.Sum64(), snapshotVersion)
}

func (c *RecommendationCache) Get(
	ctx context.Context,
	customerID string,
	topN int,
	weights recommender.WeightConfig,
	snapshotVersion int64,
) ([]domain.ScoredProduct, bool, error) {

	key := cacheKey(customerID, topN, weights, snapshotVersion)

	val, err := c.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to get cached recommendations: %w", err)
	}

	var recs []domain.ScoredProduct
	if err := json.Unmarshal([]byte(val), &recs); err != nil {
		return nil, false, fmt.Errorf("failed to unmarshal cached recommendations: %w", err)
	}

	return recs, true, nil
}

func (c *RecommendationCache) Set(
	ctx context.Context,
	customerID string,
	topN int,
	weights recommender.WeightConfig,
	snapshotVersion int64,
	recs []domain.ScoredProduct,
) error {

	key := cacheKey(customerID, topN, weights, snapshotVersion)

	payload, err := json.Marshal(recs)
	if err != nil {
		return fmt.Errorf("failed to marshal recommendations: %w", err)
	}

	if err := c.client.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache recommendations: %w", err)
	}

	return nil
}

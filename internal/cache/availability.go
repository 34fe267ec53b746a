package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"rentfit-reservations/internal/domain"
	"rentfit-reservations/internal/logger"
)

// AvailabilityCache keeps a short-lived snapshot of each item's occupied
// intervals. It only backs the advisory read path; booking correctness is
// enforced by the interval check inside reservation creation.
type AvailabilityCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewAvailabilityCache(client *redis.Client, ttl time.Duration) *AvailabilityCache {
	return &AvailabilityCache{
		client: client,
		ttl:    ttl,
	}
}

func key(itemID int64) string {
	return fmt.Sprintf("unavail:%d", itemID)
}

// GetOccupied returns the cached intervals for an item and whether the
// cache held an entry. Redis errors degrade to a miss.
func (c *AvailabilityCache) GetOccupied(ctx context.Context, itemID int64) ([]domain.Interval, bool) {
	data, err := c.client.Get(ctx, key(itemID)).Result()
	if err != nil {
		if err != redis.Nil {
			logger.Warn("availability cache read failed", "item_id", itemID, "error", err)
		}
		return nil, false
	}

	var intervals []domain.Interval
	if err := json.Unmarshal([]byte(data), &intervals); err != nil {
		logger.Warn("availability cache entry corrupt, dropping", "item_id", itemID, "error", err)
		_ = c.client.Del(ctx, key(itemID)).Err()
		return nil, false
	}
	return intervals, true
}

func (c *AvailabilityCache) SetOccupied(ctx context.Context, itemID int64, intervals []domain.Interval) {
	data, err := json.Marshal(intervals)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, key(itemID), data, c.ttl).Err(); err != nil {
		logger.Warn("availability cache write failed", "item_id", itemID, "error", err)
	}
}

// Invalidate drops the item's snapshot after a lifecycle write.
func (c *AvailabilityCache) Invalidate(ctx context.Context, itemID int64) {
	if err := c.client.Del(ctx, key(itemID)).Err(); err != nil {
		logger.Warn("availability cache invalidation failed", "item_id", itemID, "error", err)
	}
}

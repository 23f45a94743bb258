package availability

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache memoizes full quote responses under a deterministic key.  A nil or
// flushed cache only changes latency, never correctness; the engine treats
// every cache failure as a miss.
type Cache interface {
	// Get returns the cached quote for key, or (nil, nil) on a miss.
	Get(ctx context.Context, key string) (*QuoteResponse, error)
	// Set stores the quote under key for the cache's TTL.
	Set(ctx context.Context, key string, q *QuoteResponse) error
}

// quoteKey derives the cache key for a stay request.  Identical requests
// collide regardless of arrival order; any field change, including the
// guest count, produces a distinct key.
func quoteKey(prefix, hotelID string, stay Stay, guests int) string {
	return fmt.Sprintf("%s:%s:%s-%s:%d",
		prefix, hotelID,
		stay.CheckIn.Format("20060102"), stay.CheckOut.Format("20060102"),
		guests)
}

// RedisCache is the production Cache backed by go-redis.  Entries are JSON
// encoded and expire after TTL; nothing evicts them when inventory or price
// rows change, so a quote can lag such edits by up to the TTL.
type RedisCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewRedisCache wraps an existing Redis client.  TTL values <= 0 fall back
// to 600 seconds, matching the platform default.
func NewRedisCache(rdb *redis.Client, ttl time.Duration) *RedisCache {
	if ttl <= 0 {
		ttl = 600 * time.Second
	}
	return &RedisCache{rdb: rdb, ttl: ttl}
}

func (c *RedisCache) Get(ctx context.Context, key string) (*QuoteResponse, error) {
	bs, err := c.rdb.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var q QuoteResponse
	if err := json.Unmarshal(bs, &q); err != nil {
		// A corrupt entry is a miss; it will be overwritten by the fresh quote.
		return nil, nil
	}
	return &q, nil
}

func (c *RedisCache) Set(ctx context.Context, key string, q *QuoteResponse) error {
	bs, err := json.Marshal(q)
	if err != nil {
		return err
	}
	return c.rdb.SetEx(ctx, key, bs, c.ttl).Err()
}

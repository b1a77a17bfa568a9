package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/jonathan/job-recommender/internal/types"
	"github.com/redis/go-redis/v9"
)

// DefaultCacheTTL is how long a catalog snapshot stays in Redis.
const DefaultCacheTTL = 5 * time.Minute

const (
	jobsCacheKey     = "jobrec:catalog:jobs"
	metadataCacheKey = "jobrec:catalog:metadata"
)

// cacheBackend is the subset of the Redis client the cache uses.
type cacheBackend interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// CachedStore serves catalog snapshots from Redis and falls back to the wrapped store on a
// miss. Redis errors are logged and never fail a read.
type CachedStore struct {
	inner Store
	cache cacheBackend
	ttl   time.Duration
}

// NewRedisClient creates and verifies a Redis client connection.
func NewRedisClient(ctx context.Context, redisURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis URL: %w", err)
	}

	rdb := redis.NewClient(opts)
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	return rdb, nil
}

// NewCachedStore wraps inner with a Redis read-through cache. A zero ttl uses DefaultCacheTTL.
func NewCachedStore(inner Store, client *redis.Client, ttl time.Duration) *CachedStore {
	return newCachedStore(inner, client, ttl)
}

func newCachedStore(inner Store, backend cacheBackend, ttl time.Duration) *CachedStore {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &CachedStore{inner: inner, cache: backend, ttl: ttl}
}

// ListJobs returns the cached catalog, loading and caching it on a miss.
func (c *CachedStore) ListJobs(ctx context.Context) ([]types.JobRecord, error) {
	var jobs []types.JobRecord
	if c.lookup(ctx, jobsCacheKey, &jobs) {
		return jobs, nil
	}

	jobs, err := c.inner.ListJobs(ctx)
	if err != nil {
		return nil, err
	}
	c.store(ctx, jobsCacheKey, jobs)
	return jobs, nil
}

// Metadata returns cached metadata, loading and caching it on a miss.
func (c *CachedStore) Metadata(ctx context.Context) (*types.Metadata, error) {
	var meta types.Metadata
	if c.lookup(ctx, metadataCacheKey, &meta) {
		return &meta, nil
	}

	fresh, err := c.inner.Metadata(ctx)
	if err != nil {
		return nil, err
	}
	c.store(ctx, metadataCacheKey, fresh)
	return fresh, nil
}

// UpsertJobs writes through to the wrapped store and drops the cached snapshot.
func (c *CachedStore) UpsertJobs(ctx context.Context, jobs []types.JobRecord) error {
	writer, ok := c.inner.(Writer)
	if !ok {
		return fmt.Errorf("catalog store %T is read-only", c.inner)
	}
	if err := writer.UpsertJobs(ctx, jobs); err != nil {
		return err
	}
	return c.Invalidate(ctx)
}

// Invalidate removes the cached snapshot so the next read hits the wrapped store.
func (c *CachedStore) Invalidate(ctx context.Context) error {
	if err := c.cache.Del(ctx, jobsCacheKey, metadataCacheKey).Err(); err != nil {
		return fmt.Errorf("failed to invalidate catalog cache: %w", err)
	}
	return nil
}

// Inner returns the wrapped store.
func (c *CachedStore) Inner() Store {
	return c.inner
}

// Close closes the wrapped store. The Redis client is owned by the caller.
func (c *CachedStore) Close() {
	c.inner.Close()
}

func (c *CachedStore) lookup(ctx context.Context, key string, dest any) bool {
	data, err := c.cache.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.Printf("[catalog] cache read %s failed: %v", key, err)
		}
		return false
	}

	if err := json.Unmarshal(data, dest); err != nil {
		log.Printf("[catalog] cache entry %s is corrupt: %v", key, err)
		return false
	}
	return true
}

func (c *CachedStore) store(ctx context.Context, key string, value any) {
	data, err := json.Marshal(value)
	if err != nil {
		log.Printf("[catalog] cache encode %s failed: %v", key, err)
		return
	}
	if err := c.cache.Set(ctx, key, data, c.ttl).Err(); err != nil {
		log.Printf("[catalog] cache write %s failed: %v", key, err)
	}
}

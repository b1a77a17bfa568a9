package catalog

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jonathan/job-recommender/internal/types"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeCache is an in-memory cacheBackend built from go-redis result constructors.
type fakeCache struct {
	data   map[string]string
	ttls   map[string]time.Duration
	getErr error
}

func newFakeCache() *fakeCache {
	return &fakeCache{data: make(map[string]string), ttls: make(map[string]time.Duration)}
}

func (f *fakeCache) Get(_ context.Context, key string) *redis.StringCmd {
	if f.getErr != nil {
		return redis.NewStringResult("", f.getErr)
	}
	v, ok := f.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (f *fakeCache) Set(_ context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	switch v := value.(type) {
	case []byte:
		f.data[key] = string(v)
	case string:
		f.data[key] = v
	}
	f.ttls[key] = expiration
	return redis.NewStatusResult("OK", nil)
}

func (f *fakeCache) Del(_ context.Context, keys ...string) *redis.IntCmd {
	var n int64
	for _, k := range keys {
		if _, ok := f.data[k]; ok {
			delete(f.data, k)
			n++
		}
	}
	return redis.NewIntResult(n, nil)
}

// countingStore records how often the wrapped store is hit.
type countingStore struct {
	*MemoryStore
	listCalls int
	metaCalls int
}

func (c *countingStore) ListJobs(ctx context.Context) ([]types.JobRecord, error) {
	c.listCalls++
	return c.MemoryStore.ListJobs(ctx)
}

func (c *countingStore) Metadata(ctx context.Context) (*types.Metadata, error) {
	c.metaCalls++
	return c.MemoryStore.Metadata(ctx)
}

func newCountingStore(t *testing.T) *countingStore {
	t.Helper()
	mem, err := NewMemoryStore(testJobs())
	require.NoError(t, err)
	return &countingStore{MemoryStore: mem}
}

func TestCachedStore_ListJobsReadThrough(t *testing.T) {
	inner := newCountingStore(t)
	cache := newFakeCache()
	store := newCachedStore(inner, cache, time.Minute)
	ctx := context.Background()

	first, err := store.ListJobs(ctx)
	require.NoError(t, err)
	second, err := store.ListJobs(ctx)
	require.NoError(t, err)

	assert.Equal(t, 1, inner.listCalls)
	assert.Equal(t, first, second)
	assert.Equal(t, time.Minute, cache.ttls[jobsCacheKey])
}

func TestCachedStore_MetadataReadThrough(t *testing.T) {
	inner := newCountingStore(t)
	store := newCachedStore(inner, newFakeCache(), 0)
	ctx := context.Background()

	_, err := store.Metadata(ctx)
	require.NoError(t, err)
	meta, err := store.Metadata(ctx)
	require.NoError(t, err)

	assert.Equal(t, 1, inner.metaCalls)
	assert.Equal(t, []string{"Data Analyst", "Software Engineer"}, meta.JobRoles)
	assert.Equal(t, DefaultCacheTTL, store.ttl)
}

func TestCachedStore_RedisFailureFallsBack(t *testing.T) {
	inner := newCountingStore(t)
	cache := newFakeCache()
	cache.getErr = errors.New("connection refused")
	store := newCachedStore(inner, cache, time.Minute)

	jobs, err := store.ListJobs(context.Background())
	require.NoError(t, err)
	assert.Len(t, jobs, 3)
	assert.Equal(t, 1, inner.listCalls)
}

func TestCachedStore_CorruptEntryFallsBack(t *testing.T) {
	inner := newCountingStore(t)
	cache := newFakeCache()
	cache.data[jobsCacheKey] = "{not json"
	store := newCachedStore(inner, cache, time.Minute)

	jobs, err := store.ListJobs(context.Background())
	require.NoError(t, err)
	assert.Len(t, jobs, 3)
	assert.Equal(t, 1, inner.listCalls)
}

func TestCachedStore_UpsertInvalidates(t *testing.T) {
	inner := newCountingStore(t)
	cache := newFakeCache()
	store := newCachedStore(inner, cache, time.Minute)
	ctx := context.Background()

	_, err := store.ListJobs(ctx)
	require.NoError(t, err)
	require.Contains(t, cache.data, jobsCacheKey)

	require.NoError(t, store.UpsertJobs(ctx, []types.JobRecord{{ID: 10, Title: "Intern"}}))
	assert.NotContains(t, cache.data, jobsCacheKey)

	jobs, err := store.ListJobs(ctx)
	require.NoError(t, err)
	assert.Len(t, jobs, 4)
	assert.Equal(t, 2, inner.listCalls)
}

type readOnlyStore struct{ Store }

func TestCachedStore_UpsertReadOnlyInner(t *testing.T) {
	mem, err := NewMemoryStore(nil)
	require.NoError(t, err)
	store := newCachedStore(readOnlyStore{mem}, newFakeCache(), time.Minute)

	err = store.UpsertJobs(context.Background(), []types.JobRecord{{ID: 1}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read-only")
}

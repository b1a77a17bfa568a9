package main

import (
	"context"
	"fmt"
	"log"

	"github.com/jonathan/job-recommender/internal/catalog"
	"github.com/jonathan/job-recommender/internal/config"
	"github.com/redis/go-redis/v9"
)

// cachedStore owns the Redis client behind a CachedStore.
type cachedStore struct {
	*catalog.CachedStore
	client *redis.Client
}

func (c *cachedStore) Close() {
	c.CachedStore.Close()
	_ = c.client.Close()
}

// loadConfig resolves --config, the environment and defaults.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return config.Config{}, fmt.Errorf("failed to load config: %w", err)
	}
	if verbose {
		cfg.Verbose = true
	}
	return cfg, nil
}

// openStore opens the catalog backend selected by cfg, wrapped in the Redis cache when
// cfg.RedisURL is set. The caller must Close the store.
func openStore(ctx context.Context, cfg config.Config) (catalog.Store, error) {
	var store catalog.Store

	switch cfg.Store {
	case config.StoreFile:
		mem, err := catalog.OpenFileStore(ctx, cfg.CatalogFile)
		if err != nil {
			return nil, err
		}
		store = mem
	case config.StoreSQLite:
		db, err := catalog.OpenSQLite(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		store = db
	case config.StorePostgres:
		db, err := catalog.ConnectPostgres(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		store = db
	default:
		return nil, fmt.Errorf("unknown catalog store %q", cfg.Store)
	}

	if cfg.Verbose {
		log.Printf("[catalog] using %s store", cfg.Store)
	}

	if cfg.RedisURL == "" {
		return store, nil
	}

	client, err := catalog.NewRedisClient(ctx, cfg.RedisURL)
	if err != nil {
		store.Close()
		return nil, err
	}
	if cfg.Verbose {
		log.Printf("[catalog] caching catalog in redis for %s", cfg.CacheTTLDuration())
	}
	return &cachedStore{
		CachedStore: catalog.NewCachedStore(store, client, cfg.CacheTTLDuration()),
		client:      client,
	}, nil
}

// openReadStore returns a file store over catalogFiles when any are given, otherwise the
// configured store.
func openReadStore(ctx context.Context, catalogFiles []string) (catalog.Store, error) {
	if len(catalogFiles) > 0 {
		return catalog.OpenFileStore(ctx, catalogFiles...)
	}

	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	return openStore(ctx, cfg)
}

// reloaderFor returns how to refresh store on a schedule, or nil when reads are always
// live. File catalogs are re-read; a Redis snapshot is dropped after any reload.
func reloaderFor(cfg config.Config, store catalog.Store) catalog.ReloadFunc {
	var steps []catalog.ReloadFunc

	inner := store
	cached, isCached := store.(*cachedStore)
	if isCached {
		inner = cached.Inner()
	}

	if mem, ok := inner.(*catalog.MemoryStore); ok && cfg.Store == config.StoreFile {
		steps = append(steps, catalog.FileReloader(mem, cfg.CatalogFile))
	}
	if isCached {
		steps = append(steps, cached.Invalidate)
	}

	if len(steps) == 0 {
		return nil
	}
	return func(ctx context.Context) error {
		for _, step := range steps {
			if err := step(ctx); err != nil {
				return err
			}
		}
		return nil
	}
}

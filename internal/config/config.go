// Package config provides configuration loading and validation for the recommender.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/robfig/cron/v3"
)

// Store kinds
const (
	StoreFile     = "file"
	StoreSQLite   = "sqlite"
	StorePostgres = "postgres"
)

// Config holds settings shared by the CLI commands and the server.
// Values come from a JSON file, then environment variables, then Defaults.
type Config struct {
	// Catalog
	Store       string `json:"store,omitempty"`        // file, sqlite or postgres
	CatalogFile string `json:"catalog_file,omitempty"` // job_postings.json for the file store
	SQLitePath  string `json:"sqlite_path,omitempty"`  // Database file for the sqlite store
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL

	// RefreshSchedule reloads the catalog on a cron schedule while serving, e.g. "@every 10m"
	RefreshSchedule string `json:"refresh_schedule,omitempty"`

	// Cache
	RedisURL string `json:"redis_url,omitempty"` // Enables the Redis catalog cache when set
	CacheTTL string `json:"cache_ttl,omitempty"` // Go duration, e.g. "5m"

	// Server
	Port int `json:"port,omitempty"`

	Verbose bool `json:"verbose,omitempty"`
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		Store:       StoreFile,
		CatalogFile: "job_postings.json",
		SQLitePath:  "jobs.db",
		CacheTTL:    "5m",
		Port:        5000,
	}
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// FromEnv reads configuration from environment variables. Unset variables stay empty.
func FromEnv() Config {
	cfg := Config{
		Store:       os.Getenv("CATALOG_STORE"),
		CatalogFile: os.Getenv("CATALOG_FILE"),
		SQLitePath:  os.Getenv("SQLITE_PATH"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		RedisURL:    os.Getenv("REDIS_URL"),
		CacheTTL:    os.Getenv("CACHE_TTL"),

		RefreshSchedule: os.Getenv("CATALOG_REFRESH"),
	}
	if port, err := strconv.Atoi(os.Getenv("PORT")); err == nil {
		cfg.Port = port
	}
	return cfg
}

// Load builds the effective configuration: the optional file at path wins over the
// environment, which wins over Defaults. The result is validated.
func Load(path string) (Config, error) {
	var fileCfg Config
	if path != "" {
		loaded, err := LoadConfig(path)
		if err != nil {
			return Config{}, err
		}
		fileCfg = *loaded
	}

	cfg := fileCfg.MergeWithDefaults(FromEnv())
	cfg = cfg.MergeWithDefaults(Defaults())

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	switch c.Store {
	case StoreFile:
		if c.CatalogFile == "" {
			return fmt.Errorf("config error: 'catalog_file' is required for the file store")
		}
	case StoreSQLite:
		if c.SQLitePath == "" {
			return fmt.Errorf("config error: 'sqlite_path' is required for the sqlite store")
		}
	case StorePostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("config error: 'database_url' is required for the postgres store")
		}
	default:
		return fmt.Errorf("config error: unknown store %q (valid: file, sqlite, postgres)", c.Store)
	}

	// Validate numeric ranges
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}

	if c.CacheTTL != "" {
		if ttl, err := time.ParseDuration(c.CacheTTL); err != nil || ttl < 0 {
			return fmt.Errorf("config error: 'cache_ttl' must be a non-negative duration: %q", c.CacheTTL)
		}
	}

	if c.RefreshSchedule != "" {
		if _, err := cron.ParseStandard(c.RefreshSchedule); err != nil {
			return fmt.Errorf("config error: 'refresh_schedule' is not a valid cron schedule: %w", err)
		}
	}

	return nil
}

// CacheTTLDuration returns the parsed cache TTL, or zero when unset.
func (c *Config) CacheTTLDuration() time.Duration {
	ttl, err := time.ParseDuration(c.CacheTTL)
	if err != nil {
		return 0
	}
	return ttl
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.Store == "" {
		result.Store = defaults.Store
	}
	if result.CatalogFile == "" {
		result.CatalogFile = defaults.CatalogFile
	}
	if result.SQLitePath == "" {
		result.SQLitePath = defaults.SQLitePath
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.RedisURL == "" {
		result.RedisURL = defaults.RedisURL
	}
	if result.CacheTTL == "" {
		result.CacheTTL = defaults.CacheTTL
	}
	if result.RefreshSchedule == "" {
		result.RefreshSchedule = defaults.RefreshSchedule
	}

	// Int fields: use default if zero
	if result.Port == 0 {
		result.Port = defaults.Port
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

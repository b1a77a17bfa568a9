package ratelimit

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// EndpointConfig represents rate limiting configuration for a specific endpoint.
type EndpointConfig struct {
	Path   string        // Endpoint path; a trailing "/" matches the whole subtree
	Method string        // HTTP method (GET, POST, etc.)
	Limit  int           // Maximum requests per window
	Window time.Duration // Time window
	Burst  int           // Burst capacity (defaults to Limit if 0)
}

// LoadConfig loads rate limiting configuration from RATE_LIMIT_* environment variables.
//
//	RATE_LIMIT_ENABLED              default true
//	RATE_LIMIT_DEFAULT_LIMIT        requests per window for unlisted endpoints, default 1000
//	RATE_LIMIT_DEFAULT_WINDOW       default 1m
//	RATE_LIMIT_RECOMMEND_LIMIT      POST /recommend requests per minute, default 60
//	RATE_LIMIT_CLEANUP_INTERVAL     default 5m
//	RATE_LIMIT_WHITELIST            comma-separated client IPs that are never limited
//	RATE_LIMIT_BLACKLIST            comma-separated client IPs that are always rejected
func LoadConfig() *Config {
	if !envBool("RATE_LIMIT_ENABLED", true) {
		return &Config{Enabled: false}
	}

	endpoints := DefaultEndpointConfigs()
	if limit := envInt("RATE_LIMIT_RECOMMEND_LIMIT", 0); limit > 0 {
		for i := range endpoints {
			if endpoints[i].Path == "/recommend" {
				endpoints[i].Limit = limit
				endpoints[i].Burst = max(limit/6, 1)
			}
		}
	}

	return &Config{
		Enabled:         true,
		DefaultLimit:    envInt("RATE_LIMIT_DEFAULT_LIMIT", 1000),
		DefaultWindow:   envDuration("RATE_LIMIT_DEFAULT_WINDOW", time.Minute),
		CleanupInterval: envDuration("RATE_LIMIT_CLEANUP_INTERVAL", 5*time.Minute),
		Whitelist:       parseIPList(os.Getenv("RATE_LIMIT_WHITELIST")),
		Blacklist:       parseIPList(os.Getenv("RATE_LIMIT_BLACKLIST")),
		EndpointConfigs: endpoints,
	}
}

// DefaultEndpointConfigs returns the default endpoint-specific configurations.
func DefaultEndpointConfigs() []EndpointConfig {
	return []EndpointConfig{
		// Recommendation runs rank the whole catalog
		{Path: "/recommend", Method: "POST", Limit: 60, Window: time.Minute, Burst: 10},

		// Metadata is cheap; allow a larger burst for form loading
		{Path: "/metadata", Method: "GET", Limit: 300, Window: time.Minute, Burst: 30},

		// Everything else uses the default limit; GET /health is exempt
	}
}

// envInt reads an integer variable, falling back to def when unset or malformed.
func envInt(key string, def int) int {
	if v, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return v
	}
	return def
}

func envBool(key string, def bool) bool {
	if v, err := strconv.ParseBool(os.Getenv(key)); err == nil {
		return v
	}
	return def
}

func envDuration(key string, def time.Duration) time.Duration {
	if v, err := time.ParseDuration(os.Getenv(key)); err == nil {
		return v
	}
	return def
}

// parseIPList parses a comma-separated list of IP addresses into a set.
func parseIPList(list string) map[string]bool {
	result := make(map[string]bool)
	for _, ip := range strings.Split(list, ",") {
		if ip = strings.TrimSpace(ip); ip != "" {
			result[ip] = true
		}
	}
	return result
}

package ratelimit

import (
	"net/http"
	"strings"
)

// unlimited is returned for endpoints that are never rate limited.
var unlimited = EndpointConfig{}

// exemptEndpoints are served without a limit so probes keep working under load.
var exemptEndpoints = []EndpointConfig{
	{Path: "/health", Method: http.MethodGet},
}

// MatchEndpoint returns the configuration that applies to method and path, or nil when
// the default limit applies. Exact paths win over prefixes; a config path ending in "/"
// matches every path below it. Exempt endpoints match with a zero Limit.
func MatchEndpoint(path string, method string, configs []EndpointConfig) *EndpointConfig {
	for _, exempt := range exemptEndpoints {
		if exempt.Path == path && exempt.Method == method {
			result := unlimited
			return &result
		}
	}

	var prefixMatch *EndpointConfig
	for i := range configs {
		cfg := &configs[i]
		if cfg.Method != method {
			continue
		}
		if cfg.Path == path {
			return cfg
		}
		if prefixMatch == nil && strings.HasSuffix(cfg.Path, "/") && strings.HasPrefix(path, cfg.Path) {
			prefixMatch = cfg
		}
	}

	return prefixMatch
}

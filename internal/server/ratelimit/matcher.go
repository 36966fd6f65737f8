package ratelimit

import (
	"net/http"
	"strings"
)

// unlimited lists the routes that are never limited.
var unlimited = map[string]bool{
	http.MethodGet + " /health": true,
}

var unlimitedConfig = EndpointConfig{Limit: 0}

// MatchEndpoint returns the endpoint configuration for a request, or nil when the
// default limit applies. An exact path wins; otherwise the longest configured
// prefix ending in "/" matches ("/auth/" matches "/auth/login").
func MatchEndpoint(path string, method string, configs []EndpointConfig) *EndpointConfig {
	method = strings.ToUpper(method)
	if unlimited[method+" "+path] {
		cfg := unlimitedConfig
		return &cfg
	}

	var best *EndpointConfig
	for i := range configs {
		cfg := &configs[i]
		if cfg.Method != method {
			continue
		}
		if cfg.Path == path {
			return cfg
		}
		if strings.HasSuffix(cfg.Path, "/") && strings.HasPrefix(path, cfg.Path) &&
			(best == nil || len(cfg.Path) > len(best.Path)) {
			best = cfg
		}
	}
	return best
}

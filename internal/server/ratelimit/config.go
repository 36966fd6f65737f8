package ratelimit

import (
	"time"

	"github.com/jonathan/resume-nest/internal/config"
)

// EndpointConfig represents rate limiting configuration for a specific endpoint.
type EndpointConfig struct {
	Path   string        // Endpoint path pattern (supports prefix matching)
	Method string        // HTTP method (GET, POST, etc.)
	Limit  int           // Maximum requests per window
	Window time.Duration // Time window
	Burst  int           // Burst capacity (defaults to Limit if 0)
}

// Config holds rate limiting configuration.
type Config struct {
	Enabled         bool
	DefaultLimit    int
	DefaultWindow   time.Duration
	CleanupInterval time.Duration
	IdleTTL         time.Duration
	EndpointConfigs []EndpointConfig
}

// FromConfig builds the limiter configuration from application settings.
func FromConfig(cfg config.RateLimitConfig) *Config {
	if !cfg.Enabled {
		return &Config{Enabled: false}
	}

	return &Config{
		Enabled:         true,
		DefaultLimit:    cfg.PerMinute,
		DefaultWindow:   time.Minute,
		CleanupInterval: 5 * time.Minute,
		IdleTTL:         time.Hour,
		EndpointConfigs: DefaultEndpointConfigs(cfg.AuthPerMinute, cfg.AIPerMinute),
	}
}

// DefaultEndpointConfigs returns the endpoint-specific limits.
// Credential endpoints and the generation endpoints get their own buckets.
func DefaultEndpointConfigs(authPerMinute, aiPerMinute int) []EndpointConfig {
	return []EndpointConfig{
		// Credential checks
		{Path: "/auth/", Method: "POST", Limit: authPerMinute, Window: time.Minute, Burst: max(1, authPerMinute/2)},

		// Upstream model calls and headless printing
		{Path: "/ai/", Method: "POST", Limit: aiPerMinute, Window: time.Minute, Burst: max(1, aiPerMinute/4)},
		{Path: "/export", Method: "POST", Limit: aiPerMinute, Window: time.Minute, Burst: max(1, aiPerMinute/4)},

		// Everything else falls back to the default limit; GET /health is unlimited
	}
}

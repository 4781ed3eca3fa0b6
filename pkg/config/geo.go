package config

import "time"

// GeoConfig tunes the geocoding client wrapper: cache sizing, the global
// search rate limit, and the negative-result TTLs.
type GeoConfig struct {
	// CacheSize is the LRU capacity for resolved locations.
	CacheSize int `yaml:"cache_size"`

	// SearchRateLimitPerMinute is the global ceiling on geocode lookups.
	SearchRateLimitPerMinute int `yaml:"search_rate_limit_per_minute"`

	// Negative-result TTLs.
	NotFoundTTL      time.Duration `yaml:"not_found_ttl"`
	NotCommercialTTL time.Duration `yaml:"not_commercial_ttl"`

	// Provider endpoint. Empty BaseURL selects the built-in state-centroid
	// fallback resolver.
	BaseURL    string        `yaml:"base_url"`
	APIKeyEnv  string        `yaml:"api_key_env"`
	HTTPTimeout time.Duration `yaml:"http_timeout"`
}

// DefaultGeoConfig returns the built-in geocoding defaults.
func DefaultGeoConfig() *GeoConfig {
	return &GeoConfig{
		CacheSize:                10000,
		SearchRateLimitPerMinute: 10,
		NotFoundTTL:              5 * time.Minute,
		NotCommercialTTL:         1 * time.Hour,
		APIKeyEnv:                "GEOCODER_API_KEY",
		HTTPTimeout:              10 * time.Second,
	}
}

// Package config provides configuration loading, defaults, and validation for
// the siamhora service.
package config

import "time"

const (
	DefaultServerPort = 8080
	DefaultServerMode = "release"

	DefaultRedisAddr      = "localhost:6379"
	DefaultRedisKeyPrefix = "siamhora:"

	DefaultGeocoderBaseURL = "https://nominatim.openstreetmap.org/reverse"
	DefaultGeocoderTimeout = 2 * time.Second
	DefaultGeocodeCacheTTL = 24 * time.Hour

	DefaultVerifierTimeout = 2 * time.Second

	DefaultTimezone  = "Asia/Bangkok"
	DefaultLatitude  = 13.75
	DefaultLongitude = 100.5

	DefaultLogLevel  = "info"
	DefaultLogFormat = "json"
)

// ApplyDefaults fills every zero-value field in cfg with the service default.
// Fields that have already been set by the caller (non-zero values) are left
// unchanged so that explicit configuration always wins.  It must be called
// after unmarshalling raw config data and before Validate().
func ApplyDefaults(cfg *Config) {
	if cfg == nil {
		return
	}

	// Server
	if cfg.Server.Port == 0 {
		cfg.Server.Port = DefaultServerPort
	}
	if cfg.Server.Mode == "" {
		cfg.Server.Mode = DefaultServerMode
	}
	if cfg.Server.ReadTimeout == 0 {
		cfg.Server.ReadTimeout = 15 * time.Second
	}
	if cfg.Server.WriteTimeout == 0 {
		cfg.Server.WriteTimeout = 15 * time.Second
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = 30 * time.Second
	}
	if cfg.Server.RateLimitRPS == 0 {
		cfg.Server.RateLimitRPS = 50
	}
	if cfg.Server.RateLimitBurst == 0 {
		cfg.Server.RateLimitBurst = 100
	}

	// Redis
	if cfg.Redis.Addr == "" {
		cfg.Redis.Addr = DefaultRedisAddr
	}
	if cfg.Redis.KeyPrefix == "" {
		cfg.Redis.KeyPrefix = DefaultRedisKeyPrefix
	}
	if cfg.Redis.DefaultTTL == 0 {
		cfg.Redis.DefaultTTL = 15 * time.Minute
	}
	if cfg.Redis.DialTimeout == 0 {
		cfg.Redis.DialTimeout = 5 * time.Second
	}
	if cfg.Redis.ReadTimeout == 0 {
		cfg.Redis.ReadTimeout = 3 * time.Second
	}
	if cfg.Redis.WriteTimeout == 0 {
		cfg.Redis.WriteTimeout = 3 * time.Second
	}

	// Geocoder
	if cfg.Geocoder.BaseURL == "" {
		cfg.Geocoder.BaseURL = DefaultGeocoderBaseURL
	}
	if cfg.Geocoder.Timeout == 0 {
		cfg.Geocoder.Timeout = DefaultGeocoderTimeout
	}
	if cfg.Geocoder.CacheTTL == 0 {
		cfg.Geocoder.CacheTTL = DefaultGeocodeCacheTTL
	}

	// Verifier
	if cfg.Verifier.Timeout == 0 {
		cfg.Verifier.Timeout = DefaultVerifierTimeout
	}

	// Astro
	if cfg.Astro.DefaultTimezone == "" {
		cfg.Astro.DefaultTimezone = DefaultTimezone
	}
	if cfg.Astro.DefaultLatitude == 0 {
		cfg.Astro.DefaultLatitude = DefaultLatitude
	}
	if cfg.Astro.DefaultLongitude == 0 {
		cfg.Astro.DefaultLongitude = DefaultLongitude
	}

	// Log
	if cfg.Log.Level == "" {
		cfg.Log.Level = DefaultLogLevel
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = DefaultLogFormat
	}
}

// NewDefaultConfig returns a Config populated entirely with defaults.
// It is used by entrypoints when no config file is present.
func NewDefaultConfig() *Config {
	cfg := &Config{}
	ApplyDefaults(cfg)
	return cfg
}

//Personal.AI order the ending

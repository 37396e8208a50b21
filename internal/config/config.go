// Package config defines all configuration structures for the siamhora
// service.  No I/O or parsing logic lives here — only plain data types and
// validation.
package config

import (
	"fmt"
	"time"
)

// ServerConfig holds HTTP server tunables.
type ServerConfig struct {
	Port            int           `mapstructure:"port"`
	Mode            string        `mapstructure:"mode"` // "debug" | "release" | "test"
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	RateLimitRPS    float64       `mapstructure:"rate_limit_rps"`
	RateLimitBurst  int           `mapstructure:"rate_limit_burst"`
}

// RedisConfig holds Redis connection parameters for the geocode lookup cache.
// The cache is optional: with Enabled=false the geocoder is called directly.
type RedisConfig struct {
	Enabled      bool          `mapstructure:"enabled"`
	Addr         string        `mapstructure:"addr"`
	Password     string        `mapstructure:"password"`
	DB           int           `mapstructure:"db"`
	PoolSize     int           `mapstructure:"pool_size"`
	MinIdleConns int           `mapstructure:"min_idle_conns"`
	DialTimeout  time.Duration `mapstructure:"dial_timeout"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	DefaultTTL   time.Duration `mapstructure:"default_ttl"`
	KeyPrefix    string        `mapstructure:"key_prefix"`
}

// GeocoderConfig holds parameters for the reverse-geocoding collaborator.
type GeocoderConfig struct {
	BaseURL  string        `mapstructure:"base_url"`
	Timeout  time.Duration `mapstructure:"timeout"`
	CacheTTL time.Duration `mapstructure:"cache_ttl"`
}

// VerifierConfig holds parameters for the remote date-verification collaborator.
type VerifierConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// AstroConfig holds defaults for chart computation inputs.
type AstroConfig struct {
	DefaultTimezone  string  `mapstructure:"default_timezone"`
	DefaultLatitude  float64 `mapstructure:"default_latitude"`
	DefaultLongitude float64 `mapstructure:"default_longitude"`
}

// LogConfig holds structured-logging parameters.
type LogConfig struct {
	Level  string `mapstructure:"level"`  // "debug" | "info" | "warn" | "error"
	Format string `mapstructure:"format"` // "json" | "console"
	Output string `mapstructure:"output"`
}

// Config is the root configuration structure for the service.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Geocoder GeocoderConfig `mapstructure:"geocoder"`
	Verifier VerifierConfig `mapstructure:"verifier"`
	Astro    AstroConfig    `mapstructure:"astro"`
	Log      LogConfig      `mapstructure:"log"`
}

// Validate performs semantic validation of the fully-populated Config.
// It returns the first error encountered; callers should treat any error as
// fatal and refuse to start the application.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("config: server.port %d is out of range [1, 65535]", c.Server.Port)
	}
	switch c.Server.Mode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("config: server.mode %q is invalid; expected debug|release|test", c.Server.Mode)
	}
	if c.Server.RateLimitRPS < 0 {
		return fmt.Errorf("config: server.rate_limit_rps must be ≥ 0, got %v", c.Server.RateLimitRPS)
	}

	if c.Redis.Enabled && c.Redis.Addr == "" {
		return fmt.Errorf("config: redis.addr is required when redis.enabled is true")
	}
	if c.Redis.DB < 0 {
		return fmt.Errorf("config: redis.db must be ≥ 0, got %d", c.Redis.DB)
	}

	if c.Geocoder.Timeout <= 0 {
		return fmt.Errorf("config: geocoder.timeout must be > 0, got %v", c.Geocoder.Timeout)
	}
	if c.Verifier.Timeout <= 0 {
		return fmt.Errorf("config: verifier.timeout must be > 0, got %v", c.Verifier.Timeout)
	}

	if c.Astro.DefaultTimezone == "" {
		return fmt.Errorf("config: astro.default_timezone is required")
	}
	if c.Astro.DefaultLatitude < -90 || c.Astro.DefaultLatitude > 90 {
		return fmt.Errorf("config: astro.default_latitude %v is out of range [-90, 90]", c.Astro.DefaultLatitude)
	}
	if c.Astro.DefaultLongitude < -180 || c.Astro.DefaultLongitude > 180 {
		return fmt.Errorf("config: astro.default_longitude %v is out of range [-180, 180]", c.Astro.DefaultLongitude)
	}

	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: log.level %q is invalid; expected debug|info|warn|error", c.Log.Level)
	}
	switch c.Log.Format {
	case "json", "console":
	default:
		return fmt.Errorf("config: log.format %q is invalid; expected json|console", c.Log.Format)
	}

	return nil
}

//Personal.AI order the ending

package config

import "time"

// Config holds server and client configuration values.
type Config struct {
	Addr               string        `mapstructure:"addr" yaml:"addr"`
	ReadHeaderTimeout  time.Duration `mapstructure:"read_header_timeout" yaml:"read_header_timeout"`
	ShutdownTimeout    time.Duration `mapstructure:"shutdown_timeout" yaml:"shutdown_timeout"`
	DatabasePath       string        `mapstructure:"database_path" yaml:"database_path"`
	SeedHeroes         bool          `mapstructure:"seed_heroes" yaml:"seed_heroes"`
	RateLimitPerMinute int           `mapstructure:"rate_limit_per_minute" yaml:"rate_limit_per_minute"`
	LogLevel           string        `mapstructure:"log_level" yaml:"log_level"`

	// APIURL is the backend base URL used by the heroes CLI.
	APIURL string `mapstructure:"api_url" yaml:"api_url"`
}

// Default returns configuration with reasonable starter defaults.
func Default() Config {
	return Config{
		Addr:               ":8080",
		ReadHeaderTimeout:  5 * time.Second,
		ShutdownTimeout:    5 * time.Second,
		DatabasePath:       "heroes.db",
		SeedHeroes:         true,
		RateLimitPerMinute: 600,
		LogLevel:           "info",
		APIURL:             "http://localhost:8080",
	}
}

// UpdateFrom overwrites non-zero values from other config into receiver.
// SeedHeroes is a plain bool and is never overwritten here.
func (c *Config) UpdateFrom(other Config) {
	if other.Addr != "" {
		c.Addr = other.Addr
	}
	if other.ReadHeaderTimeout != 0 {
		c.ReadHeaderTimeout = other.ReadHeaderTimeout
	}
	if other.ShutdownTimeout != 0 {
		c.ShutdownTimeout = other.ShutdownTimeout
	}
	if other.DatabasePath != "" {
		c.DatabasePath = other.DatabasePath
	}
	if other.RateLimitPerMinute != 0 {
		c.RateLimitPerMinute = other.RateLimitPerMinute
	}
	if other.LogLevel != "" {
		c.LogLevel = other.LogLevel
	}
	if other.APIURL != "" {
		c.APIURL = other.APIURL
	}
}

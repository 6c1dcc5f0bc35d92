package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const (
	envPrefix            = "HEROES"
	envConfigDefaultPath = "HEROES_CONFIG_DEFAULT_PATH"
	defaultConfigName    = "config.yaml"
)

type loadOptions struct {
	writeDefault bool
}

// LoadOption adjusts how Load treats a missing config file.
type LoadOption func(*loadOptions)

// WithoutDefaultFile makes Load fall back to defaults when the config file is
// missing instead of creating it. Clients use it so they leave no files behind.
func WithoutDefaultFile() LoadOption {
	return func(o *loadOptions) {
		o.writeDefault = false
	}
}

// Load resolves configuration and returns it with the config file path it used.
// Precedence: defaults < config file < HEROES_* env vars; callers apply flag
// overrides on top with UpdateFrom. A missing file is written with the
// defaults unless WithoutDefaultFile is given.
func Load(logger *zerolog.Logger, explicitPath string, opts ...LoadOption) (Config, string, error) {
	o := loadOptions{writeDefault: true}
	for _, opt := range opts {
		opt(&o)
	}

	cfg := Default()
	v := newViper(cfg)

	configPath := resolveConfigPath(explicitPath, o.writeDefault)
	v.SetConfigFile(configPath)

	err := v.ReadInConfig()
	switch {
	case err == nil:
	case !isNotExist(err):
		return cfg, configPath, fmt.Errorf("read config %s: %w", configPath, err)
	case !o.writeDefault:
		debugf(logger, configPath, "config file not found, using defaults and environment")
	default:
		if writeErr := writeDefaultConfig(configPath, cfg); writeErr != nil {
			if logger != nil {
				logger.Warn().Err(writeErr).Str("path", configPath).Msg("failed to write default config")
			}
			break
		}
		if logger != nil {
			logger.Info().Str("path", configPath).Msg("created default config")
		}
		if readErr := v.ReadInConfig(); readErr != nil && logger != nil {
			logger.Warn().Err(readErr).Str("path", configPath).Msg("failed to read config after writing default")
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, configPath, fmt.Errorf("unmarshal config: %w", err)
	}

	return cfg, configPath, nil
}

// newViper registers every key with its default so env vars bind even when
// the file does not mention them.
func newViper(cfg Config) *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")

	defaults := map[string]any{
		"addr":                  cfg.Addr,
		"read_header_timeout":   cfg.ReadHeaderTimeout,
		"shutdown_timeout":      cfg.ShutdownTimeout,
		"database_path":         cfg.DatabasePath,
		"seed_heroes":           cfg.SeedHeroes,
		"rate_limit_per_minute": cfg.RateLimitPerMinute,
		"log_level":             cfg.LogLevel,
		"api_url":               cfg.APIURL,
	}
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

func isNotExist(err error) bool {
	var notFound viper.ConfigFileNotFoundError
	return errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist)
}

func debugf(logger *zerolog.Logger, path, msg string) {
	if logger != nil {
		logger.Debug().Str("path", path).Msg(msg)
	}
}

// resolveConfigPath picks the explicit path, then HEROES_CONFIG_DEFAULT_PATH,
// then the working directory. The env directory is only created when a
// default file may be written into it.
func resolveConfigPath(explicitPath string, create bool) string {
	if explicitPath != "" {
		return explicitPath
	}

	if base := os.Getenv(envConfigDefaultPath); base != "" {
		if !create {
			return filepath.Join(base, defaultConfigName)
		}
		if err := os.MkdirAll(base, 0o755); err == nil {
			return filepath.Join(base, defaultConfigName)
		}
	}

	cwd, err := os.Getwd()
	if err != nil {
		return defaultConfigName
	}
	return filepath.Join(cwd, defaultConfigName)
}

func writeDefaultConfig(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}

// rfplan - RF site-planning engine for low-power wireless mesh deployments
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists the paths where config files are searched in order of priority.
// The first file found will be used.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/rfplan/config.yaml",
	"/etc/rfplan/config.yml",
}

// ConfigPathEnvVar is the environment variable that can override the config file path.
const ConfigPathEnvVar = "CONFIG_PATH"

// defaultConfig returns a Config struct with all sensible default values.
// These defaults are applied first, then overridden by config file and env vars.
func defaultConfig() *Config {
	return &Config{
		TileSource: TileSourceConfig{
			URLTemplate:         "https://s3.amazonaws.com/elevation-tiles-prod/terrarium/{z}/{x}/{y}.png",
			APIKey:              "",
			Zoom:                12,
			TileSize:            256,
			Timeout:             10 * time.Second,
			BreakerMaxRequests:  3,
			BreakerInterval:     60 * time.Second,
			BreakerTimeout:      30 * time.Second,
			BreakerFailureRatio: 0.6,
			BreakerMinRequests:  5,
		},
		Cache: CacheConfig{
			MemoSize:      256,
			ByteStorePath: "/data/rfplan/tilecache",
			ByteStoreTTL:  30 * 24 * time.Hour,
		},
		Viewshed: ViewshedConfig{
			DefaultRadiusMeters:     10000,
			MaxRadiusMeters:         50000,
			DefaultResolutionMeters: 30,
			DefaultRxHeightMeters:   2,
			DefaultFrequencyMHz:     915,
		},
		Coverage: CoverageConfig{
			DefaultN:             5,
			MaxCandidates:        200,
			GridResolutionMeters: 30,
			MaxGridDimension:     1024,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
	}
}

// LoadWithKoanf loads configuration using Koanf v2 with layered sources:
//  1. Defaults: Built-in sensible defaults
//  2. Config File: Optional YAML config file (if exists)
//  3. Environment Variables: Override any setting
//
// This function is the preferred way to load configuration and provides:
//   - Type-safe configuration unmarshaling
//   - Clear precedence: ENV > File > Defaults
//   - Support for nested configuration via koanf struct tags
func LoadWithKoanf() (*Config, error) {
	k := koanf.New(".")

	// Layer 1: Load defaults from struct
	defaults := defaultConfig()
	if err := k.Load(structs.Provider(defaults, "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// Layer 2: Load config file (optional)
	configPath := findConfigFile()
	if configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	// Layer 3: Load environment variables (highest priority)
	// Transform environment variable names to koanf paths:
	// TILE_SOURCE_URL_TEMPLATE -> tile_source.url_template
	envProvider := env.Provider("", ".", envTransformFunc)
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	// Unmarshal into Config struct
	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	// Validate the configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// findConfigFile searches for a config file in the default paths.
// Returns the path to the first file found, or empty string if none found.
func findConfigFile() string {
	// Check environment variable first
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}

	// Search default paths
	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// envTransformFunc transforms environment variable names to koanf config paths.
//
// Examples:
//   - TILE_SOURCE_URL_TEMPLATE -> tile_source.url_template
//   - CACHE_MEMO_SIZE -> cache.memo_size
//   - VIEWSHED_DEFAULT_RADIUS_METERS -> viewshed.default_radius_meters
//   - LOG_LEVEL -> logging.level
func envTransformFunc(key string) string {
	key = strings.ToLower(key)

	envMappings := map[string]string{
		// Tile source mappings
		"tile_source_url_template":          "tile_source.url_template",
		"tile_source_api_key":               "tile_source.api_key",
		"tile_source_zoom":                  "tile_source.zoom",
		"tile_source_tile_size":             "tile_source.tile_size",
		"tile_source_timeout":               "tile_source.timeout",
		"tile_source_breaker_max_requests":  "tile_source.breaker_max_requests",
		"tile_source_breaker_interval":      "tile_source.breaker_interval",
		"tile_source_breaker_timeout":       "tile_source.breaker_timeout",
		"tile_source_breaker_failure_ratio": "tile_source.breaker_failure_ratio",
		"tile_source_breaker_min_requests":  "tile_source.breaker_min_requests",

		// Cache mappings
		"cache_memo_size":       "cache.memo_size",
		"cache_byte_store_path": "cache.byte_store_path",
		"cache_byte_store_ttl":  "cache.byte_store_ttl",

		// Viewshed mappings
		"viewshed_default_radius_meters":     "viewshed.default_radius_meters",
		"viewshed_max_radius_meters":         "viewshed.max_radius_meters",
		"viewshed_default_resolution_meters": "viewshed.default_resolution_meters",
		"viewshed_default_rx_height_meters":  "viewshed.default_rx_height_meters",
		"viewshed_default_frequency_mhz":     "viewshed.default_frequency_mhz",

		// Coverage mappings
		"coverage_default_n":               "coverage.default_n",
		"coverage_max_candidates":          "coverage.max_candidates",
		"coverage_grid_resolution_meters":  "coverage.grid_resolution_meters",
		"coverage_max_grid_dimension":      "coverage.max_grid_dimension",

		// Logging mappings
		"log_level":  "logging.level",
		"log_format": "logging.format",
		"log_caller": "logging.caller",
	}

	if mapped, ok := envMappings[key]; ok {
		return mapped
	}

	// For unmapped keys, return empty string to skip them
	// This prevents random environment variables from polluting config
	return ""
}

// GetKoanfInstance returns a new Koanf instance for advanced usage.
// This is useful for testing with mock configurations.
func GetKoanfInstance() *koanf.Koanf {
	return koanf.New(".")
}

// WatchConfigFile sets up a file watcher for hot-reload capability.
// Note: the caller is responsible for mutex protection when accessing
// configuration during reloads.
//
// Example usage:
//
//	var cfgMu sync.RWMutex
//	var cfg *Config
//
//	err := WatchConfigFile(configPath, func() {
//	    cfgMu.Lock()
//	    defer cfgMu.Unlock()
//	    newCfg, err := LoadWithKoanf()
//	    if err != nil {
//	        logging.Error().Err(err).Msg("config reload failed")
//	        return
//	    }
//	    cfg = newCfg
//	})
func WatchConfigFile(path string, callback func()) error {
	provider := file.Provider(path)

	return provider.Watch(func(event interface{}, err error) {
		if err != nil {
			return
		}
		callback()
	})
}

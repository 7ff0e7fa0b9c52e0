// rfplan - RF site-planning engine for low-power wireless mesh deployments
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"time"
)

// Config holds all application configuration loaded from environment variables
// and an optional config file. It is the single source of truth for the
// terrain tile source, the process-local and shared tile caches, the
// upstream circuit breaker, default viewshed/coverage parameters, and
// logging.
//
// Configuration Loading Order (Koanf v2):
//  1. Defaults: built-in sensible defaults for all settings
//  2. Config File: optional YAML config file (config.yaml)
//  3. Environment Variables: override any setting
//
// Example - Load configuration from environment:
//
//	cfg, err := config.LoadWithKoanf()
//	if err != nil {
//	    log.Fatal("failed to load config:", err)
//	}
//	src := terrain.NewHTTPSource(cfg.TileSource)
//	mgr, err := terrain.NewManager(cfg.TileSource, cfg.Cache, src)
//
// Thread Safety:
// Config is immutable after LoadWithKoanf() and safe for concurrent read access
// from multiple goroutines.
type Config struct {
	TileSource TileSourceConfig `koanf:"tile_source"`
	Cache      CacheConfig      `koanf:"cache"`
	Viewshed   ViewshedConfig   `koanf:"viewshed"`
	Coverage   CoverageConfig   `koanf:"coverage"`
	Logging    LoggingConfig    `koanf:"logging"`
}

// TileSourceConfig holds settings for the upstream terrain-RGB tile provider.
//
// Environment Variables:
//   - TILE_SOURCE_URL_TEMPLATE: tile URL template with {z}/{x}/{y} placeholders
//   - TILE_SOURCE_API_KEY: API key appended to requests, if required
//   - TILE_SOURCE_ZOOM: slippy-map zoom level used for elevation lookups
//   - TILE_SOURCE_TILE_SIZE: tile edge length in pixels (typically 256 or 512)
//   - TILE_SOURCE_TIMEOUT: HTTP timeout per tile fetch
//   - TILE_SOURCE_BREAKER_MAX_REQUESTS: half-open probe requests allowed
//   - TILE_SOURCE_BREAKER_INTERVAL: closed-state failure-count reset interval
//   - TILE_SOURCE_BREAKER_TIMEOUT: open-state duration before probing again
//   - TILE_SOURCE_BREAKER_FAILURE_RATIO: failure ratio that trips the breaker
type TileSourceConfig struct {
	// URLTemplate is the tile URL template, e.g.
	// "https://tiles.example.com/terrain-rgb/{z}/{x}/{y}.png".
	URLTemplate string `koanf:"url_template"`

	// APIKey is appended as a query parameter when non-empty.
	APIKey string `koanf:"api_key"`

	// Zoom is the slippy-map zoom level used for all elevation lookups.
	Zoom int `koanf:"zoom"`

	// TileSize is the tile edge length in pixels.
	TileSize int `koanf:"tile_size"`

	// Timeout bounds a single upstream tile fetch.
	Timeout time.Duration `koanf:"timeout"`

	// BreakerMaxRequests is the number of requests allowed through while
	// the circuit breaker is half-open.
	BreakerMaxRequests uint32 `koanf:"breaker_max_requests"`

	// BreakerInterval is the cyclical period in the closed state after
	// which failure counts reset to zero. Zero disables the reset.
	BreakerInterval time.Duration `koanf:"breaker_interval"`

	// BreakerTimeout is how long the breaker stays open before moving to
	// half-open.
	BreakerTimeout time.Duration `koanf:"breaker_timeout"`

	// BreakerFailureRatio is the minimum failure ratio, over
	// BreakerMinRequests samples, that trips the breaker open.
	BreakerFailureRatio float64 `koanf:"breaker_failure_ratio"`

	// BreakerMinRequests is the minimum number of requests in a window
	// before the failure ratio is evaluated.
	BreakerMinRequests uint32 `koanf:"breaker_min_requests"`
}

// CacheConfig holds settings for the two-tier terrain tile cache: a small
// process-local LRU of decoded elevation grids, and a larger shared
// byte-level cache backed by BadgerDB.
//
// Environment Variables:
//   - CACHE_MEMO_SIZE: maximum tiles held in the process-local LRU
//   - CACHE_BYTE_STORE_PATH: BadgerDB directory for the shared byte cache
//   - CACHE_BYTE_STORE_TTL: time-to-live for cached tile bytes
type CacheConfig struct {
	// MemoSize is the maximum number of decoded tiles held in the
	// process-local LRU cache.
	MemoSize int `koanf:"memo_size"`

	// ByteStorePath is the BadgerDB directory used for the shared,
	// persistent byte-level tile cache.
	ByteStorePath string `koanf:"byte_store_path"`

	// ByteStoreTTL is how long cached tile bytes remain valid before a
	// re-fetch is attempted. Zero means no expiry.
	ByteStoreTTL time.Duration `koanf:"byte_store_ttl"`
}

// ViewshedConfig holds default parameters for viewshed grid computation.
//
// Environment Variables:
//   - VIEWSHED_DEFAULT_RADIUS_METERS: default analysis radius
//   - VIEWSHED_MAX_RADIUS_METERS: hard cap on analysis radius
//   - VIEWSHED_DEFAULT_RESOLUTION_METERS: default grid cell size
//   - VIEWSHED_DEFAULT_RX_HEIGHT_METERS: default receiver antenna height
//   - VIEWSHED_DEFAULT_FREQUENCY_MHZ: default link frequency
type ViewshedConfig struct {
	DefaultRadiusMeters     float64 `koanf:"default_radius_meters"`
	MaxRadiusMeters         float64 `koanf:"max_radius_meters"`
	DefaultResolutionMeters float64 `koanf:"default_resolution_meters"`
	DefaultRxHeightMeters   float64 `koanf:"default_rx_height_meters"`
	DefaultFrequencyMHz     float64 `koanf:"default_frequency_mhz"`
}

// CoverageConfig holds default parameters for greedy coverage selection.
//
// Environment Variables:
//   - COVERAGE_DEFAULT_N: default number of nodes to select
//   - COVERAGE_MAX_CANDIDATES: hard cap on candidate sites per run
//   - COVERAGE_GRID_RESOLUTION_METERS: composite master-grid cell size
//   - COVERAGE_MAX_GRID_DIMENSION: hard cap on master-grid width/height in pixels
type CoverageConfig struct {
	DefaultN             int     `koanf:"default_n"`
	MaxCandidates        int     `koanf:"max_candidates"`
	GridResolutionMeters float64 `koanf:"grid_resolution_meters"`
	MaxGridDimension     int     `koanf:"max_grid_dimension"`
}

// LoggingConfig holds logging settings for zerolog.
//
// Environment Variables:
//   - LOG_LEVEL: trace, debug, info, warn, error (default: info)
//   - LOG_FORMAT: json, console (default: json)
//   - LOG_CALLER: true/false - include caller file:line (default: false)
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// rfplan - RF site-planning engine for low-power wireless mesh deployments
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package config provides centralized configuration management for rfplan.

This package handles loading, validation, and defaulting of all settings
used by the terrain tile pipeline, viewshed computation, and coverage
planning. Configuration is layered through Koanf v2: built-in defaults,
an optional YAML file, and environment variable overrides.

# Configuration Structure

The package organizes configuration into logical groups:

  - TileSourceConfig: upstream terrain-RGB tile provider and circuit breaker
  - CacheConfig: two-tier tile cache (process-local LRU + shared byte store)
  - ViewshedConfig: default viewshed radius, resolution, and RF parameters
  - CoverageConfig: default greedy coverage-selection parameters
  - LoggingConfig: zerolog level, format, and caller settings

# Environment Variables

Tile Source (TileSourceConfig):
  - TILE_SOURCE_URL_TEMPLATE: tile URL template with {z}/{x}/{y} placeholders
  - TILE_SOURCE_API_KEY: API key appended to requests, if required
  - TILE_SOURCE_ZOOM: slippy-map zoom level (default: 12)
  - TILE_SOURCE_TILE_SIZE: tile edge length in pixels (default: 256)
  - TILE_SOURCE_TIMEOUT: HTTP timeout per tile fetch (default: 10s)
  - TILE_SOURCE_BREAKER_MAX_REQUESTS: half-open probe requests (default: 3)
  - TILE_SOURCE_BREAKER_INTERVAL: closed-state failure reset period (default: 60s)
  - TILE_SOURCE_BREAKER_TIMEOUT: open-state duration (default: 30s)
  - TILE_SOURCE_BREAKER_FAILURE_RATIO: trip threshold (default: 0.6)
  - TILE_SOURCE_BREAKER_MIN_REQUESTS: minimum sample size (default: 5)

Cache (CacheConfig):
  - CACHE_MEMO_SIZE: process-local LRU capacity in tiles (default: 256)
  - CACHE_BYTE_STORE_PATH: BadgerDB directory (default: /data/rfplan/tilecache)
  - CACHE_BYTE_STORE_TTL: tile byte cache TTL (default: 720h)

Viewshed (ViewshedConfig):
  - VIEWSHED_DEFAULT_RADIUS_METERS: default analysis radius (default: 10000)
  - VIEWSHED_MAX_RADIUS_METERS: hard cap on analysis radius (default: 50000)
  - VIEWSHED_DEFAULT_RESOLUTION_METERS: default grid cell size (default: 30)
  - VIEWSHED_DEFAULT_RX_HEIGHT_METERS: default receiver height (default: 2)
  - VIEWSHED_DEFAULT_FREQUENCY_MHZ: default link frequency (default: 915)

Coverage (CoverageConfig):
  - COVERAGE_DEFAULT_N: default number of nodes to select (default: 5)
  - COVERAGE_MAX_CANDIDATES: hard cap on candidates per run (default: 200)
  - COVERAGE_GRID_RESOLUTION_METERS: master-grid cell size (default: 30)
  - COVERAGE_MAX_GRID_DIMENSION: hard cap on grid width/height (default: 1024)

Logging (LoggingConfig):
  - LOG_LEVEL: trace, debug, info, warn, error (default: info)
  - LOG_FORMAT: json, console (default: json)
  - LOG_CALLER: true/false - include caller file:line (default: false)

# Usage Example

	import "github.com/meshrf/planner/internal/config"

	cfg, err := config.LoadWithKoanf()
	if err != nil {
	    log.Fatalf("failed to load config: %v", err)
	}

	src := terrain.NewHTTPSource(cfg.TileSource)
	mgr, err := terrain.NewManager(cfg.TileSource, cfg.Cache, src)

# Configuration File

An optional YAML config file is searched for at config.yaml, config.yml,
/etc/rfplan/config.yaml, or the path named by CONFIG_PATH:

	tile_source:
	  url_template: "https://tiles.example.com/terrain-rgb/{z}/{x}/{y}.png"
	  zoom: 12
	cache:
	  memo_size: 512
	viewshed:
	  default_radius_meters: 15000
	logging:
	  level: debug

Environment variables always take precedence over the file.

# Validation

Validate() checks required fields, sane numeric ranges (e.g. zoom 0-22,
breaker_failure_ratio in (0,1]), and that default values do not exceed
their corresponding maximums (default_radius_meters <= max_radius_meters,
default_n <= max_candidates).

# Thread Safety

The Config struct is immutable after LoadWithKoanf() returns, making it
safe for concurrent read access from multiple goroutines without
synchronization.

# See Also

  - internal/terrain: consumer of TileSourceConfig and CacheConfig
  - internal/viewshed, internal/coverage: take their parameters from
    their own Options types; no package reads ViewshedConfig or
    CoverageConfig, which are loaded and validated only
  - internal/logging: consumer of LoggingConfig
  - github.com/knadh/koanf/v2: layered configuration library
*/
package config

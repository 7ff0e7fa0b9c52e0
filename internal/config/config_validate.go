// rfplan - RF site-planning engine for low-power wireless mesh deployments
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import "fmt"

var validLogLevels = map[string]bool{
	"trace": true,
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

var validLogFormats = map[string]bool{
	"json":    true,
	"console": true,
}

// Validate checks the configuration for consistency and sane value ranges.
// It is called automatically by LoadWithKoanf but may also be invoked
// directly against a manually constructed Config, e.g. in tests.
func (c *Config) Validate() error {
	if err := c.TileSource.validate(); err != nil {
		return fmt.Errorf("tile_source: %w", err)
	}
	if err := c.Cache.validate(); err != nil {
		return fmt.Errorf("cache: %w", err)
	}
	if err := c.Viewshed.validate(); err != nil {
		return fmt.Errorf("viewshed: %w", err)
	}
	if err := c.Coverage.validate(); err != nil {
		return fmt.Errorf("coverage: %w", err)
	}
	if err := c.Logging.validate(); err != nil {
		return fmt.Errorf("logging: %w", err)
	}
	return nil
}

func (t *TileSourceConfig) validate() error {
	if t.URLTemplate == "" {
		return fmt.Errorf("url_template is required")
	}
	if err := validateHTTPURL(templateToProbeURL(t.URLTemplate), "url_template"); err != nil {
		return err
	}
	if t.Zoom < 0 || t.Zoom > 22 {
		return fmt.Errorf("zoom must be between 0 and 22, got %d", t.Zoom)
	}
	if t.TileSize <= 0 {
		return fmt.Errorf("tile_size must be positive, got %d", t.TileSize)
	}
	if t.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive")
	}
	if t.BreakerFailureRatio <= 0 || t.BreakerFailureRatio > 1 {
		return fmt.Errorf("breaker_failure_ratio must be in (0, 1], got %f", t.BreakerFailureRatio)
	}
	if t.BreakerMinRequests == 0 {
		return fmt.Errorf("breaker_min_requests must be positive")
	}
	return nil
}

// templateToProbeURL replaces the {z}/{x}/{y} placeholders with dummy
// values so the result can be parsed and validated as a well-formed URL.
func templateToProbeURL(template string) string {
	out := make([]byte, 0, len(template))
	skip := false
	for i := 0; i < len(template); i++ {
		c := template[i]
		if c == '{' {
			skip = true
			out = append(out, '0')
			continue
		}
		if c == '}' {
			skip = false
			continue
		}
		if skip {
			continue
		}
		out = append(out, c)
	}
	return string(out)
}

func (c *CacheConfig) validate() error {
	if c.MemoSize <= 0 {
		return fmt.Errorf("memo_size must be positive, got %d", c.MemoSize)
	}
	if c.ByteStorePath == "" {
		return fmt.Errorf("byte_store_path is required")
	}
	if c.ByteStoreTTL < 0 {
		return fmt.Errorf("byte_store_ttl must not be negative")
	}
	return nil
}

func (v *ViewshedConfig) validate() error {
	if v.DefaultRadiusMeters <= 0 {
		return fmt.Errorf("default_radius_meters must be positive, got %f", v.DefaultRadiusMeters)
	}
	if v.MaxRadiusMeters <= 0 {
		return fmt.Errorf("max_radius_meters must be positive, got %f", v.MaxRadiusMeters)
	}
	if v.DefaultRadiusMeters > v.MaxRadiusMeters {
		return fmt.Errorf("default_radius_meters (%f) exceeds max_radius_meters (%f)", v.DefaultRadiusMeters, v.MaxRadiusMeters)
	}
	if v.DefaultResolutionMeters <= 0 {
		return fmt.Errorf("default_resolution_meters must be positive, got %f", v.DefaultResolutionMeters)
	}
	if v.DefaultRxHeightMeters < 0 {
		return fmt.Errorf("default_rx_height_meters must not be negative")
	}
	if v.DefaultFrequencyMHz <= 0 {
		return fmt.Errorf("default_frequency_mhz must be positive, got %f", v.DefaultFrequencyMHz)
	}
	return nil
}

func (c *CoverageConfig) validate() error {
	if c.DefaultN <= 0 {
		return fmt.Errorf("default_n must be positive, got %d", c.DefaultN)
	}
	if c.MaxCandidates <= 0 {
		return fmt.Errorf("max_candidates must be positive, got %d", c.MaxCandidates)
	}
	if c.DefaultN > c.MaxCandidates {
		return fmt.Errorf("default_n (%d) exceeds max_candidates (%d)", c.DefaultN, c.MaxCandidates)
	}
	if c.GridResolutionMeters <= 0 {
		return fmt.Errorf("grid_resolution_meters must be positive, got %f", c.GridResolutionMeters)
	}
	if c.MaxGridDimension <= 0 {
		return fmt.Errorf("max_grid_dimension must be positive, got %d", c.MaxGridDimension)
	}
	return nil
}

func (l *LoggingConfig) validate() error {
	if !validLogLevels[l.Level] {
		return fmt.Errorf("level must be one of trace,debug,info,warn,error, got %q", l.Level)
	}
	if !validLogFormats[l.Format] {
		return fmt.Errorf("format must be one of json,console, got %q", l.Format)
	}
	return nil
}

// rfplan - RF site-planning engine for low-power wireless mesh deployments
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// TestDefaultConfig verifies that defaultConfig() returns proper defaults.
func TestDefaultConfig(t *testing.T) {
	cfg := defaultConfig()

	if cfg.TileSource.Zoom != 12 {
		t.Errorf("TileSource.Zoom = %d, want 12", cfg.TileSource.Zoom)
	}
	if cfg.TileSource.TileSize != 256 {
		t.Errorf("TileSource.TileSize = %d, want 256", cfg.TileSource.TileSize)
	}
	if cfg.TileSource.Timeout != 10*time.Second {
		t.Errorf("TileSource.Timeout = %v, want 10s", cfg.TileSource.Timeout)
	}
	if cfg.TileSource.BreakerFailureRatio != 0.6 {
		t.Errorf("TileSource.BreakerFailureRatio = %v, want 0.6", cfg.TileSource.BreakerFailureRatio)
	}

	if cfg.Cache.MemoSize != 256 {
		t.Errorf("Cache.MemoSize = %d, want 256", cfg.Cache.MemoSize)
	}
	if cfg.Cache.ByteStorePath != "/data/rfplan/tilecache" {
		t.Errorf("Cache.ByteStorePath = %q, want /data/rfplan/tilecache", cfg.Cache.ByteStorePath)
	}

	if cfg.Viewshed.DefaultRadiusMeters != 10000 {
		t.Errorf("Viewshed.DefaultRadiusMeters = %v, want 10000", cfg.Viewshed.DefaultRadiusMeters)
	}
	if cfg.Viewshed.DefaultFrequencyMHz != 915 {
		t.Errorf("Viewshed.DefaultFrequencyMHz = %v, want 915", cfg.Viewshed.DefaultFrequencyMHz)
	}

	if cfg.Coverage.DefaultN != 5 {
		t.Errorf("Coverage.DefaultN = %d, want 5", cfg.Coverage.DefaultN)
	}
	if cfg.Coverage.MaxCandidates != 200 {
		t.Errorf("Coverage.MaxCandidates = %d, want 200", cfg.Coverage.MaxCandidates)
	}

	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level = %q, want info", cfg.Logging.Level)
	}
	if cfg.Logging.Format != "json" {
		t.Errorf("Logging.Format = %q, want json", cfg.Logging.Format)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("defaultConfig() should be valid, got: %v", err)
	}
}

func TestFindConfigFile_None(t *testing.T) {
	dir := t.TempDir()
	cwd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	defer os.Chdir(cwd)

	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	os.Unsetenv(ConfigPathEnvVar)

	if got := findConfigFile(); got != "" {
		t.Errorf("findConfigFile() = %q, want empty string", got)
	}
}

func TestFindConfigFile_DefaultPath(t *testing.T) {
	dir := t.TempDir()
	cwd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	defer os.Chdir(cwd)

	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	os.Unsetenv(ConfigPathEnvVar)

	if err := os.WriteFile("config.yaml", []byte("logging:\n  level: debug\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if got := findConfigFile(); got != "config.yaml" {
		t.Errorf("findConfigFile() = %q, want config.yaml", got)
	}
}

func TestFindConfigFile_EnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	if err := os.WriteFile(path, []byte("logging:\n  level: debug\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	os.Setenv(ConfigPathEnvVar, path)
	defer os.Unsetenv(ConfigPathEnvVar)

	if got := findConfigFile(); got != path {
		t.Errorf("findConfigFile() = %q, want %q", got, path)
	}
}

func TestEnvTransformFunc(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"TILE_SOURCE_URL_TEMPLATE", "tile_source.url_template"},
		{"TILE_SOURCE_ZOOM", "tile_source.zoom"},
		{"CACHE_MEMO_SIZE", "cache.memo_size"},
		{"VIEWSHED_DEFAULT_RADIUS_METERS", "viewshed.default_radius_meters"},
		{"COVERAGE_DEFAULT_N", "coverage.default_n"},
		{"LOG_LEVEL", "logging.level"},
		{"SOME_RANDOM_VAR", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := envTransformFunc(tt.in); got != tt.want {
				t.Errorf("envTransformFunc(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestLoadWithKoanf_Defaults(t *testing.T) {
	dir := t.TempDir()
	cwd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	defer os.Chdir(cwd)
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	os.Unsetenv(ConfigPathEnvVar)

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}
	if cfg.TileSource.Zoom != 12 {
		t.Errorf("TileSource.Zoom = %d, want 12", cfg.TileSource.Zoom)
	}
}

func TestLoadWithKoanf_EnvOverride(t *testing.T) {
	dir := t.TempDir()
	cwd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	defer os.Chdir(cwd)
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	os.Unsetenv(ConfigPathEnvVar)

	os.Setenv("TILE_SOURCE_ZOOM", "14")
	os.Setenv("LOG_LEVEL", "debug")
	defer os.Unsetenv("TILE_SOURCE_ZOOM")
	defer os.Unsetenv("LOG_LEVEL")

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}
	if cfg.TileSource.Zoom != 14 {
		t.Errorf("TileSource.Zoom = %d, want 14 (from env)", cfg.TileSource.Zoom)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want debug (from env)", cfg.Logging.Level)
	}
}

func TestLoadWithKoanf_InvalidEnvFailsValidation(t *testing.T) {
	dir := t.TempDir()
	cwd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	defer os.Chdir(cwd)
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	os.Unsetenv(ConfigPathEnvVar)

	os.Setenv("LOG_LEVEL", "not-a-level")
	defer os.Unsetenv("LOG_LEVEL")

	if _, err := LoadWithKoanf(); err == nil {
		t.Fatal("expected validation error for invalid LOG_LEVEL")
	}
}

func TestGetKoanfInstance(t *testing.T) {
	k := GetKoanfInstance()
	if k == nil {
		t.Fatal("GetKoanfInstance() returned nil")
	}
}

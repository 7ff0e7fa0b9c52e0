// rfplan - RF site-planning engine for low-power wireless mesh deployments
// SPDX-License-Identifier: AGPL-3.0-or-later

package metrics

import (
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus metrics for rfplan. Grouped by subsystem:
// terrain tile caching, upstream tile fetch, circuit breaker state,
// viewshed computation, coverage planning and the link graph.

var (
	// Terrain Tile Cache Metrics
	TileCacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "terrain_tile_cache_hits_total",
			Help: "Total number of terrain tile cache hits",
		},
		[]string{"tier"}, // "memo" (process-local LRU) or "byte" (shared KV cache)
	)

	TileCacheMisses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "terrain_tile_cache_misses_total",
			Help: "Total number of terrain tile cache misses",
		},
		[]string{"tier"},
	)

	TileCacheSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "terrain_tile_memo_entries",
			Help: "Current number of tiles held in the process-local LRU cache",
		},
	)

	TileCacheEvictions = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "terrain_tile_memo_evictions_total",
			Help: "Total number of tiles evicted from the process-local LRU cache",
		},
	)

	// Upstream Tile Source Metrics
	TileFetchDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "terrain_tile_fetch_duration_seconds",
			Help:    "Duration of upstream terrain tile fetches in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	TileFetchErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "terrain_tile_fetch_errors_total",
			Help: "Total number of upstream terrain tile fetch errors",
		},
		[]string{"error_type"}, // "timeout", "not_found", "corrupt", "breaker_open"
	)

	TileFetchCoalesced = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "terrain_tile_fetch_coalesced_total",
			Help: "Total number of tile fetches served by singleflight coalescing instead of a new upstream call",
		},
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_state_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from_state", "to_state"},
	)

	// Viewshed Metrics
	ViewshedDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "viewshed_duration_seconds",
			Help:    "Duration of viewshed grid computation in seconds",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
	)

	ViewshedGridCells = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "viewshed_grid_cells",
			Help:    "Number of cells evaluated per viewshed grid",
			Buckets: []float64{100, 500, 1000, 5000, 10000, 50000, 100000},
		},
	)

	// Coverage Planning Metrics
	CoverageRunDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "coverage_run_duration_seconds",
			Help:    "Duration of a full greedy coverage selection run in seconds",
			Buckets: []float64{0.5, 1, 5, 10, 30, 60, 120, 300, 600},
		},
	)

	CoverageCandidatesEvaluated = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "coverage_candidates_evaluated",
			Help:    "Number of candidate sites evaluated per coverage run",
			Buckets: []float64{1, 5, 10, 25, 50, 100, 250, 500},
		},
	)

	CoverageNodesSelected = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "coverage_nodes_selected",
			Help:    "Number of nodes selected per coverage run",
			Buckets: []float64{1, 2, 3, 5, 8, 13, 21, 34},
		},
	)

	CoverageErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "coverage_errors_total",
			Help: "Total number of coverage run errors",
		},
		[]string{"error_type"}, // "terrain_unavailable", "cancelled", "invalid_input"
	)

	// Link Graph Metrics
	LinkGraphPairsAnalyzed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "link_graph_pairs_analyzed_total",
			Help: "Total number of inter-node link pairs analyzed",
		},
	)

	LinkAnalysisDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "link_analysis_duration_seconds",
			Help:    "Duration of a single point-to-point link analysis in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5},
		},
	)

	// System Metrics
	AppInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "app_info",
			Help: "Application version and build information",
		},
		[]string{"version", "go_version"},
	)

	AppUptime = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "app_uptime_seconds",
			Help: "Application uptime in seconds",
		},
	)
)

// RecordTileFetch records an upstream terrain tile fetch.
func RecordTileFetch(duration time.Duration, err error) {
	TileFetchDuration.Observe(duration.Seconds())
	if err != nil {
		TileFetchErrors.WithLabelValues(classifyFetchError(err)).Inc()
	}
}

// RecordCacheHit records a cache hit for the given tier ("memo" or "byte").
func RecordCacheHit(tier string) {
	TileCacheHits.WithLabelValues(tier).Inc()
}

// RecordCacheMiss records a cache miss for the given tier ("memo" or "byte").
func RecordCacheMiss(tier string) {
	TileCacheMisses.WithLabelValues(tier).Inc()
}

// RecordViewshedRun records a completed viewshed computation.
func RecordViewshedRun(duration time.Duration, cells int) {
	ViewshedDuration.Observe(duration.Seconds())
	ViewshedGridCells.Observe(float64(cells))
}

// RecordCoverageRun records a completed coverage selection run.
func RecordCoverageRun(duration time.Duration, candidates, selected int, err error) {
	CoverageRunDuration.Observe(duration.Seconds())
	CoverageCandidatesEvaluated.Observe(float64(candidates))
	if err != nil {
		CoverageErrors.WithLabelValues(classifyCoverageError(err)).Inc()
		return
	}
	CoverageNodesSelected.Observe(float64(selected))
}

// RecordLinkAnalysis records a single point-to-point link analysis.
func RecordLinkAnalysis(duration time.Duration) {
	LinkAnalysisDuration.Observe(duration.Seconds())
	LinkGraphPairsAnalyzed.Inc()
}

func classifyFetchError(err error) string {
	msg := err.Error()
	switch {
	case strings.Contains(msg, "breaker"):
		return "breaker_open"
	case strings.Contains(msg, "not found"), strings.Contains(msg, "404"):
		return "not_found"
	case strings.Contains(msg, "corrupt"):
		return "corrupt"
	case strings.Contains(msg, "deadline"), strings.Contains(msg, "timeout"):
		return "timeout"
	default:
		return "unknown"
	}
}

func classifyCoverageError(err error) string {
	msg := err.Error()
	switch {
	case strings.Contains(msg, "terrain"):
		return "terrain_unavailable"
	case strings.Contains(msg, "cancel"):
		return "cancelled"
	case strings.Contains(msg, "invalid"):
		return "invalid_input"
	default:
		return "unknown"
	}
}

// rfplan - RF site-planning engine for low-power wireless mesh deployments
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package metrics provides Prometheus metrics collection for rfplan.

This package implements instrumentation using the Prometheus client library,
exposing metrics for terrain tile caching, upstream tile fetches, the
upstream circuit breaker, viewshed computation and greedy coverage planning.

# Overview

The package provides metrics for:
  - Terrain tile cache hit/miss rates, split by cache tier (process-local
    LRU vs. shared byte cache)
  - Upstream terrain tile fetch latency and error classification
  - Circuit breaker state transitions for the upstream tile source
  - Viewshed grid computation duration and cell counts
  - Coverage run duration, candidates evaluated, and nodes selected
  - Pairwise link graph analysis counts and latency

# Metrics Endpoint

cmd/rfplan does not serve metrics; a process that does can expose the
default registry via promhttp.Handler():

	http.Handle("/metrics", promhttp.Handler())

# Usage Example

	import "github.com/meshrf/planner/internal/metrics"

	start := time.Now()
	data, err := src.Fetch(ctx, key)
	metrics.RecordTileFetch(time.Since(start), err)

	start = time.Now()
	v, err := viewshed.CalculateViewshed(ctx, tm, tx, txHeightM, radiusM, opts)
	metrics.RecordViewshedRun(time.Since(start), v.Rows*v.Cols)

# Cardinality Management

Label dimensions are kept small and bounded:
  - tier: "memo" or "byte"
  - error_type: a small fixed set of classifications
  - name: circuit breaker name (one per upstream tile source)

# Thread Safety

All metric recording functions are thread-safe; the Prometheus client
library handles synchronization internally.

# See Also

  - internal/terrain: tile cache and upstream fetch instrumentation
  - internal/coverage: coverage run and link graph instrumentation
  - https://prometheus.io/docs/practices/naming/: Metric naming conventions
*/
package metrics

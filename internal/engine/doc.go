// rfplan - RF site-planning engine for low-power wireless mesh deployments
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package engine exposes the programmatic API described in spec.md §6 as
methods on a single Engine facade: elevation lookup, link analysis,
candidate scoring, coverage selection, and terrain tile retrieval.

# Overview

Engine's only field is the terrain manager, constructed once by the
caller (cmd/rfplan) and passed to New. There is no global tile manager:
any number of callers — a CLI, an HTTP handler, a job-queue worker —
can each hold their own Engine. Logging and metrics are not fields;
they go through the package-level logger in internal/logging and the
package-level collectors in internal/metrics.

# Usage Example

	eng := engine.New(tileManager)
	result, err := eng.CalculateLink(ctx, engine.LinkParams{
	    TX: terrain.Coordinate{Lat: 40.0, Lon: -105.0},
	    RX: terrain.Coordinate{Lat: 40.05, Lon: -105.05},
	    FrequencyMHz: 915,
	})

# See Also

  - internal/terrain, internal/physics, internal/viewshed,
    internal/coverage: the subsystems Engine composes
  - cmd/rfplan: the CLI shell built against this facade
*/
package engine

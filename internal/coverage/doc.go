// rfplan - RF site-planning engine for low-power wireless mesh deployments
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package coverage selects a subset of candidate sites that maximises
joint viewshed coverage (classic greedy submodular maximisation),
scores individual candidates against existing network nodes, analyzes
the pairwise link graph among a selected set, and renders a composite
coverage raster.

# Overview

  - ScoreCandidates ranks standalone candidates by a weighted,
    normalised blend of elevation, topographic prominence, and Fresnel
    clearance to existing nodes.
  - SelectCoverage runs the greedy submodular selection algorithm over
    per-candidate viewsheds mapped into a shared master grid, with
    deterministic tie-breaking and marginal-coverage reporting.
  - BuildLinkGraph analyzes every pairwise link among a selected set.
  - BuildComposite renders the union of selected viewsheds onto a
    single raster for downstream image encoding.

# Concurrency

Per-candidate viewshed computation fans out via
golang.org/x/sync/errgroup, with at most 16 candidates evaluated at
once (internal/viewshed bounds its own per-row fan-out separately, at
GOMAXPROCS*4 rows).

# See Also

  - internal/viewshed: supplies the per-candidate visibility grids
  - internal/physics: supplies AnalyzeLink/CalculatePathLoss for the
    link graph
*/
package coverage

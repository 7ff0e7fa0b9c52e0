// rfplan - RF site-planning engine for low-power wireless mesh deployments
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package viewshed computes single-transmitter visibility grids: for a
lat/lon bounding box around a transmitter, which cells can maintain a
Fresnel-clear (or at minimum line-of-sight) link back to it.

# Overview

CalculateViewshed builds a coarse regular grid bracketing the
transmitter, and for every cell within radius evaluates a short
elevation profile through internal/physics.AnalyzeLink. Individual
cell failures (profile fetch errors, numeric edge cases) are swallowed
and the cell is left unmarked — a single bad tile must not fail the
whole job.

# Concurrency

Row evaluation fans out across a bounded worker pool via
golang.org/x/sync/errgroup; terrain profile fetches dominate runtime,
so parallelism here is what keeps a single-node viewshed tractable at
interactive latency.

# See Also

  - internal/terrain: supplies elevation profiles
  - internal/physics: supplies the clearance/status evaluation
  - internal/coverage: composes many viewsheds into a selection
*/
package viewshed

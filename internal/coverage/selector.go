// rfplan - RF site-planning engine for low-power wireless mesh deployments
// SPDX-License-Identifier: AGPL-3.0-or-later

package coverage

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/meshrf/planner/internal/metrics"
	"github.com/meshrf/planner/internal/terrain"
	"github.com/meshrf/planner/internal/viewshed"
)

// cell is a quantised master-grid coordinate.
type cell struct{ row, col int }

// SelectCoverage chooses n candidates maximising joint viewshed
// coverage via classic greedy submodular maximisation (spec.md §4.4).
// n is an explicit parameter — unlike the source's greedy_coverage,
// which silently used the enclosing scope's num_nodes instead of its
// own n_select parameter, a bug this signature makes structurally
// impossible to reintroduce.
func SelectCoverage(ctx context.Context, tm *terrain.Manager, candidates []Candidate, n int, opts Options, progress ProgressFunc) (Result, error) {
	start := time.Now()
	opts = opts.defaulted()
	if progress == nil {
		progress = func(int, string) {}
	}
	if n > len(candidates) {
		n = len(candidates)
	}

	pixelSets, err := computeViewshedPixelSets(ctx, tm, candidates, opts, progress)
	if err != nil {
		metrics.RecordCoverageRun(time.Since(start), len(candidates), 0, err)
		return Result{}, err
	}

	selected, order := greedySelect(pixelSets, n, progress)

	nodes := make([]SelectedNode, len(selected))
	covered := make(map[cell]struct{})
	totalAreaKM2 := 0.0
	grid := newMasterGrid(candidates, opts.RadiusM, 1000, opts.GridResolutionMeters, opts.MaxGridDimension)

	for i, idx := range order {
		pixels := pixelSets[idx]
		marginal := 0
		for c := range pixels {
			if _, ok := covered[c]; !ok {
				covered[c] = struct{}{}
				marginal++
			}
		}
		marginalArea := float64(marginal) * grid.cellAreaKM2()
		totalAreaKM2 += marginalArea

		pct := 0.0
		if len(pixels) > 0 {
			pct = float64(marginal) / float64(len(pixels)) * 100.0
		}

		nodes[i] = SelectedNode{
			Candidate:         candidates[idx],
			CandidateIndex:    idx,
			MarginalPixels:    marginal,
			MarginalAreaKM2:   marginalArea,
			UniqueCoveragePct: pct,
		}
	}

	orderedCandidates := make([]Candidate, len(order))
	for i, idx := range order {
		orderedCandidates[i] = candidates[idx]
	}
	links := BuildLinkGraph(ctx, tm, orderedCandidates, opts)
	annotateConnectivity(nodes, links)

	composite := BuildComposite(grid, selected, pixelSets)

	progress(100, "coverage selection complete")
	metrics.RecordCoverageRun(time.Since(start), len(candidates), len(nodes), nil)

	return Result{
		Selected:               nodes,
		Links:                  links,
		TotalUniqueCoverageKM2: totalAreaKM2,
		Composite:              composite,
	}, nil
}

// computeViewshedPixelSets computes every candidate's viewshed and
// maps its visible cells into the shared master grid, reporting
// progress up to 50% (spec.md §4.4 step 1).
func computeViewshedPixelSets(ctx context.Context, tm *terrain.Manager, candidates []Candidate, opts Options, progress ProgressFunc) ([]map[cell]struct{}, error) {
	grid := newMasterGrid(candidates, opts.RadiusM, 1000, opts.GridResolutionMeters, opts.MaxGridDimension)

	pixelSets := make([]map[cell]struct{}, len(candidates))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(rowWorkersFor(len(candidates)))

	for i, c := range candidates {
		i, c := i, c
		g.Go(func() error {
			v, err := viewshed.CalculateViewshed(gctx, tm, terrain.Coordinate{Lat: c.Lat, Lon: c.Lon}, candidateHeight(c), opts.RadiusM, viewshed.Options{
				RxHeightM:        opts.RxHeightM,
				FrequencyMHz:     opts.FrequencyMHz,
				ResolutionMeters: opts.ResolutionMeters,
				K:                opts.K,
				ClutterM:         opts.ClutterM,
			})
			if err != nil {
				// Per-candidate viewshed failure is local: this
				// candidate contributes an empty pixel set and the
				// job continues (spec.md §7 "local" failure policy).
				pixelSets[i] = map[cell]struct{}{}
				return nil
			}

			pixels := make(map[cell]struct{})
			for r, row := range v.Visible {
				for col, ok := range row {
					if !ok {
						continue
					}
					y, okY := grid.latToY(v.Lats[r])
					x, okX := grid.lonToX(v.Lons[col])
					if okY && okX {
						pixels[cell{row: y, col: x}] = struct{}{}
					}
				}
			}
			pixelSets[i] = pixels
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	progress(50, "per-candidate viewsheds computed")
	return pixelSets, nil
}

// greedySelect runs the greedy submodular maximisation loop (spec.md
// §4.4 steps 2-3): repeatedly pick the unselected candidate with
// greatest marginal gain, tie-broken by lowest input index, stopping
// early once the best remaining marginal gain is <= 0.
func greedySelect(pixelSets []map[cell]struct{}, n int, progress ProgressFunc) (map[int]bool, []int) {
	selected := make(map[int]bool, n)
	order := make([]int, 0, n)
	covered := make(map[cell]struct{})

	for round := 0; round < n; round++ {
		bestIdx := -1
		bestGain := 0

		// Iterating candidates in ascending input-index order and
		// requiring a STRICT improvement to replace bestIdx makes the
		// lowest input index win every tie (spec.md §4.4 step 4).
		for i, pixels := range pixelSets {
			if selected[i] {
				continue
			}
			gain := 0
			for c := range pixels {
				if _, ok := covered[c]; !ok {
					gain++
				}
			}
			if gain > bestGain {
				bestGain = gain
				bestIdx = i
			}
		}

		if bestIdx == -1 || bestGain <= 0 {
			break
		}

		selected[bestIdx] = true
		order = append(order, bestIdx)
		for c := range pixelSets[bestIdx] {
			covered[c] = struct{}{}
		}

		pct := 50 + int(float64(round+1)/float64(n)*50.0)
		progress(pct, "greedy selection in progress")
	}

	return selected, order
}

func candidateHeight(c Candidate) float64 {
	if c.HeightM == 0 {
		return defaultCandidateTxHeightM
	}
	return c.HeightM
}

func rowWorkersFor(n int) int {
	if n < 1 {
		return 1
	}
	if n > 16 {
		return 16
	}
	return n
}

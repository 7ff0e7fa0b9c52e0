// rfplan - RF site-planning engine for low-power wireless mesh deployments
// SPDX-License-Identifier: AGPL-3.0-or-later

package engine

import (
	"context"
	"time"

	"github.com/meshrf/planner/internal/coverage"
	"github.com/meshrf/planner/internal/logging"
	"github.com/meshrf/planner/internal/metrics"
	"github.com/meshrf/planner/internal/physics"
	"github.com/meshrf/planner/internal/terrain"
)

// Engine is the programmatic facade described in spec.md §6. It holds
// no package-level mutable state; every dependency is an explicit
// field, constructed once by the caller.
type Engine struct {
	tm *terrain.Manager
}

// New constructs an Engine backed by tm.
func New(tm *terrain.Manager) *Engine {
	return &Engine{tm: tm}
}

// GetElevation returns the elevation at (lat, lon). Errors surface
// directly to the caller (spec.md §7: "Single-point GetElevation
// surfaces the error").
func (e *Engine) GetElevation(ctx context.Context, lat, lon float64) (terrain.Elevation, error) {
	return e.tm.GetElevation(ctx, lat, lon)
}

// GetElevationBatch returns elevations for coords, in input order.
// Per-tile failures are masked as NoData rather than propagated
// (spec.md §7).
func (e *Engine) GetElevationBatch(ctx context.Context, coords []terrain.Coordinate) ([]terrain.Elevation, error) {
	return e.tm.GetElevationsBatch(ctx, coords)
}

// GetTerrainTile returns an interpolated grid at the exact pixel
// geometry of web-mercator tile (z, x, y), for terrain-RGB encoding.
func (e *Engine) GetTerrainTile(ctx context.Context, z, x, y int) (*terrain.Grid, error) {
	return e.tm.GetTerrainTile(ctx, z, x, y)
}

// LinkParams bundles CalculateLink's inputs.
type LinkParams struct {
	TX, RX         terrain.Coordinate
	FrequencyMHz   float64
	TxHeightM      float64
	RxHeightM      float64
	Model          physics.PathLossModel
	Environment    physics.Environment
	K              float64
	ClutterM       float64
	ProfileSamples int
}

// LinkOutcome is CalculateLink's return value (spec.md §6 LinkResult).
type LinkOutcome struct {
	physics.LinkResult
	PathLossDB float64
	Profile    terrain.Profile
	ModelUsed  physics.PathLossModel
}

// CalculateLink fetches an elevation profile between p.TX and p.RX and
// runs the full physics analysis (spec.md §6 CalculateLink).
func (e *Engine) CalculateLink(ctx context.Context, p LinkParams) (LinkOutcome, error) {
	start := time.Now()
	defer func() { metrics.RecordLinkAnalysis(time.Since(start)) }()

	samples := p.ProfileSamples
	if samples == 0 {
		samples = 50
	}

	profile, err := e.tm.GetElevationProfile(ctx, p.TX, p.RX, samples)
	if err != nil {
		return LinkOutcome{}, err
	}

	freq := p.FrequencyMHz
	if freq == 0 {
		freq = 915
	}

	link := physics.AnalyzeLink(physics.LinkRequest{
		Profile:      profile,
		FrequencyMHz: freq,
		TxHeightM:    p.TxHeightM,
		RxHeightM:    p.RxHeightM,
		Environment:  p.Environment,
		K:            p.K,
		ClutterM:     p.ClutterM,
	})

	model := p.Model
	pathLoss := physics.CalculatePathLoss(physics.PathLossRequest{
		Model:       model,
		DistanceM:   profile.DistanceM,
		ProfileM:    profileMeters(profile),
		FreqMHz:     freq,
		TxHeightM:   p.TxHeightM,
		RxHeightM:   p.RxHeightM,
		Environment: p.Environment,
		K:           p.K,
		ClutterM:    p.ClutterM,
	})

	return LinkOutcome{
		LinkResult: link,
		PathLossDB: pathLoss,
		Profile:    profile,
		ModelUsed:  model,
	}, nil
}

// ScoreCandidates ranks candidates against existingNodes (spec.md §6
// ScoreCandidates).
func (e *Engine) ScoreCandidates(ctx context.Context, candidates []coverage.Candidate, weights coverage.Weights, existingNodes []coverage.ExistingNode, freqMHz float64) ([]coverage.Candidate, error) {
	return coverage.ScoreCandidates(ctx, e.tm, candidates, weights, existingNodes, freqMHz)
}

// RunCoverage selects n candidates maximising joint coverage and
// builds the accompanying link graph and composite raster (spec.md §6
// RunCoverage). Every call runs under a fresh job ID, stamped onto ctx
// so every log line the job emits (and every line from the packages it
// calls through logging.Ctx*) carries it, the same way the teacher
// stamps requests with a correlation ID.
func (e *Engine) RunCoverage(ctx context.Context, candidates []coverage.Candidate, n int, opts coverage.Options, progress coverage.ProgressFunc) (coverage.Result, error) {
	ctx = logging.ContextWithNewJobID(ctx)
	logging.CtxInfo(ctx).Int("candidates", len(candidates)).Int("n", n).Msg("coverage job started")

	result, err := coverage.SelectCoverage(ctx, e.tm, candidates, n, opts, progress)
	if err != nil {
		logging.CtxErr(ctx, err).Msg("coverage job failed")
		return coverage.Result{}, err
	}

	logging.CtxInfo(ctx).
		Int("selected", len(result.Selected)).
		Float64("total_unique_coverage_km2", result.TotalUniqueCoverageKM2).
		Msg("coverage job completed")
	return result, nil
}

func profileMeters(p terrain.Profile) []float64 {
	out := make([]float64, len(p.Samples))
	for i, s := range p.Samples {
		if !s.NoData {
			out[i] = s.Meters
		}
	}
	return out
}

// rfplan - RF site-planning engine for low-power wireless mesh deployments
// SPDX-License-Identifier: AGPL-3.0-or-later

package viewshed

import (
	"context"
	"math"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/meshrf/planner/internal/metrics"
	"github.com/meshrf/planner/internal/physics"
	"github.com/meshrf/planner/internal/terrain"
)

const metersPerDegreeLat = 111320.0

// rowWorkers bounds the number of rows evaluated concurrently; profile
// fetches dominate runtime so this trades memory pressure on the
// terrain cache against wall-clock latency.
var rowWorkers = runtime.GOMAXPROCS(0) * 4

// CalculateViewshed computes the single-transmitter visibility grid
// for tx at the given height and radius (spec.md §4.3). tm supplies
// elevation profiles; the returned grid is coarse by design — see the
// package doc comment.
func CalculateViewshed(ctx context.Context, tm *terrain.Manager, tx terrain.Coordinate, txHeightM, radiusM float64, opts Options) (Viewshed, error) {
	start := time.Now()
	opts = opts.defaulted()

	latDegPerM := 1.0 / metersPerDegreeLat
	lonDegPerM := 1.0 / (metersPerDegreeLat * math.Cos(tx.Lat*math.Pi/180.0))

	latRadius := radiusM * latDegPerM
	lonRadius := radiusM * lonDegPerM

	minLat, maxLat := tx.Lat-latRadius, tx.Lat+latRadius
	minLon, maxLon := tx.Lon-lonRadius, tx.Lon+lonRadius

	effResM := math.Max(opts.ResolutionMeters, 100)

	rows := int((maxLat - minLat) / (effResM * latDegPerM))
	cols := int((maxLon - minLon) / (effResM * lonDegPerM))
	if rows > opts.MaxGridDimension {
		rows = opts.MaxGridDimension
	}
	if cols > opts.MaxGridDimension {
		cols = opts.MaxGridDimension
	}
	if rows < 1 {
		rows = 1
	}
	if cols < 1 {
		cols = 1
	}

	lats := linspace(minLat, maxLat, rows)
	lons := linspace(minLon, maxLon, cols)

	visible := make([][]bool, rows)
	for r := range visible {
		visible[r] = make([]bool, cols)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(rowWorkers)

	for r := 0; r < rows; r++ {
		r := r
		g.Go(func() error {
			evaluateRow(gctx, tm, tx, txHeightM, radiusM, lats[r], lons, opts, visible[r])
			return nil
		})
	}
	// Every goroutine returns nil (evaluateRow swallows per-pixel
	// failures), so Wait returns nil; on ctx cancellation the remaining
	// rows stop early and their cells stay false.
	if err := g.Wait(); err != nil {
		return Viewshed{}, err
	}

	v := Viewshed{Visible: visible, Lats: lats, Lons: lons, Rows: rows, Cols: cols}
	metrics.RecordViewshedRun(time.Since(start), rows*cols)
	return v, nil
}

// evaluateRow fills one row of the visibility grid. Per-pixel errors
// (profile fetch failure, degenerate geometry) leave the cell false
// and continue — a single bad sample must not fail the whole viewshed.
func evaluateRow(ctx context.Context, tm *terrain.Manager, tx terrain.Coordinate, txHeightM, radiusM, lat float64, lons []float64, opts Options, row []bool) {
	for c, lon := range lons {
		if ctx.Err() != nil {
			return
		}

		distM := physics.HaversineDistance(tx.Lat, tx.Lon, lat, lon)
		if distM > radiusM || distM < 10 {
			continue
		}

		rx := terrain.Coordinate{Lat: lat, Lon: lon}
		profile, err := tm.GetElevationProfile(ctx, tx, rx, opts.ProfileSamples)
		if err != nil {
			continue
		}

		result := physics.AnalyzeLink(physics.LinkRequest{
			Profile:      profile,
			FrequencyMHz: opts.FrequencyMHz,
			TxHeightM:    txHeightM,
			RxHeightM:    opts.RxHeightM,
			K:            opts.K,
			ClutterM:     opts.ClutterM,
		})
		if result.ClearanceRatio >= 0.0 {
			row[c] = true
		}
	}
}

// linspace returns n evenly spaced values from lo to hi inclusive.
// For n == 1 it returns a single value at lo.
func linspace(lo, hi float64, n int) []float64 {
	out := make([]float64, n)
	if n == 1 {
		out[0] = lo
		return out
	}
	step := (hi - lo) / float64(n-1)
	for i := range out {
		out[i] = lo + step*float64(i)
	}
	return out
}

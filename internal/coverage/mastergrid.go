// rfplan - RF site-planning engine for low-power wireless mesh deployments
// SPDX-License-Identifier: AGPL-3.0-or-later

package coverage

import "math"

const metersPerDegreeLat = 111320.0

// masterGrid is the shared coordinate system candidate viewsheds are
// quantised into (spec.md §4.4 "pixel-set representation"): a regular
// lat/lon grid at gridResM metres per cell, capped at maxDim² cells.
type masterGrid struct {
	minLat, minLon float64
	maxLat, maxLon float64
	gridResM       float64
	rows, cols     int
	latDegPerCell  float64
	lonDegPerCell  float64
}

// newMasterGrid builds the grid bounding box covering every candidate
// within radiusM, expanded by a 1 km buffer (spec.md §4.6), with rows
// and cols capped at maxDim.
func newMasterGrid(candidates []Candidate, radiusM, bufferM, gridResM float64, maxDim int) masterGrid {
	minLat, maxLat := math.Inf(1), math.Inf(-1)
	minLon, maxLon := math.Inf(1), math.Inf(-1)

	for _, c := range candidates {
		latDegPerM := 1.0 / metersPerDegreeLat
		lonDegPerM := 1.0 / (metersPerDegreeLat * math.Cos(c.Lat*math.Pi/180.0))
		extentM := radiusM + bufferM

		lo, hi := c.Lat-extentM*latDegPerM, c.Lat+extentM*latDegPerM
		minLat, maxLat = math.Min(minLat, lo), math.Max(maxLat, hi)

		lo, hi = c.Lon-extentM*lonDegPerM, c.Lon+extentM*lonDegPerM
		minLon, maxLon = math.Min(minLon, lo), math.Max(maxLon, hi)
	}

	midLat := (minLat + maxLat) / 2
	latDegPerM := 1.0 / metersPerDegreeLat
	lonDegPerM := 1.0 / (metersPerDegreeLat * math.Cos(midLat*math.Pi/180.0))

	latDegPerCell := gridResM * latDegPerM
	lonDegPerCell := gridResM * lonDegPerM

	rows := int((maxLat-minLat)/latDegPerCell) + 1
	cols := int((maxLon-minLon)/lonDegPerCell) + 1
	if rows > maxDim {
		rows = maxDim
	}
	if cols > maxDim {
		cols = maxDim
	}
	if rows < 1 {
		rows = 1
	}
	if cols < 1 {
		cols = 1
	}

	return masterGrid{
		minLat: minLat, minLon: minLon,
		maxLat: maxLat, maxLon: maxLon,
		gridResM:      gridResM,
		rows:          rows,
		cols:          cols,
		latDegPerCell: latDegPerCell,
		lonDegPerCell: lonDegPerCell,
	}
}

// latToY quantises a latitude to a master-grid row index. ok is false
// if the point falls outside the grid.
func (g masterGrid) latToY(lat float64) (int, bool) {
	y := int((g.maxLat - lat) / g.latDegPerCell)
	return y, y >= 0 && y < g.rows
}

// lonToX quantises a longitude to a master-grid column index. ok is
// false if the point falls outside the grid.
func (g masterGrid) lonToX(lon float64) (int, bool) {
	x := int((lon - g.minLon) / g.lonDegPerCell)
	return x, x >= 0 && x < g.cols
}

// cellAreaKM2 returns the approximate ground area of one master-grid
// cell in square kilometres.
func (g masterGrid) cellAreaKM2() float64 {
	return g.gridResM * g.gridResM / 1e6
}

// rfplan - RF site-planning engine for low-power wireless mesh deployments
// SPDX-License-Identifier: AGPL-3.0-or-later

package terrain

import "math"

// bilinearSample returns the bilinearly interpolated value at
// fractional pixel position (fx, fy) within grid g. Fractional indices
// are clamped to [0, size-1] (spec.md §4.1 "Boundary" rule). NaN
// values (NoData) propagate: if any of the four corners is NoData the
// result is NoData.
func bilinearSample(g *Grid, fx, fy float64) Elevation {
	size := g.Size
	maxIdx := float64(size - 1)

	fx = clamp(fx, 0, maxIdx)
	fy = clamp(fy, 0, maxIdx)

	x0 := int(math.Floor(fx))
	y0 := int(math.Floor(fy))
	x1 := x0 + 1
	y1 := y0 + 1
	if x1 > size-1 {
		x1 = size - 1
	}
	if y1 > size-1 {
		y1 = size - 1
	}

	dx := fx - float64(x0)
	dy := fy - float64(y0)

	v00 := g.Values[y0][x0]
	v10 := g.Values[y0][x1]
	v01 := g.Values[y1][x0]
	v11 := g.Values[y1][x1]

	if isNoData(v00) || isNoData(v10) || isNoData(v01) || isNoData(v11) {
		return Elevation{NoData: true}
	}

	top := v00*(1-dx) + v10*dx
	bottom := v01*(1-dx) + v11*dx
	value := top*(1-dy) + bottom*dy

	return Elevation{Meters: value}
}

func isNoData(v float64) bool {
	return math.IsNaN(v)
}

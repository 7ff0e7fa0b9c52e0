// rfplan - RF site-planning engine for low-power wireless mesh deployments
// SPDX-License-Identifier: AGPL-3.0-or-later

package coverage

import "testing"

func TestBuildComposite_WritesSelectedCellsOnly(t *testing.T) {
	grid := masterGrid{rows: 3, cols: 3, minLat: 0, minLon: 0, maxLat: 1, maxLon: 1}
	pixelSets := []map[cell]struct{}{
		{cell{0, 0}: {}, cell{1, 1}: {}},
		{cell{2, 2}: {}},
	}

	composite := BuildComposite(grid, map[int]bool{0: true}, pixelSets)

	if composite.Raster[0][0] != 255 || composite.Raster[1][1] != 255 {
		t.Error("expected selected candidate's cells to be written 255")
	}
	if composite.Raster[2][2] != 0 {
		t.Error("expected unselected candidate's cells to remain 0")
	}
}

func TestBuildComposite_BoundsCopiedFromGrid(t *testing.T) {
	grid := masterGrid{rows: 1, cols: 1, minLat: 10, minLon: 20, maxLat: 11, maxLon: 21}
	composite := BuildComposite(grid, map[int]bool{}, nil)

	if composite.MinLat != 10 || composite.MinLon != 20 || composite.MaxLat != 11 || composite.MaxLon != 21 {
		t.Errorf("bounds = %+v, want copied from grid", composite)
	}
}

// rfplan - RF site-planning engine for low-power wireless mesh deployments
// SPDX-License-Identifier: AGPL-3.0-or-later

package coverage

import "testing"

func TestNewMasterGrid_DimensionCap(t *testing.T) {
	candidates := []Candidate{{Lat: 40.0, Lon: -105.0}}
	grid := newMasterGrid(candidates, 500000, 1000, 100, 32)
	if grid.rows > 32 || grid.cols > 32 {
		t.Errorf("grid %dx%d exceeds cap of 32", grid.rows, grid.cols)
	}
}

func TestMasterGrid_LatToYLonToXRoundTrip(t *testing.T) {
	candidates := []Candidate{{Lat: 40.0, Lon: -105.0}}
	grid := newMasterGrid(candidates, 5000, 1000, 100, 1024)

	y, ok := grid.latToY(candidates[0].Lat)
	if !ok {
		t.Fatal("expected candidate latitude to map inside grid bounds")
	}
	x, ok := grid.lonToX(candidates[0].Lon)
	if !ok {
		t.Fatal("expected candidate longitude to map inside grid bounds")
	}
	if y < 0 || y >= grid.rows || x < 0 || x >= grid.cols {
		t.Errorf("quantised (y,x) = (%d,%d) out of grid bounds %dx%d", y, x, grid.rows, grid.cols)
	}
}

func TestMasterGrid_OutOfBoundsRejected(t *testing.T) {
	candidates := []Candidate{{Lat: 40.0, Lon: -105.0}}
	grid := newMasterGrid(candidates, 1000, 500, 100, 1024)

	if _, ok := grid.latToY(90.0); ok {
		t.Error("expected far-away latitude to fall outside grid")
	}
}

func TestMasterGrid_CellAreaKM2(t *testing.T) {
	grid := masterGrid{gridResM: 100}
	want := 0.01 // 100m x 100m = 0.1km x 0.1km = 0.01 km^2
	if got := grid.cellAreaKM2(); got != want {
		t.Errorf("cellAreaKM2() = %v, want %v", got, want)
	}
}

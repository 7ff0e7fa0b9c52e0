// rfplan - RF site-planning engine for low-power wireless mesh deployments
// SPDX-License-Identifier: AGPL-3.0-or-later

package coverage

// BuildComposite renders the union of the selected candidates'
// viewsheds onto the shared master grid (spec.md §4.6): visible cells
// are written 255, everything else stays 0. The caller is responsible
// for encoding the raster to a portable image format.
func BuildComposite(grid masterGrid, selected map[int]bool, pixelSets []map[cell]struct{}) Composite {
	raster := make([][]byte, grid.rows)
	for r := range raster {
		raster[r] = make([]byte, grid.cols)
	}

	for idx := range selected {
		for c := range pixelSets[idx] {
			raster[c.row][c.col] = 255
		}
	}

	return Composite{
		Raster: raster,
		MinLat: grid.minLat,
		MinLon: grid.minLon,
		MaxLat: grid.maxLat,
		MaxLon: grid.maxLon,
	}
}

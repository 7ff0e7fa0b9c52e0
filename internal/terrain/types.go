// rfplan - RF site-planning engine for low-power wireless mesh deployments
// SPDX-License-Identifier: AGPL-3.0-or-later

package terrain

import (
	"fmt"
	"math"
)

// Coordinate is a WGS84 geographic point in decimal degrees.
// Lat in [-90, 90], Lon in [-180, 180].
type Coordinate struct {
	Lat float64
	Lon float64
}

// Elevation is a single terrain sample. NoData is a distinct sentinel
// and must propagate rather than collapse silently to zero.
type Elevation struct {
	Meters float64
	NoData bool
}

// TileKey identifies a web-mercator slippy-map tile.
type TileKey struct {
	Z, X, Y int
}

// String renders the cache key form "tile:{z}:{x}:{y}" (spec.md §6
// "Persisted state layout").
func (k TileKey) String() string {
	return fmt.Sprintf("tile:%d:%d:%d", k.Z, k.X, k.Y)
}

// TileBounds is the geographic bounding box of a tile, in decimal
// degrees, derived from (z, x, y) via the standard web-mercator tile
// scheme.
type TileBounds struct {
	MinLat, MinLon float64
	MaxLat, MaxLon float64
}

// tileBoundsFor computes the geographic bounds for tile (z, x, y).
func tileBoundsFor(z, x, y int) TileBounds {
	n := math.Pow(2, float64(z))

	minLon := float64(x)/n*360.0 - 180.0
	maxLon := float64(x+1)/n*360.0 - 180.0

	minLatRad := math.Atan(math.Sinh(math.Pi * (1 - 2*float64(y+1)/n)))
	maxLatRad := math.Atan(math.Sinh(math.Pi * (1 - 2*float64(y)/n)))

	return TileBounds{
		MinLat: minLatRad * 180.0 / math.Pi,
		MaxLat: maxLatRad * 180.0 / math.Pi,
		MinLon: minLon,
		MaxLon: maxLon,
	}
}

// tileForCoordinate returns the tile containing (lat, lon) at zoom z,
// together with the coordinate's fractional pixel position within
// that tile (0 <= fx, fy < size).
func tileForCoordinate(lat, lon float64, z, size int) (TileKey, float64, float64) {
	n := math.Pow(2, float64(z))

	x := (lon + 180.0) / 360.0 * n
	latRad := lat * math.Pi / 180.0
	y := (1.0 - math.Log(math.Tan(latRad)+1.0/math.Cos(latRad))/math.Pi) / 2.0 * n

	tileX := int(math.Floor(x))
	tileY := int(math.Floor(y))

	fx := (x - float64(tileX)) * float64(size)
	fy := (y - float64(tileY)) * float64(size)

	return TileKey{Z: z, X: tileX, Y: tileY}, fx, fy
}

// Profile is an ordered sequence of elevation samples along a
// great-circle path between two coordinates, sample 0 at the source
// and sample N-1 at the destination.
type Profile struct {
	Samples   []Elevation
	DistanceM float64
}

// Grid is a regular 2-D array of elevation samples, row-major,
// matching the pixel geometry of a single tile.
type Grid struct {
	Size   int
	Values [][]float64 // Values[row][col], NoData encoded as NaN
}

func newGrid(size int) *Grid {
	values := make([][]float64, size)
	for i := range values {
		values[i] = make([]float64, size)
	}
	return &Grid{Size: size, Values: values}
}

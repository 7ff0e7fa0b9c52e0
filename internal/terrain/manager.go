// rfplan - RF site-planning engine for low-power wireless mesh deployments
// SPDX-License-Identifier: AGPL-3.0-or-later

package terrain

import (
	"context"
	"fmt"
	"math"

	"golang.org/x/sync/singleflight"

	"github.com/meshrf/planner/internal/config"
	"github.com/meshrf/planner/internal/rferrors"
)

// Manager is the caching elevation-sample provider described in
// spec.md §4.1. It is the only component in the system that performs
// I/O.
type Manager struct {
	cfg    config.TileSourceConfig
	source Source
	memo   *tileMemo
	bytes  *byteCache
	group  singleflight.Group
}

// NewManager constructs a Manager backed by source, with a
// process-local LRU sized by cacheCfg.MemoSize and a shared Badger
// byte cache rooted at cacheCfg.ByteStorePath.
func NewManager(tileCfg config.TileSourceConfig, cacheCfg config.CacheConfig, source Source) (*Manager, error) {
	memo, err := newTileMemo(cacheCfg.MemoSize)
	if err != nil {
		return nil, fmt.Errorf("create tile memo: %w", err)
	}

	bc, err := newByteCache(cacheCfg.ByteStorePath, cacheCfg.ByteStoreTTL)
	if err != nil {
		return nil, fmt.Errorf("create tile byte cache: %w", err)
	}

	return &Manager{
		cfg:    tileCfg,
		source: source,
		memo:   memo,
		bytes:  bc,
	}, nil
}

// Close releases the shared byte cache's resources.
func (m *Manager) Close() error {
	return m.bytes.Close()
}

// GetElevation returns the elevation at (lat, lon), bilinearly
// interpolated from the containing tile (spec.md §4.1).
func (m *Manager) GetElevation(ctx context.Context, lat, lon float64) (Elevation, error) {
	key, fx, fy := tileForCoordinate(lat, lon, m.cfg.Zoom, m.cfg.TileSize)

	g, err := m.getTileGrid(ctx, key)
	if err != nil {
		return Elevation{}, err
	}

	return bilinearSample(g, fx, fy), nil
}

// GetElevationsBatch returns elevations for coords, in input order.
// Coordinates are grouped by containing tile so each tile is fetched
// at most once. On a per-tile fetch failure, every coordinate mapped
// to that tile is returned as NoData; other tiles still succeed
// (spec.md §4.1 "Partial failure policy").
func (m *Manager) GetElevationsBatch(ctx context.Context, coords []Coordinate) ([]Elevation, error) {
	out := make([]Elevation, len(coords))

	type tileGroup struct {
		key     TileKey
		indices []int
		fx, fy  []float64
	}
	groups := make(map[TileKey]*tileGroup)
	order := make([]TileKey, 0)

	for i, c := range coords {
		key, fx, fy := tileForCoordinate(c.Lat, c.Lon, m.cfg.Zoom, m.cfg.TileSize)
		grp, ok := groups[key]
		if !ok {
			grp = &tileGroup{key: key}
			groups[key] = grp
			order = append(order, key)
		}
		grp.indices = append(grp.indices, i)
		grp.fx = append(grp.fx, fx)
		grp.fy = append(grp.fy, fy)
	}

	for _, key := range order {
		grp := groups[key]
		g, err := m.getTileGrid(ctx, key)
		if err != nil {
			for _, idx := range grp.indices {
				out[idx] = Elevation{NoData: true}
			}
			continue
		}
		for j, idx := range grp.indices {
			out[idx] = bilinearSample(g, grp.fx[j], grp.fy[j])
		}
	}

	return out, nil
}

// GetElevationProfile samples `samples` elevations evenly spaced in
// arc-length along the great-circle path from a to b (spec.md §4.1
// "Profile great-circle sampling").
func (m *Manager) GetElevationProfile(ctx context.Context, a, b Coordinate, samples int) (Profile, error) {
	if samples < 2 {
		return Profile{}, fmt.Errorf("%w: profile requires at least 2 samples, got %d", rferrors.ErrInvalidParameter, samples)
	}

	points := sampleGreatCircle(a, b, samples)
	elevations, err := m.GetElevationsBatch(ctx, points)
	if err != nil {
		return Profile{}, err
	}

	return Profile{
		Samples:   elevations,
		DistanceM: haversineDistance(a, b),
	}, nil
}

// GetInterpolatedGrid produces a regular size x size grid of
// elevations at the exact pixel geometry of web-mercator tile (z, x,
// y), for use by external tile renderers (spec.md §4.1,
// GetTerrainTile in spec.md §6).
func (m *Manager) GetInterpolatedGrid(ctx context.Context, z, x, y, size int) ([][]Elevation, error) {
	bounds := tileBoundsFor(z, x, y)

	out := make([][]Elevation, size)
	coords := make([]Coordinate, size*size)
	for row := 0; row < size; row++ {
		lat := bounds.MaxLat + (bounds.MinLat-bounds.MaxLat)*float64(row)/float64(size-1)
		for col := 0; col < size; col++ {
			lon := bounds.MinLon + (bounds.MaxLon-bounds.MinLon)*float64(col)/float64(size-1)
			coords[row*size+col] = Coordinate{Lat: lat, Lon: lon}
		}
	}

	elevations, err := m.GetElevationsBatch(ctx, coords)
	if err != nil {
		return nil, err
	}

	for row := 0; row < size; row++ {
		out[row] = elevations[row*size : (row+1)*size]
	}
	return out, nil
}

// GetTerrainTile returns an interpolated grid at the exact pixel
// geometry of web-mercator tile (z, x, y), suitable for terrain-RGB
// encoding (spec.md §6).
func (m *Manager) GetTerrainTile(ctx context.Context, z, x, y int) (*Grid, error) {
	elevations, err := m.GetInterpolatedGrid(ctx, z, x, y, m.cfg.TileSize)
	if err != nil {
		return nil, err
	}

	g := newGrid(m.cfg.TileSize)
	for row, rowVals := range elevations {
		for col, e := range rowVals {
			if e.NoData {
				g.Values[row][col] = math.NaN()
			} else {
				g.Values[row][col] = e.Meters
			}
		}
	}
	return g, nil
}

// getTileGrid returns the decoded elevation grid for key, consulting
// the process-local memo, then the shared byte cache, then the
// upstream source (spec.md §4.1 "Caching discipline"). Concurrent
// callers for the same missing tile coalesce into a single upstream
// fetch (spec.md §4.1 "Concurrency").
func (m *Manager) getTileGrid(ctx context.Context, key TileKey) (*Grid, error) {
	if g, ok := m.memo.get(key); ok {
		return g, nil
	}

	if data, ok := m.bytes.get(key); ok {
		g, err := DecodeTerrainRGBPNG(data)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", rferrors.ErrTileCorrupt, err)
		}
		m.memo.put(key, g)
		return g, nil
	}

	v, err, _ := m.group.Do(key.String(), func() (interface{}, error) {
		// Re-check both cache levels: another goroutine may have
		// populated them while we were waiting to enter the group.
		if g, ok := m.memo.get(key); ok {
			return g, nil
		}
		if data, ok := m.bytes.get(key); ok {
			g, err := DecodeTerrainRGBPNG(data)
			if err != nil {
				return nil, fmt.Errorf("%w: %v", rferrors.ErrTileCorrupt, err)
			}
			m.memo.put(key, g)
			return g, nil
		}

		data, err := m.source.Fetch(ctx, key)
		if err != nil {
			return nil, err
		}

		g, err := DecodeTerrainRGBPNG(data)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", rferrors.ErrTileCorrupt, err)
		}

		m.bytes.put(key, data)
		m.memo.put(key, g)
		return g, nil
	})
	if err != nil {
		return nil, err
	}

	return v.(*Grid), nil
}

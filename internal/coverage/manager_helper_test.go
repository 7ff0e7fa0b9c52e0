// rfplan - RF site-planning engine for low-power wireless mesh deployments
// SPDX-License-Identifier: AGPL-3.0-or-later

package coverage

import (
	"context"
	"testing"
	"time"

	"github.com/meshrf/planner/internal/config"
	"github.com/meshrf/planner/internal/terrain"
)

// flatSource is a deterministic terrain.Source returning a flat
// elevation grid for every tile.
type flatSource struct {
	elevation float64
	size      int
}

func (s flatSource) Fetch(ctx context.Context, key terrain.TileKey) ([]byte, error) {
	values := make([][]float64, s.size)
	for r := range values {
		values[r] = make([]float64, s.size)
		for c := range values[r] {
			values[r][c] = s.elevation
		}
	}
	return terrain.EncodeTerrainRGBPNG(&terrain.Grid{Size: s.size, Values: values})
}

func newTestManager(t *testing.T, elevation float64) *terrain.Manager {
	t.Helper()
	tileCfg := config.TileSourceConfig{Zoom: 12, TileSize: 64}
	cacheCfg := config.CacheConfig{MemoSize: 64, ByteStorePath: t.TempDir(), ByteStoreTTL: time.Hour}

	mgr, err := terrain.NewManager(tileCfg, cacheCfg, flatSource{elevation: elevation, size: 64})
	if err != nil {
		t.Fatalf("terrain.NewManager() error = %v", err)
	}
	t.Cleanup(func() { mgr.Close() })
	return mgr
}

// rfplan - RF site-planning engine for low-power wireless mesh deployments
// SPDX-License-Identifier: AGPL-3.0-or-later

package terrain

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/meshrf/planner/internal/metrics"
)

// tileMemo is the process-local memoisation layer: a bounded LRU of
// decoded elevation grids keyed by TileKey (spec.md §4.1 "Process-local
// memoisation"). It is the first cache level consulted on every
// lookup.
type tileMemo struct {
	cache *lru.Cache[TileKey, *Grid]
}

func newTileMemo(size int) (*tileMemo, error) {
	c, err := lru.New[TileKey, *Grid](size)
	if err != nil {
		return nil, err
	}
	return &tileMemo{cache: c}, nil
}

func (m *tileMemo) get(key TileKey) (*Grid, bool) {
	g, ok := m.cache.Get(key)
	if ok {
		metrics.RecordCacheHit("memo")
	} else {
		metrics.RecordCacheMiss("memo")
	}
	return g, ok
}

func (m *tileMemo) put(key TileKey, g *Grid) {
	evicted := m.cache.Add(key, g)
	metrics.TileCacheSize.Set(float64(m.cache.Len()))
	if evicted {
		metrics.TileCacheEvictions.Inc()
	}
}

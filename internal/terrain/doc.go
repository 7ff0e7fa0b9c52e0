// rfplan - RF site-planning engine for low-power wireless mesh deployments
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package terrain provides a caching elevation-sample provider backed by
tiled terrain-RGB raster sources.

# Overview

Manager exposes point, batch, profile, and grid elevation lookups over
a web-mercator tile scheme. Every lookup resolves to one or more tiles,
each fetched through a two-level cache:

  - a small process-local LRU of decoded elevation grids (memo.go)
  - a larger, shared, persistent byte cache of encoded tile blobs
    (bytecache.go), backed by BadgerDB

On a full cache miss, Manager fetches the tile from an upstream HTTP
tile source (source.go), which is itself protected by a circuit
breaker so a failing upstream degrades to fast failures rather than
blocking every caller.

# Usage Example

	src := terrain.NewHTTPSource(cfg.TileSource)
	mgr, err := terrain.NewManager(cfg.TileSource, cfg.Cache, src)
	if err != nil {
	    log.Fatal(err)
	}
	defer mgr.Close()

	elev, err := mgr.GetElevation(ctx, 47.6062, -122.3321)

# Concurrency

Concurrent requests for the same missing tile coalesce into a single
upstream fetch via golang.org/x/sync/singleflight; all waiters receive
the same decoded grid or the same error.

# Thread Safety

Manager is safe for concurrent use once constructed. Tile cache entries
are write-once per key: once a tile is decoded and stored, its contents
never change for the process lifetime.

# See Also

  - internal/physics: consumes elevation profiles produced here
  - internal/viewshed, internal/coverage: consume Manager via its
    public contract
*/
package terrain

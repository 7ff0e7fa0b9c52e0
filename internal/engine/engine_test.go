// rfplan - RF site-planning engine for low-power wireless mesh deployments
// SPDX-License-Identifier: AGPL-3.0-or-later

package engine

import (
	"context"
	"testing"
	"time"

	"github.com/meshrf/planner/internal/config"
	"github.com/meshrf/planner/internal/coverage"
	"github.com/meshrf/planner/internal/physics"
	"github.com/meshrf/planner/internal/terrain"
)

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

func newTestEngine(t *testing.T, elevation float64) *Engine {
	t.Helper()
	tileCfg := config.TileSourceConfig{Zoom: 12, TileSize: 64}
	cacheCfg := config.CacheConfig{MemoSize: 64, ByteStorePath: t.TempDir(), ByteStoreTTL: time.Hour}

	mgr, err := terrain.NewManager(tileCfg, cacheCfg, flatSource{elevation: elevation, size: 64})
	if err != nil {
		t.Fatalf("terrain.NewManager() error = %v", err)
	}
	t.Cleanup(func() { mgr.Close() })
	return New(mgr)
}

func TestEngine_GetElevation(t *testing.T) {
	eng := newTestEngine(t, 123.0)
	e, err := eng.GetElevation(context.Background(), 40.0, -105.0)
	if err != nil {
		t.Fatalf("GetElevation() error = %v", err)
	}
	if e.NoData || e.Meters < 100 {
		t.Errorf("GetElevation() = %+v, want ~123m", e)
	}
}

func TestEngine_CalculateLink(t *testing.T) {
	eng := newTestEngine(t, 0)
	outcome, err := eng.CalculateLink(context.Background(), LinkParams{
		TX:           terrain.Coordinate{Lat: 40.0, Lon: -105.0},
		RX:           terrain.Coordinate{Lat: 40.01, Lon: -105.01},
		FrequencyMHz: 915,
		TxHeightM:    30,
		RxHeightM:    2,
		Model:        physics.ModelFSPL,
	})
	if err != nil {
		t.Fatalf("CalculateLink() error = %v", err)
	}
	if outcome.PathLossDB <= 0 {
		t.Errorf("PathLossDB = %v, want positive", outcome.PathLossDB)
	}
	if outcome.Status == 0 && outcome.ClearanceRatio == 0 {
		t.Error("expected a populated LinkResult")
	}
}

func TestEngine_ScoreCandidates(t *testing.T) {
	eng := newTestEngine(t, 50)
	scored, err := eng.ScoreCandidates(context.Background(), []coverage.Candidate{
		{Lat: 40.0, Lon: -105.0},
	}, coverage.Weights{}, nil, 915)
	if err != nil {
		t.Fatalf("ScoreCandidates() error = %v", err)
	}
	if len(scored) != 1 {
		t.Fatalf("got %d scored candidates, want 1", len(scored))
	}
}

func TestEngine_RunCoverage(t *testing.T) {
	eng := newTestEngine(t, 0)
	result, err := eng.RunCoverage(context.Background(), []coverage.Candidate{
		{Lat: 40.0, Lon: -105.0, HeightM: 30},
		{Lat: 40.02, Lon: -105.02, HeightM: 30},
	}, 2, coverage.Options{RadiusM: 2000, ResolutionMeters: 500}, nil)
	if err != nil {
		t.Fatalf("RunCoverage() error = %v", err)
	}
	if len(result.Selected) == 0 {
		t.Error("expected at least one selected node")
	}
}

func TestEngine_GetTerrainTile(t *testing.T) {
	eng := newTestEngine(t, 42.0)
	g, err := eng.GetTerrainTile(context.Background(), 12, 654, 1423)
	if err != nil {
		t.Fatalf("GetTerrainTile() error = %v", err)
	}
	if g.Size != 64 {
		t.Errorf("tile size = %d, want 64", g.Size)
	}
}

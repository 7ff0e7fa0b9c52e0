// rfplan - RF site-planning engine for low-power wireless mesh deployments
// SPDX-License-Identifier: AGPL-3.0-or-later

package coverage

import (
	"context"
	"testing"
)

func TestBuildLinkGraph_AllPairsAnalyzed(t *testing.T) {
	mgr := newTestManager(t, 0)
	selected := []Candidate{
		{Lat: 40.0, Lon: -105.0, HeightM: 30},
		{Lat: 40.01, Lon: -105.0, HeightM: 30},
		{Lat: 40.02, Lon: -105.0, HeightM: 30},
	}

	edges := BuildLinkGraph(context.Background(), mgr, selected, Options{}.defaulted())
	want := 3 // C(3,2)
	if len(edges) != want {
		t.Fatalf("got %d edges, want %d", len(edges), want)
	}
	for _, e := range edges {
		if e.DistanceKM <= 0 {
			t.Errorf("edge %d-%d distance = %v, want positive", e.I, e.J, e.DistanceKM)
		}
		if e.Status == "" {
			t.Errorf("edge %d-%d has empty status", e.I, e.J)
		}
	}
}

func TestAnnotateConnectivity_CountsViableAndDegradedOnly(t *testing.T) {
	nodes := []SelectedNode{{}, {}, {}}
	links := []LinkEdge{
		{I: 0, J: 1, Status: "viable"},
		{I: 1, J: 2, Status: "unknown"},
		{I: 0, J: 2, Status: "degraded"},
	}
	annotateConnectivity(nodes, links)

	if nodes[0].ConnectivityScore != 2 {
		t.Errorf("node 0 connectivity = %d, want 2", nodes[0].ConnectivityScore)
	}
	if nodes[1].ConnectivityScore != 1 {
		t.Errorf("node 1 connectivity = %d, want 1 (unknown pair excluded)", nodes[1].ConnectivityScore)
	}
	if nodes[2].ConnectivityScore != 1 {
		t.Errorf("node 2 connectivity = %d, want 1", nodes[2].ConnectivityScore)
	}
}

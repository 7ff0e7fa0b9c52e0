// rfplan - RF site-planning engine for low-power wireless mesh deployments
// SPDX-License-Identifier: AGPL-3.0-or-later

package coverage

import (
	"context"
	"testing"
)

func TestScoreCandidates_NoExistingNodesFullFresnel(t *testing.T) {
	mgr := newTestManager(t, 100)
	candidates := []Candidate{
		{Lat: 40.0, Lon: -105.0},
		{Lat: 40.01, Lon: -105.01},
	}

	scored, err := ScoreCandidates(context.Background(), mgr, candidates, Weights{}, nil, 915)
	if err != nil {
		t.Fatalf("ScoreCandidates() error = %v", err)
	}
	for i, c := range scored {
		if c.Fresnel != 1.0 {
			t.Errorf("candidate %d fresnel = %v, want 1.0 with no existing nodes", i, c.Fresnel)
		}
		if c.Score < 0 || c.Score > 100 {
			t.Errorf("candidate %d score = %v, want in [0,100]", i, c.Score)
		}
	}
}

func TestWeights_DefaultedWhenAllZero(t *testing.T) {
	w := Weights{}.defaulted()
	if w.Elevation != 0.5 || w.Prominence != 0.3 || w.Fresnel != 0.2 {
		t.Errorf("defaulted() = %+v, want spec.md §6 defaults {0.5,0.3,0.2}", w)
	}
}

func TestWeights_PartialWeightsNotOverridden(t *testing.T) {
	w := Weights{Elevation: 1.0}.defaulted()
	if w.Elevation != 1.0 || w.Prominence != 0 || w.Fresnel != 0 {
		t.Errorf("defaulted() = %+v, want explicit values preserved", w)
	}
}

func TestCheckFresnelClearance_EmptyExistingReturnsOne(t *testing.T) {
	mgr := newTestManager(t, 0)
	got, err := checkFresnelClearance(context.Background(), mgr, 40.0, -105.0, 10, 915, nil)
	if err != nil {
		t.Fatalf("checkFresnelClearance() error = %v", err)
	}
	if got != 1.0 {
		t.Errorf("checkFresnelClearance(no nodes) = %v, want 1.0", got)
	}
}

func TestCheckFresnelClearance_TooCloseNodeSkipped(t *testing.T) {
	mgr := newTestManager(t, 0)
	existing := []ExistingNode{{Lat: 40.0, Lon: -105.0, HeightM: 2}} // same point, distance ~0
	got, err := checkFresnelClearance(context.Background(), mgr, 40.0, -105.0, 10, 915, existing)
	if err != nil {
		t.Fatalf("checkFresnelClearance() error = %v", err)
	}
	if got != 1.0 {
		t.Errorf("checkFresnelClearance(too-close node) = %v, want 1.0 (skipped, defaults to clear)", got)
	}
}

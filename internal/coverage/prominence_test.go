// rfplan - RF site-planning engine for low-power wireless mesh deployments
// SPDX-License-Identifier: AGPL-3.0-or-later

package coverage

import (
	"context"
	"math"
	"testing"
)

func TestCalculateProminence_FlatTerrainIsZero(t *testing.T) {
	mgr := newTestManager(t, 50)
	p, err := calculateProminence(context.Background(), mgr, 40.0, -105.0)
	if err != nil {
		t.Fatalf("calculateProminence() error = %v", err)
	}
	if p != 0 {
		t.Errorf("prominence on flat terrain = %v, want 0", p)
	}
}

func TestCalculateProminence_NonNegativeAndNotNaNOnElevatedFlatTerrain(t *testing.T) {
	mgr := newTestManager(t, 100) // every sample, including centre, returns 100
	p, err := calculateProminence(context.Background(), mgr, 40.0, -105.0)
	if err != nil {
		t.Fatalf("calculateProminence() error = %v", err)
	}
	if p < 0 {
		t.Errorf("prominence must be clamped to >= 0, got %v", p)
	}
	if math.IsNaN(p) {
		t.Error("prominence must not be NaN")
	}
}

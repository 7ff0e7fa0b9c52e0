// rfplan - RF site-planning engine for low-power wireless mesh deployments
// SPDX-License-Identifier: AGPL-3.0-or-later

package physics

import "testing"

func TestBullingtonDiffractionLoss_FlatProfileBelowClearance(t *testing.T) {
	flat := make([]float64, 50)
	loss := BullingtonDiffractionLoss(5000, flat, 915, 30, 2, DefaultKFactor, 0)
	if loss <= 0 {
		t.Errorf("expected positive diffraction loss for flat 5km profile dominated by Earth bulge, got %v", loss)
	}
}

func TestBullingtonDiffractionLoss_KnifeEdge_Scenario3(t *testing.T) {
	n := 15
	profile := make([]float64, n)
	centre := n / 2
	profile[centre] = 100

	loss := BullingtonDiffractionLoss(10000, profile, 915, 10, 10, DefaultKFactor, 0)
	if loss <= 15 {
		t.Errorf("knife-edge diffraction loss = %v, want > 15 dB", loss)
	}
}

func TestBullingtonDiffractionLoss_ClearLineOfSight(t *testing.T) {
	// Tall TX/RX masts over a flat, short path stay well clear of the
	// Fresnel ellipsoid: expect zero additional diffraction loss.
	flat := make([]float64, 10)
	loss := BullingtonDiffractionLoss(500, flat, 915, 100, 100, DefaultKFactor, 0)
	if loss != 0 {
		t.Errorf("expected zero diffraction loss for clear short link, got %v", loss)
	}
}

func TestBullingtonDiffractionLoss_DegenerateProfile(t *testing.T) {
	if loss := BullingtonDiffractionLoss(1000, []float64{0, 0}, 915, 10, 10, DefaultKFactor, 0); loss != 0 {
		t.Errorf("expected 0 for degenerate (n<3) profile, got %v", loss)
	}
}

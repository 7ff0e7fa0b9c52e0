// rfplan - RF site-planning engine for low-power wireless mesh deployments
// SPDX-License-Identifier: AGPL-3.0-or-later

package coverage

import "testing"

// cellsOf builds a pixel set from a list of synthetic integer labels,
// mirroring spec.md §8 scenario 4's {1,2,3}-style notation by mapping
// each label to a distinct synthetic cell.
func cellsOf(labels ...int) map[cell]struct{} {
	out := make(map[cell]struct{}, len(labels))
	for _, l := range labels {
		out[cell{row: 0, col: l}] = struct{}{}
	}
	return out
}

func TestGreedySelect_Scenario4(t *testing.T) {
	// A={1,2,3}, B={3,4,5}, C={1,2,3,4,5}; N=2.
	pixelSets := []map[cell]struct{}{
		cellsOf(1, 2, 3),
		cellsOf(3, 4, 5),
		cellsOf(1, 2, 3, 4, 5),
	}

	selected, order := greedySelect(pixelSets, 2, func(int, string) {})

	if len(order) != 1 || order[0] != 2 {
		t.Fatalf("order = %v, want [2] (C selected, then early-stop on zero marginal gain)", order)
	}
	if !selected[2] {
		t.Error("expected candidate C (index 2) to be selected")
	}

	covered := make(map[cell]struct{})
	for _, idx := range order {
		for c := range pixelSets[idx] {
			covered[c] = struct{}{}
		}
	}
	if len(covered) != 5 {
		t.Errorf("total coverage = %d, want 5", len(covered))
	}
}

func TestGreedySelect_TieBreaksByLowestIndex(t *testing.T) {
	pixelSets := []map[cell]struct{}{
		cellsOf(1, 2),
		cellsOf(3, 4),
		cellsOf(5, 6),
	}

	_, order := greedySelect(pixelSets, 1, func(int, string) {})
	if len(order) != 1 || order[0] != 0 {
		t.Fatalf("order = %v, want [0] (lowest index wins a 2-way-tied gain)", order)
	}
}

func TestGreedySelect_MonotoneNonIncreasingMarginalGain(t *testing.T) {
	pixelSets := []map[cell]struct{}{
		cellsOf(1, 2, 3, 4, 5),
		cellsOf(1, 2, 3),
		cellsOf(1),
	}

	_, order := greedySelect(pixelSets, 3, func(int, string) {})

	covered := make(map[cell]struct{})
	prevGain := int(^uint(0) >> 1) // max int
	for _, idx := range order {
		gain := 0
		for c := range pixelSets[idx] {
			if _, ok := covered[c]; !ok {
				gain++
			}
		}
		if gain > prevGain {
			t.Errorf("marginal gain sequence not non-increasing: %d after %d", gain, prevGain)
		}
		prevGain = gain
		for c := range pixelSets[idx] {
			covered[c] = struct{}{}
		}
	}
}

func TestGreedySelect_SelectedSizeBoundedByNAndM(t *testing.T) {
	pixelSets := []map[cell]struct{}{cellsOf(1), cellsOf(2)}
	selected, order := greedySelect(pixelSets, 5, func(int, string) {})
	if len(order) > 2 {
		t.Errorf("selected %d candidates, want <= min(N, M) = 2", len(order))
	}
	if len(selected) == 0 {
		t.Error("expected at least one selection when candidates have non-empty viewsheds")
	}
}

func TestGreedySelect_EmptyPixelSetsSelectsNothing(t *testing.T) {
	pixelSets := []map[cell]struct{}{{}, {}}
	selected, order := greedySelect(pixelSets, 2, func(int, string) {})
	if len(order) != 0 || len(selected) != 0 {
		t.Errorf("expected no selections for all-empty pixel sets, got order=%v", order)
	}
}

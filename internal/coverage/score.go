// rfplan - RF site-planning engine for low-power wireless mesh deployments
// SPDX-License-Identifier: AGPL-3.0-or-later

package coverage

import (
	"context"

	"github.com/meshrf/planner/internal/physics"
	"github.com/meshrf/planner/internal/terrain"
)

const fresnelCheckSamples = 20
const fresnelCheckMinDistanceM = 100
const defaultCandidateTxHeightM = 10

// checkFresnelClearance averages the Fresnel clearance ratio (clamped
// to [0,1]) from (txLat, txLon) to every node in existing, at freqMHz.
// An empty existing list returns 1.0 (no nodes to block the path).
func checkFresnelClearance(ctx context.Context, tm *terrain.Manager, txLat, txLon, txHeightM, freqMHz float64, existing []ExistingNode) (float64, error) {
	if len(existing) == 0 {
		return 1.0, nil
	}

	total := 0.0
	count := 0
	for _, node := range existing {
		distM := physics.HaversineDistance(txLat, txLon, node.Lat, node.Lon)
		if distM < fresnelCheckMinDistanceM {
			continue
		}

		profile, err := tm.GetElevationProfile(ctx,
			terrain.Coordinate{Lat: txLat, Lon: txLon},
			terrain.Coordinate{Lat: node.Lat, Lon: node.Lon},
			fresnelCheckSamples)
		if err != nil {
			continue
		}

		result := physics.AnalyzeLink(physics.LinkRequest{
			Profile:      profile,
			FrequencyMHz: freqMHz,
			TxHeightM:    txHeightM,
			RxHeightM:    node.HeightM,
		})

		clearance := 0.0
		if result.ClearanceRatio >= 0 {
			clearance = result.ClearanceRatio
			if clearance > 1.0 {
				clearance = 1.0
			}
		}
		total += clearance
		count++
	}

	if count == 0 {
		return 1.0, nil
	}
	return total / float64(count), nil
}

// ScoreCandidates ranks candidates by a weighted, normalised blend of
// elevation, topographic prominence, and Fresnel clearance to
// existingNodes (spec.md §6 ScoreCandidates, §9 "mixed unit systems"
// redesign note — every component is normalised to [0,1] before
// weighting, unlike the source's raw-unit weighted sum).
func ScoreCandidates(ctx context.Context, tm *terrain.Manager, candidates []Candidate, weights Weights, existingNodes []ExistingNode, freqMHz float64) ([]Candidate, error) {
	weights = weights.defaulted()
	if freqMHz == 0 {
		freqMHz = 915
	}

	out := make([]Candidate, len(candidates))
	copy(out, candidates)

	for i := range out {
		c := &out[i]

		if c.Elevation == 0 {
			e, err := tm.GetElevation(ctx, c.Lat, c.Lon)
			if err == nil && !e.NoData {
				c.Elevation = e.Meters
			}
		}

		if c.Prominence == 0 {
			p, err := calculateProminence(ctx, tm, c.Lat, c.Lon)
			if err == nil {
				c.Prominence = p
			}
		}

		txHeight := c.HeightM
		if txHeight == 0 {
			txHeight = defaultCandidateTxHeightM
		}
		fresnel, err := checkFresnelClearance(ctx, tm, c.Lat, c.Lon, txHeight, freqMHz, existingNodes)
		if err == nil {
			c.Fresnel = fresnel
		} else {
			c.Fresnel = 1.0
		}
	}

	maxElev, maxProm := 0.0, 0.0
	for _, c := range out {
		if c.Elevation > maxElev {
			maxElev = c.Elevation
		}
		if c.Prominence > maxProm {
			maxProm = c.Prominence
		}
	}

	for i := range out {
		c := &out[i]

		elevNorm := 0.0
		if maxElev > 0 {
			elevNorm = c.Elevation / maxElev
		}
		promNorm := 0.0
		if maxProm > 0 {
			promNorm = c.Prominence / maxProm
		}

		c.Score = (weights.Elevation*elevNorm + weights.Prominence*promNorm + weights.Fresnel*c.Fresnel) * 100.0
	}

	return out, nil
}

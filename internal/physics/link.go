// rfplan - RF site-planning engine for low-power wireless mesh deployments
// SPDX-License-Identifier: AGPL-3.0-or-later

package physics

import (
	"math"

	"github.com/meshrf/planner/internal/terrain"
)

// AnalyzeLink evaluates a point-to-point link over an elevation
// profile: effective-Earth bulge correction, per-interior-sample
// Fresnel clearance ratio, and the resulting LinkResult (spec.md §4.2
// analyze_link, §8 scenario 2). NoData samples are treated as 0 m
// (sea level).
func AnalyzeLink(req LinkRequest) LinkResult {
	n := len(req.Profile.Samples)
	distanceM := req.Profile.DistanceM

	k := req.K
	if k == 0 {
		k = DefaultKFactor
	}
	rEff := k * EarthRadiusMeters

	profile := profileToMeters(req.Profile)

	fspl := FSPL(distanceM, req.FrequencyMHz)

	if n < 2 || distanceM <= 0 {
		return LinkResult{
			DistanceM:       distanceM,
			FSPLdB:          fspl,
			TotalPathLossDB: fspl,
			ClearanceRatio:  math.Inf(1),
			Status:          LinkViable,
		}
	}

	txAlt := profile[0] + req.TxHeightM
	rxAlt := profile[n-1] + req.RxHeightM
	step := distanceM / float64(n-1)

	minRatio := math.Inf(1)
	worstFresnel := 0.0
	worstClearance := 0.0

	for i := 0; i < n; i++ {
		di := float64(i) * step
		dOther := distanceM - di
		if di <= 0 || dOther <= 0 {
			continue // endpoints excluded from clearance minimisation (spec.md §4.1 note)
		}

		bulge := di * dOther / (2 * rEff)
		terrainH := profile[i] + bulge + req.ClutterM

		frac := di / distanceM
		losH := txAlt + frac*(rxAlt-txAlt)

		clearance := losH - terrainH
		fresnel := FresnelRadius(distanceM, req.FrequencyMHz, di, dOther)

		ratio := clearance / fresnel
		if ratio < minRatio {
			minRatio = ratio
			worstFresnel = fresnel
			worstClearance = clearance
		}
	}

	diffractionLoss := BullingtonDiffractionLoss(distanceM, profile, req.FrequencyMHz, req.TxHeightM, req.RxHeightM, k, req.ClutterM)
	totalLoss := fspl + diffractionLoss

	status := LinkViable
	switch {
	case minRatio < 0:
		status = LinkBlocked
	case minRatio < 0.6:
		status = LinkDegraded
	}

	return LinkResult{
		DistanceM:         distanceM,
		FSPLdB:            fspl,
		DiffractionLossDB: diffractionLoss,
		TotalPathLossDB:   totalLoss,
		ClearanceRatio:    minRatio,
		WorstFresnelM:     worstFresnel,
		WorstClearanceM:   worstClearance,
		Status:            status,
	}
}

// profileToMeters extracts raw elevation values from a terrain.Profile,
// substituting 0 for NoData samples.
func profileToMeters(p terrain.Profile) []float64 {
	out := make([]float64, len(p.Samples))
	for i, s := range p.Samples {
		if !s.NoData {
			out[i] = s.Meters
		}
	}
	return out
}

// rfplan - RF site-planning engine for low-power wireless mesh deployments
// SPDX-License-Identifier: AGPL-3.0-or-later

package physics

import "math"

// DefaultKFactor is the standard effective-Earth radius factor (4/3)
// used to approximate radio-wave bending in the troposphere.
const DefaultKFactor = 4.0 / 3.0

// BullingtonDiffractionLoss treats the worst-obstructing terrain point
// along the path as an equivalent knife-edge and returns its
// diffraction loss in dB (spec.md §4.2, steps 1-5). profileM holds N
// terrain elevations in metres, uniformly spaced across [0, distanceM].
func BullingtonDiffractionLoss(distanceM float64, profileM []float64, freqMHz, txHeightM, rxHeightM, k, clutterM float64) float64 {
	n := len(profileM)
	if n < 3 || distanceM <= 0 {
		return 0
	}
	if k <= 0 {
		k = DefaultKFactor
	}

	lambda := wavelengthMeters(freqMHz)
	rEff := k * EarthRadiusMeters

	txAlt := profileM[0] + txHeightM
	rxAlt := profileM[n-1] + rxHeightM

	step := distanceM / float64(n-1)

	vStar := math.Inf(-1)
	for i := 1; i < n-1; i++ {
		di := float64(i) * step
		dOther := distanceM - di
		if di <= 1.0 || dOther <= 1.0 {
			continue
		}

		bulge := di * dOther / (2 * rEff)
		effectiveTerrain := profileM[i] + bulge + clutterM

		frac := di / distanceM
		losH := txAlt + frac*(rxAlt-txAlt)

		h := effectiveTerrain - losH
		v := h * math.Sqrt(2*distanceM/(lambda*di*dOther))

		if v > vStar {
			vStar = v
		}
	}

	if math.IsInf(vStar, -1) || vStar <= -0.78 {
		return 0
	}

	loss := 6.9 + 20*math.Log10(math.Sqrt((vStar-0.1)*(vStar-0.1)+1)+(vStar-0.1))
	if loss < 0 {
		loss = 0
	}
	return loss
}

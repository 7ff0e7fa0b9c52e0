// rfplan - RF site-planning engine for low-power wireless mesh deployments
// SPDX-License-Identifier: AGPL-3.0-or-later

package physics

import "math"

// HataLoss returns the Okumura-Hata empirical path loss in dB for a
// link of distance distanceM, carrier frequency freqMHz, base-station
// height hB and mobile height hM, for the given environment (spec.md
// §4.2). Heights are floored at 1 m, distance at 100 m.
func HataLoss(distanceM, freqMHz, hB, hM float64, env Environment) float64 {
	if hB < 1 {
		hB = 1
	}
	if hM < 1 {
		hM = 1
	}
	if distanceM < 100 {
		distanceM = 100
	}
	dKm := distanceM / 1000.0

	logF := math.Log10(freqMHz)

	var aHm float64
	switch env {
	case EnvironmentUrbanLarge:
		if freqMHz < 400 {
			aHm = 8.29*math.Pow(math.Log10(1.54*hM), 2) - 1.1
		} else {
			aHm = 3.2*math.Pow(math.Log10(11.75*hM), 2) - 4.97
		}
	default:
		aHm = (1.1*logF-0.7)*hM - (1.56*logF - 0.8)
	}

	urban := 69.55 + 26.16*logF - 13.82*math.Log10(hB) - aHm +
		(44.9-6.55*math.Log10(hB))*math.Log10(dKm)

	switch env {
	case EnvironmentSuburban:
		return urban - 2*math.Pow(math.Log10(freqMHz/28.0), 2) - 5.4
	case EnvironmentRural:
		return urban - 4.78*math.Pow(logF, 2) + 18.33*logF - 40.94
	default:
		return urban
	}
}

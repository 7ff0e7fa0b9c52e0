// rfplan - RF site-planning engine for low-power wireless mesh deployments
// SPDX-License-Identifier: AGPL-3.0-or-later

package coverage

import (
	"context"

	"github.com/meshrf/planner/internal/terrain"
)

const prominenceRadiusKM = 5.0
const prominenceGridSteps = 10

// calculateProminence approximates topographic prominence as the
// centre elevation minus the mean elevation of an (steps+1)^2 sampling
// grid around it (spec.md §8 scenario 5), clamped to >= 0. This is a
// cheap proxy for true prominence, not the formal definition (spec.md
// GLOSSARY "Prominence").
func calculateProminence(ctx context.Context, tm *terrain.Manager, lat, lon float64) (float64, error) {
	deltaDeg := prominenceRadiusKM / 111.0
	minLat, maxLat := lat-deltaDeg, lat+deltaDeg
	minLon, maxLon := lon-deltaDeg, lon+deltaDeg

	latStep := (maxLat - minLat) / prominenceGridSteps
	lonStep := (maxLon - minLon) / prominenceGridSteps

	coords := make([]terrain.Coordinate, 0, (prominenceGridSteps+1)*(prominenceGridSteps+1))
	for i := 0; i <= prominenceGridSteps; i++ {
		for j := 0; j <= prominenceGridSteps; j++ {
			coords = append(coords, terrain.Coordinate{
				Lat: minLat + float64(i)*latStep,
				Lon: minLon + float64(j)*lonStep,
			})
		}
	}

	elevs, err := tm.GetElevationsBatch(ctx, coords)
	if err != nil {
		return 0, err
	}
	if len(elevs) == 0 {
		return 0, nil
	}

	sum, n := 0.0, 0
	for _, e := range elevs {
		if e.NoData {
			continue
		}
		sum += e.Meters
		n++
	}
	if n == 0 {
		return 0, nil
	}
	meanElevation := sum / float64(n)

	centre, err := tm.GetElevation(ctx, lat, lon)
	if err != nil {
		return 0, err
	}
	centreElevation := 0.0
	if !centre.NoData {
		centreElevation = centre.Meters
	}

	prominence := centreElevation - meanElevation
	if prominence < 0 {
		prominence = 0
	}
	return prominence, nil
}

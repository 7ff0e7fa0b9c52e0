// rfplan - RF site-planning engine for low-power wireless mesh deployments
// SPDX-License-Identifier: AGPL-3.0-or-later

package terrain

import (
	"math"
	"testing"
)

func TestHaversineDistance_SamePointIsZero(t *testing.T) {
	seattle := Coordinate{Lat: 47.6062, Lon: -122.3321}
	if d := haversineDistance(seattle, seattle); d != 0 {
		t.Errorf("haversineDistance(a, a) = %v, want 0", d)
	}
}

func TestHaversineDistance_Symmetric(t *testing.T) {
	a := Coordinate{Lat: 47.6062, Lon: -122.3321}
	b := Coordinate{Lat: 45.5152, Lon: -122.6784}

	if d1, d2 := haversineDistance(a, b), haversineDistance(b, a); math.Abs(d1-d2) > 1e-6 {
		t.Errorf("haversine(a,b)=%v != haversine(b,a)=%v", d1, d2)
	}
}

func TestSampleGreatCircle_EndpointsPinned(t *testing.T) {
	a := Coordinate{Lat: 10, Lon: 10}
	b := Coordinate{Lat: 20, Lon: 30}

	points := sampleGreatCircle(a, b, 15)
	if len(points) != 15 {
		t.Fatalf("len(points) = %d, want 15", len(points))
	}
	if points[0] != a {
		t.Errorf("points[0] = %+v, want %+v", points[0], a)
	}
	if points[len(points)-1] != b {
		t.Errorf("points[last] = %+v, want %+v", points[len(points)-1], b)
	}
}

func TestSampleGreatCircle_SinglePoint(t *testing.T) {
	a := Coordinate{Lat: 1, Lon: 1}
	b := Coordinate{Lat: 2, Lon: 2}
	points := sampleGreatCircle(a, b, 1)
	if len(points) != 1 || points[0] != a {
		t.Errorf("sampleGreatCircle with samples=1 should return [a], got %+v", points)
	}
}

func TestSampleGreatCircle_EvenSpacing(t *testing.T) {
	a := Coordinate{Lat: 0, Lon: 0}
	b := Coordinate{Lat: 0, Lon: 90}

	points := sampleGreatCircle(a, b, 4)
	for i := 0; i < len(points)-1; i++ {
		d := haversineDistance(points[i], points[i+1])
		dNext := haversineDistance(points[0], points[1])
		if math.Abs(d-dNext) > 1.0 {
			t.Errorf("segment %d length %v differs from first segment %v by more than 1m", i, d, dNext)
		}
	}
}

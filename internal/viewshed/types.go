// rfplan - RF site-planning engine for low-power wireless mesh deployments
// SPDX-License-Identifier: AGPL-3.0-or-later

package viewshed

// Options configures a single-transmitter viewshed calculation. Zero
// values are replaced by the package defaults described on each field.
type Options struct {
	// RxHeightM is the receiver mast height in metres. Default: 2.
	RxHeightM float64
	// FrequencyMHz is the carrier frequency. Default: 915.
	FrequencyMHz float64
	// ResolutionMeters is the requested grid resolution; the
	// effective resolution is max(ResolutionMeters, 100). Default: 30.
	ResolutionMeters float64
	// ProfileSamples is the number of elevation samples fetched per
	// pixel evaluation. Default: 15 (spec.md §4.3 "coarse profile").
	ProfileSamples int
	// MaxGridDimension caps rows and columns. Default: 250.
	MaxGridDimension int
	// K is the effective-Earth radius factor for the bulge correction.
	// Default: physics.DefaultKFactor.
	K float64
	// ClutterM is an additional terrain height margin applied uniformly
	// along each profile. Default: 0.
	ClutterM float64
}

// defaulted returns a copy of o with zero fields replaced by package
// defaults.
func (o Options) defaulted() Options {
	if o.RxHeightM == 0 {
		o.RxHeightM = 2
	}
	if o.FrequencyMHz == 0 {
		o.FrequencyMHz = 915
	}
	if o.ResolutionMeters == 0 {
		o.ResolutionMeters = 30
	}
	if o.ProfileSamples == 0 {
		o.ProfileSamples = 15
	}
	if o.MaxGridDimension == 0 {
		o.MaxGridDimension = 250
	}
	return o
}

// Viewshed is the result of CalculateViewshed: a regular grid of 0/1
// visibility flags over the lat/lon arrays that index it.
type Viewshed struct {
	// Visible[r][c] is true iff grid cell (r, c) maintains a
	// non-negative Fresnel clearance ratio back to the transmitter.
	Visible [][]bool
	Lats    []float64
	Lons    []float64
	Rows    int
	Cols    int
}

// VisibleCellCount returns the number of true cells in v.Visible.
func (v Viewshed) VisibleCellCount() int {
	n := 0
	for _, row := range v.Visible {
		for _, cell := range row {
			if cell {
				n++
			}
		}
	}
	return n
}

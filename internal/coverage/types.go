// rfplan - RF site-planning engine for low-power wireless mesh deployments
// SPDX-License-Identifier: AGPL-3.0-or-later

package coverage

import "github.com/meshrf/planner/internal/physics"

// Candidate is a single record carrying the optional fields populated
// progressively across ScoreCandidates/SelectCoverage stages (spec.md
// §9 "duck-typed candidate dictionaries" redesign note, replaced here
// by a fixed struct with pointer-free optional fields defaulting to
// their zero value until computed).
type Candidate struct {
	Lat        float64
	Lon        float64
	HeightM    float64
	Elevation  float64
	Prominence float64
	Fresnel    float64
	Score      float64
}

// ExistingNode is a previously deployed network node used as an RX
// endpoint when scoring fresnel clearance for new candidates.
type ExistingNode struct {
	Lat     float64
	Lon     float64
	HeightM float64
}

// Weights controls ScoreCandidates' component blend. When all three
// fields are zero the defaults {0.5, 0.3, 0.2} apply; otherwise the
// fields are used as given and a zero field contributes nothing.
type Weights struct {
	Elevation  float64
	Prominence float64
	Fresnel    float64
}

func (w Weights) defaulted() Weights {
	if w.Elevation == 0 && w.Prominence == 0 && w.Fresnel == 0 {
		return Weights{Elevation: 0.5, Prominence: 0.3, Fresnel: 0.2}
	}
	return w
}

// Options configures SelectCoverage and the viewsheds it computes for
// each candidate.
type Options struct {
	RadiusM          float64
	RxHeightM        float64
	FrequencyMHz     float64
	ResolutionMeters float64
	K                float64
	ClutterM         float64
	// GridResolutionMeters is the master-grid cell size (spec.md §4.4:
	// 100 m). MaxGridDimension caps rows/cols (spec.md §5: 1024).
	GridResolutionMeters float64
	MaxGridDimension     int
}

func (o Options) defaulted() Options {
	if o.RadiusM == 0 {
		o.RadiusM = 5000
	}
	if o.RxHeightM == 0 {
		o.RxHeightM = 2
	}
	if o.FrequencyMHz == 0 {
		o.FrequencyMHz = 915
	}
	if o.ResolutionMeters == 0 {
		o.ResolutionMeters = 30
	}
	if o.K == 0 {
		o.K = physics.DefaultKFactor
	}
	if o.GridResolutionMeters == 0 {
		o.GridResolutionMeters = 100
	}
	if o.MaxGridDimension == 0 {
		o.MaxGridDimension = 1024
	}
	return o
}

// ProgressFunc receives job progress updates; percent is monotonic
// within a single SelectCoverage call (spec.md §5 "Ordering guarantees").
type ProgressFunc func(percent int, message string)

// SelectedNode is one entry of a SelectCoverage result: the selected
// candidate plus its marginal contribution to total coverage.
type SelectedNode struct {
	Candidate         Candidate
	CandidateIndex    int
	MarginalPixels    int
	MarginalAreaKM2   float64
	UniqueCoveragePct float64
	ConnectivityScore int
}

// LinkEdge is one pairwise link analysis result from BuildLinkGraph.
// Status "unknown" with zeroed metrics marks a failed/un-analyzable
// pair (spec.md §4.5); it is never fatal to the job.
type LinkEdge struct {
	I, J           int
	DistanceKM     float64
	Status         string
	PathLossDB     float64
	ClearanceRatio float64
}

// Composite is the rendered union of all selected viewsheds (spec.md
// §4.6): a single-channel raster plus its geographic bounds.
type Composite struct {
	Raster         [][]byte
	MinLat, MinLon float64
	MaxLat, MaxLon float64
}

// Result is the full output of a coverage run (spec.md §6 RunCoverage).
type Result struct {
	Selected               []SelectedNode
	Links                  []LinkEdge
	TotalUniqueCoverageKM2 float64
	Composite              Composite
}

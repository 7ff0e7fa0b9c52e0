// rfplan - RF site-planning engine for low-power wireless mesh deployments
// SPDX-License-Identifier: AGPL-3.0-or-later

package coverage

import (
	"context"
	"time"

	"github.com/meshrf/planner/internal/metrics"
	"github.com/meshrf/planner/internal/physics"
	"github.com/meshrf/planner/internal/terrain"
)

const linkGraphProfileSamples = 50

// BuildLinkGraph analyzes every unordered pair in selected (spec.md
// §4.5): distance, a 50-sample profile, AnalyzeLink, and the
// Bullington-dispatched path loss. A pair whose profile cannot be
// fetched is recorded with status "unknown" and zeroed metrics rather
// than failing the whole graph.
func BuildLinkGraph(ctx context.Context, tm *terrain.Manager, selected []Candidate, opts Options) []LinkEdge {
	edges := make([]LinkEdge, 0, len(selected)*(len(selected)-1)/2)

	for i := 0; i < len(selected); i++ {
		for j := i + 1; j < len(selected); j++ {
			pairStart := time.Now()
			a, b := selected[i], selected[j]
			distM := physics.HaversineDistance(a.Lat, a.Lon, b.Lat, b.Lon)

			profile, err := tm.GetElevationProfile(ctx,
				terrain.Coordinate{Lat: a.Lat, Lon: a.Lon},
				terrain.Coordinate{Lat: b.Lat, Lon: b.Lon},
				linkGraphProfileSamples)
			if err != nil {
				edges = append(edges, LinkEdge{I: i, J: j, Status: "unknown"})
				continue
			}

			link := physics.AnalyzeLink(physics.LinkRequest{
				Profile:      profile,
				FrequencyMHz: opts.FrequencyMHz,
				TxHeightM:    candidateHeight(a),
				RxHeightM:    candidateHeight(b),
				K:            opts.K,
				ClutterM:     opts.ClutterM,
			})
			pathLoss := physics.CalculatePathLoss(physics.PathLossRequest{
				Model:     physics.ModelBullington,
				DistanceM: distM,
				ProfileM:  profileMeters(profile),
				FreqMHz:   opts.FrequencyMHz,
				TxHeightM: candidateHeight(a),
				RxHeightM: candidateHeight(b),
				K:         opts.K,
				ClutterM:  opts.ClutterM,
			})

			metrics.RecordLinkAnalysis(time.Since(pairStart))
			edges = append(edges, LinkEdge{
				I:              i,
				J:              j,
				DistanceKM:     distM / 1000.0,
				Status:         link.Status.String(),
				PathLossDB:     pathLoss,
				ClearanceRatio: link.ClearanceRatio,
			})
		}
	}

	return edges
}

// annotateConnectivity sets each node's ConnectivityScore to the
// number of viable/degraded links it participates in (spec.md §4.5).
func annotateConnectivity(nodes []SelectedNode, links []LinkEdge) {
	scores := make(map[int]int)
	for _, e := range links {
		if e.Status == "viable" || e.Status == "degraded" {
			scores[e.I]++
			scores[e.J]++
		}
	}
	for i := range nodes {
		nodes[i].ConnectivityScore = scores[i]
	}
}

func profileMeters(p terrain.Profile) []float64 {
	out := make([]float64, len(p.Samples))
	for i, s := range p.Samples {
		if !s.NoData {
			out[i] = s.Meters
		}
	}
	return out
}

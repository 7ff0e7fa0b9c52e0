// rfplan - RF site-planning engine for low-power wireless mesh deployments
// SPDX-License-Identifier: AGPL-3.0-or-later

package main

import (
	"fmt"
	"os"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/meshrf/planner/internal/coverage"
)

// scoreInput is the on-disk shape for `rfplan score --candidates`.
type scoreInput struct {
	Candidates    []coverage.Candidate    `json:"candidates"`
	ExistingNodes []coverage.ExistingNode `json:"existing_nodes"`
	Weights       coverage.Weights        `json:"weights"`
	FrequencyMHz  float64                 `json:"frequency_mhz"`
}

func newScoreCmd() *cobra.Command {
	var candidatesPath string

	cmd := &cobra.Command{
		Use:   "score",
		Short: "Score candidate sites by elevation, prominence, and Fresnel clearance",
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(candidatesPath)
			if err != nil {
				return fmt.Errorf("open candidates file: %w", err)
			}
			defer f.Close()

			var input scoreInput
			if err := json.NewDecoder(f).Decode(&input); err != nil {
				return fmt.Errorf("decode candidates file: %w", err)
			}

			scored, err := eng.ScoreCandidates(cmd.Context(), input.Candidates, input.Weights, input.ExistingNodes, input.FrequencyMHz)
			if err != nil {
				return fmt.Errorf("score candidates: %w", err)
			}
			return json.NewEncoder(os.Stdout).Encode(scored)
		},
	}

	cmd.Flags().StringVar(&candidatesPath, "candidates", "", "path to a JSON file describing candidates, existing nodes, and weights")
	cmd.MarkFlagRequired("candidates")

	return cmd
}

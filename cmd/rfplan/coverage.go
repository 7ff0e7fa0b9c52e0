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

// coverageInput is the on-disk shape for `rfplan coverage --candidates`.
type coverageInput struct {
	Candidates []coverage.Candidate `json:"candidates"`
}

func newCoverageCmd() *cobra.Command {
	var candidatesPath string
	var n int
	var radiusM, rxHeight, freqMHz, resolutionM, k, clutterM float64
	var quiet bool

	cmd := &cobra.Command{
		Use:   "coverage",
		Short: "Select N candidate sites that jointly maximise terrain coverage",
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(candidatesPath)
			if err != nil {
				return fmt.Errorf("open candidates file: %w", err)
			}
			defer f.Close()

			var input coverageInput
			if err := json.NewDecoder(f).Decode(&input); err != nil {
				return fmt.Errorf("decode candidates file: %w", err)
			}

			opts := coverage.Options{
				RadiusM:          radiusM,
				RxHeightM:        rxHeight,
				FrequencyMHz:     freqMHz,
				ResolutionMeters: resolutionM,
				K:                k,
				ClutterM:         clutterM,
			}

			var progress coverage.ProgressFunc
			if !quiet {
				progress = func(percent int, message string) {
					fmt.Fprintf(os.Stderr, "[%3d%%] %s\n", percent, message)
				}
			}

			result, err := eng.RunCoverage(cmd.Context(), input.Candidates, n, opts, progress)
			if err != nil {
				return fmt.Errorf("run coverage: %w", err)
			}
			return json.NewEncoder(os.Stdout).Encode(result)
		},
	}

	cmd.Flags().StringVar(&candidatesPath, "candidates", "", "path to a JSON file listing candidate sites")
	cmd.Flags().IntVar(&n, "n", 1, "number of sites to select")
	cmd.Flags().Float64Var(&radiusM, "radius", 5000, "viewshed radius in metres")
	cmd.Flags().Float64Var(&rxHeight, "rx-height", 2, "assumed receiver height in metres")
	cmd.Flags().Float64Var(&freqMHz, "freq-mhz", 915, "carrier frequency in MHz")
	cmd.Flags().Float64Var(&resolutionM, "resolution", 30, "viewshed sample resolution in metres")
	cmd.Flags().Float64Var(&k, "k-factor", 4.0/3.0, "effective Earth radius factor")
	cmd.Flags().Float64Var(&clutterM, "clutter", 0, "additional clutter height in metres")
	cmd.Flags().BoolVar(&quiet, "quiet", false, "suppress progress output on stderr")
	cmd.MarkFlagRequired("candidates")

	return cmd
}

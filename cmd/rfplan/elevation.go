// rfplan - RF site-planning engine for low-power wireless mesh deployments
// SPDX-License-Identifier: AGPL-3.0-or-later

package main

import (
	"fmt"
	"os"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
)

func newElevationCmd() *cobra.Command {
	var lat, lon float64

	cmd := &cobra.Command{
		Use:   "elevation",
		Short: "Look up the elevation at a single coordinate",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := eng.GetElevation(cmd.Context(), lat, lon)
			if err != nil {
				return fmt.Errorf("get elevation: %w", err)
			}
			return json.NewEncoder(os.Stdout).Encode(e)
		},
	}

	cmd.Flags().Float64Var(&lat, "lat", 0, "latitude in decimal degrees")
	cmd.Flags().Float64Var(&lon, "lon", 0, "longitude in decimal degrees")
	cmd.MarkFlagRequired("lat")
	cmd.MarkFlagRequired("lon")

	return cmd
}

// rfplan - RF site-planning engine for low-power wireless mesh deployments
// SPDX-License-Identifier: AGPL-3.0-or-later

package main

import (
	"fmt"
	"os"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/meshrf/planner/internal/engine"
	"github.com/meshrf/planner/internal/physics"
	"github.com/meshrf/planner/internal/terrain"
)

var modelNames = map[string]physics.PathLossModel{
	"fspl":             physics.ModelFSPL,
	"hata_urban_small": physics.ModelHataUrbanSmall,
	"hata_urban_large": physics.ModelHataUrbanLarge,
	"hata_suburban":    physics.ModelHataSuburban,
	"hata_rural":       physics.ModelHataRural,
	"bullington":       physics.ModelBullington,
}

func newLinkCmd() *cobra.Command {
	var txLat, txLon, rxLat, rxLon, freqMHz, txHeight, rxHeight float64
	var model string

	cmd := &cobra.Command{
		Use:   "link",
		Short: "Analyze a point-to-point link",
		RunE: func(cmd *cobra.Command, args []string) error {
			m, ok := modelNames[model]
			if !ok {
				return fmt.Errorf("unknown model %q", model)
			}

			outcome, err := eng.CalculateLink(cmd.Context(), engine.LinkParams{
				TX:           terrain.Coordinate{Lat: txLat, Lon: txLon},
				RX:           terrain.Coordinate{Lat: rxLat, Lon: rxLon},
				FrequencyMHz: freqMHz,
				TxHeightM:    txHeight,
				RxHeightM:    rxHeight,
				Model:        m,
			})
			if err != nil {
				return fmt.Errorf("calculate link: %w", err)
			}
			return json.NewEncoder(os.Stdout).Encode(outcome)
		},
	}

	cmd.Flags().Float64Var(&txLat, "tx-lat", 0, "transmitter latitude")
	cmd.Flags().Float64Var(&txLon, "tx-lon", 0, "transmitter longitude")
	cmd.Flags().Float64Var(&rxLat, "rx-lat", 0, "receiver latitude")
	cmd.Flags().Float64Var(&rxLon, "rx-lon", 0, "receiver longitude")
	cmd.Flags().Float64Var(&freqMHz, "freq-mhz", 915, "carrier frequency in MHz")
	cmd.Flags().Float64Var(&txHeight, "tx-height", 30, "transmitter mast height in metres")
	cmd.Flags().Float64Var(&rxHeight, "rx-height", 2, "receiver mast height in metres")
	cmd.Flags().StringVar(&model, "model", "bullington", "path loss model: fspl, hata_urban_small, hata_urban_large, hata_suburban, hata_rural, bullington")

	return cmd
}

// rfplan - RF site-planning engine for low-power wireless mesh deployments
// SPDX-License-Identifier: AGPL-3.0-or-later

// Command rfplan is a CLI shell over internal/engine: elevation
// lookups, single-link analysis, candidate scoring, and N-site
// coverage selection.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/meshrf/planner/internal/config"
	"github.com/meshrf/planner/internal/engine"
	"github.com/meshrf/planner/internal/logging"
	"github.com/meshrf/planner/internal/terrain"
)

var eng *engine.Engine
var tm *terrain.Manager

func main() {
	rootCmd := &cobra.Command{
		Use:   "rfplan",
		Short: "RF site-planning engine for low-power wireless mesh deployments",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadWithKoanf()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			logging.Init(logging.Config{
				Level:     cfg.Logging.Level,
				Format:    cfg.Logging.Format,
				Caller:    cfg.Logging.Caller,
				Timestamp: true,
			})

			source := terrain.NewHTTPSource(cfg.TileSource)
			m, err := terrain.NewManager(cfg.TileSource, cfg.Cache, source)
			if err != nil {
				return fmt.Errorf("init terrain manager: %w", err)
			}
			tm = m
			eng = engine.New(tm)
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if tm != nil {
				return tm.Close()
			}
			return nil
		},
	}

	rootCmd.AddCommand(
		newElevationCmd(),
		newLinkCmd(),
		newScoreCmd(),
		newCoverageCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

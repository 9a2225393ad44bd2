package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/AttackingOrDefending/oddsgen/internal/service"
)

var calJSON bool

func init() {
	calibrateCmd.Flags().BoolVar(&calJSON, "json", false, "Emit the calibration summary as JSON")
}

var calibrateCmd = &cobra.Command{
	Use:   "calibrate",
	Short: "Run one calibration sweep across the configured opponent ladder",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := service.NewGeneratorService(cfg.Tunables, cfg.Generator.Seed, appLogger)
		sampler := service.NewCalibrationSampler(
			svc,
			cfg.Calibration.OpponentLadder,
			cfg.Calibration.SamplesPerRating,
			cfg.Calibration.InitialTimeSec,
			cfg.Calibration.IncrementSec,
			appLogger,
		)

		summary, err := sampler.Run(context.Background())
		if err != nil {
			return err
		}

		if calJSON {
			return json.NewEncoder(os.Stdout).Encode(summary)
		}

		fmt.Printf("Calibration run %s (%d ratings, %d samples each)\n",
			summary.RunID, len(summary.Rows), cfg.Calibration.SamplesPerRating)
		fmt.Printf("%-14s %-12s %-12s %-12s %-12s\n",
			"opponent_elo", "mean_budget", "min_budget", "max_budget", "mean_removed")
		for _, row := range summary.Rows {
			fmt.Printf("%-14s %-12s %-12s %-12s %-12s\n",
				round1(row.OpponentElo),
				round2(row.MeanBudget),
				round2(row.MinBudget),
				round2(row.MaxBudget),
				round2(row.MeanRemoved),
			)
		}
		return nil
	},
}

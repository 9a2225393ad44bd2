package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/AttackingOrDefending/oddsgen/internal/models"
	"github.com/AttackingOrDefending/oddsgen/internal/service"
)

var estSide string

func init() {
	estimateCmd.Flags().StringVar(&estSide, "side", "white", "Side to estimate for (white or black)")
}

var estimateCmd = &cobra.Command{
	Use:   "estimate <fen>",
	Short: "Estimate the skill-equivalent Elo of a position",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		side, err := models.ParseSide(estSide)
		if err != nil {
			return err
		}

		ttl := time.Duration(0)
		if cfg.Estimator.CacheEnabled {
			ttl = time.Duration(cfg.Estimator.CacheTTLSeconds) * time.Second
		}
		estimator := service.NewCachedEstimator(cfg.Tunables, ttl, cfg.Estimator.CacheMaxEntries, appLogger)

		estimated, err := estimator.Estimate(args[0], side)
		if err != nil {
			return err
		}

		fmt.Printf("Estimated Elo for %s: %s\n", side.Name(), round1(estimated))
		return nil
	},
}

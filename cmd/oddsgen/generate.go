package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/AttackingOrDefending/oddsgen/internal/models"
	"github.com/AttackingOrDefending/oddsgen/internal/service"
)

var (
	genOpponentElo float64
	genGames       int
	genScore       float64
	genInitialTime float64
	genIncrement   float64
	genSeed        int64
	genJSON        bool
)

func init() {
	generateCmd.Flags().Float64Var(&genOpponentElo, "opponent-elo", 0, "Opponent rating")
	generateCmd.Flags().IntVar(&genGames, "games", 0, "Number of games played against the opponent")
	generateCmd.Flags().Float64Var(&genScore, "score", 0, "Cumulative score against the opponent (wins + 0.5*draws)")
	generateCmd.Flags().Float64Var(&genInitialTime, "initial-time", 180, "Initial clock time in seconds")
	generateCmd.Flags().Float64Var(&genIncrement, "increment", 2, "Increment per move in seconds")
	generateCmd.Flags().Int64Var(&genSeed, "seed", 0, "Random seed (0 seeds from the wall clock)")
	generateCmd.Flags().BoolVar(&genJSON, "json", false, "Emit the full position as JSON")
	_ = generateCmd.MarkFlagRequired("opponent-elo")
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a handicapped starting position",
	RunE: func(cmd *cobra.Command, args []string) error {
		seed := genSeed
		if seed == 0 {
			seed = cfg.Generator.Seed
		}
		svc := service.NewGeneratorService(cfg.Tunables, seed, appLogger)

		gc := models.GameContext{
			OpponentElo:     genOpponentElo,
			GamesPlayed:     genGames,
			CumulativeScore: genScore,
			InitialTimeSec:  genInitialTime,
			IncrementSec:    genIncrement,
		}

		pos, err := svc.Generate(context.Background(), gc)
		if err != nil {
			return err
		}

		if genJSON {
			return json.NewEncoder(os.Stdout).Encode(pos)
		}

		fmt.Printf("FEN:              %s\n", pos.FEN)
		fmt.Printf("Handicapped side: %s\n", pos.HandicappedSide.Name())
		fmt.Printf("Removed pieces:   %d\n", pos.RemovedCount())
		fmt.Printf("Adjusted Elo:     %s\n", round1(pos.Diagnostics.AdjustedElo))
		fmt.Printf("Time-adj. Elo:    %s\n", round1(pos.Diagnostics.TimeAdjustedElo))
		fmt.Printf("Effective Elo:    %s\n", round1(pos.Diagnostics.EffectiveElo))
		fmt.Printf("Handicap budget:  %s\n", round2(pos.Diagnostics.HandicapBudget))
		return nil
	},
}

func round1(v float64) string {
	return decimal.NewFromFloat(v).Round(1).String()
}

func round2(v float64) string {
	return decimal.NewFromFloat(v).Round(2).String()
}

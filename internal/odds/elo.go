package odds

import (
	"math"
	"math/rand"

	"github.com/AttackingOrDefending/oddsgen/internal/models"
)

// Reference time control the time scaling is anchored to: 3 minutes plus a
// 2 second increment over the average game length.
const (
	referenceInitialSec   = 180.0
	referenceIncrementSec = 2.0
)

// ComputeBudget converts a game context into a handicap budget in
// pawn-equivalent units, together with the intermediate Elo values.
//
// The pipeline is: performance correction from the score history, logarithmic
// time-control scaling, a clamped gaussian perturbation, then conversion of
// the shortfall below BaseElo into material. All randomness is drawn from the
// supplied rng, so a seeded source makes the result reproducible.
func ComputeBudget(gc models.GameContext, tun models.Tunables, rng *rand.Rand) (float64, models.Diagnostics, error) {
	if err := gc.Validate(); err != nil {
		return 0, models.Diagnostics{}, err
	}

	// Performance-rating style correction. The +10 in the denominator damps
	// the correction while the sample is small.
	delta := (2*gc.CumulativeScore - float64(gc.GamesPlayed)) * 400.0 / (float64(gc.GamesPlayed) + 10)
	adjustedElo := gc.OpponentElo - delta

	baseTime := referenceInitialSec + referenceIncrementSec*tun.AverageMoves
	currentTime := gc.InitialTimeSec + gc.IncrementSec*tun.AverageMoves
	if currentTime < 1 {
		currentTime = 1
	}
	timeAdjustment := tun.TimeDoublingElo * math.Log2(currentTime/baseTime)
	timeAdjustedElo := adjustedElo + timeAdjustment

	draw := rng.NormFloat64() * tun.VariationStd
	if draw > tun.MaxVariation {
		draw = tun.MaxVariation
	} else if draw < -tun.MaxVariation {
		draw = -tun.MaxVariation
	}
	effectiveElo := timeAdjustedElo + draw

	budget := (tun.BaseElo - effectiveElo) / tun.PawnToElo
	if budget < 0 {
		budget = 0
	}

	diag := models.Diagnostics{
		OpponentElo:     gc.OpponentElo,
		AdjustedElo:     adjustedElo,
		TimeAdjustedElo: timeAdjustedElo,
		EffectiveElo:    effectiveElo,
		HandicapBudget:  budget,
	}
	return budget, diag, nil
}

package odds

import (
	"fmt"

	"github.com/notnil/chess"

	"github.com/AttackingOrDefending/oddsgen/internal/models"
)

// EstimateElo recovers an approximate skill-equivalent Elo from a position
// for the given side. It is the inverse of the forward pipeline: the signed,
// positionally weighted material imbalance (opponent material positive, own
// material negative) is converted back through BaseElo and PawnToElo.
//
// On the untouched standard starting position the imbalance is zero and the
// estimate is exactly BaseElo for either side. A structurally invalid FEN is
// rejected with ErrMalformedBoard; there is no best-effort parsing.
func EstimateElo(fen string, side chess.Color, tun models.Tunables) (float64, error) {
	fenOpt, err := chess.FEN(fen)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", models.ErrMalformedBoard, err)
	}
	board := chess.NewGame(fenOpt).Position().Board()

	penalty := 0.0
	for sq, piece := range board.SquareMap() {
		if piece == chess.NoPiece || piece.Type() == chess.King {
			continue
		}
		v := WeightedValue(sq, piece.Type())
		if piece.Color() == side {
			penalty -= v
		} else {
			penalty += v
		}
	}

	return tun.BaseElo - tun.PawnToElo*penalty, nil
}

// Package odds implements the handicap pipeline: an Elo-adjustment model that
// converts match history and time control into a material budget, a
// randomized greedy selector that spends the budget on piece removals, a
// synthesizer that emits the resulting position as FEN, and an inverse
// estimator that recovers a skill estimate from any such position.
package odds

import "github.com/notnil/chess"

// Base material values in pawn-equivalent units. The king is never a removal
// candidate and carries no removable value.
var baseValues = map[chess.PieceType]float64{
	chess.Queen:  9,
	chess.Rook:   5,
	chess.Bishop: 3,
	chess.Knight: 3,
	chess.Pawn:   1,
}

// BaseValue returns the base material value of a piece type, or 0 for the
// king and unknown types.
func BaseValue(pt chess.PieceType) float64 {
	return baseValues[pt]
}

// PositionalMultiplier returns the positional weight multiplier for a piece
// on a given square. Squares on ranks 5-8 are normalized by mirroring the
// file, so both sides share one table: central pawns 1.2, g-file knights 1.1,
// h-file rooks 1.2, everything else 1.0. These buckets are calibration
// constants; changing them shifts the whole difficulty curve.
func PositionalMultiplier(sq chess.Square, pt chess.PieceType) float64 {
	file := int(sq.File())
	if int(sq.Rank()) >= 4 {
		file = 7 - file
	}

	switch {
	case pt == chess.Pawn && file >= 3 && file <= 5:
		return 1.2
	case pt == chess.Knight && file == 6:
		return 1.1
	case pt == chess.Rook && file == 7:
		return 1.2
	}
	return 1.0
}

// WeightedValue returns the positionally weighted material value of a piece
// type standing on a square.
func WeightedValue(sq chess.Square, pt chess.PieceType) float64 {
	return baseValues[pt] * PositionalMultiplier(sq, pt)
}

package odds

import (
	"testing"

	"github.com/notnil/chess"
	"github.com/stretchr/testify/assert"
)

func TestBaseValue(t *testing.T) {
	assert.Equal(t, 9.0, BaseValue(chess.Queen))
	assert.Equal(t, 5.0, BaseValue(chess.Rook))
	assert.Equal(t, 3.0, BaseValue(chess.Bishop))
	assert.Equal(t, 3.0, BaseValue(chess.Knight))
	assert.Equal(t, 1.0, BaseValue(chess.Pawn))
	assert.Equal(t, 0.0, BaseValue(chess.King))
}

func TestPositionalMultiplier(t *testing.T) {
	tests := []struct {
		name string
		sq   chess.Square
		pt   chess.PieceType
		want float64
	}{
		{"central pawn d2", chess.D2, chess.Pawn, 1.2},
		{"central pawn e2", chess.E2, chess.Pawn, 1.2},
		{"central pawn f2", chess.F2, chess.Pawn, 1.2},
		{"wing pawn a2", chess.A2, chess.Pawn, 1.0},
		{"wing pawn h2", chess.H2, chess.Pawn, 1.0},
		{"kingside knight g1", chess.G1, chess.Knight, 1.1},
		{"queenside knight b1", chess.B1, chess.Knight, 1.0},
		{"kingside rook h1", chess.H1, chess.Rook, 1.2},
		{"queenside rook a1", chess.A1, chess.Rook, 1.0},
		{"queen d1", chess.D1, chess.Queen, 1.0},
		{"bishop c1", chess.C1, chess.Bishop, 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PositionalMultiplier(tt.sq, tt.pt))
		})
	}
}

// Ranks 5-8 flip the file (7-file), so on black's back rank the buckets land
// on the mirrored squares: b8 plays the role of g1, a8 of h1.
func TestPositionalMultiplierMirrorsUpperRanks(t *testing.T) {
	assert.Equal(t, 1.1, PositionalMultiplier(chess.B8, chess.Knight))
	assert.Equal(t, 1.0, PositionalMultiplier(chess.G8, chess.Knight))
	assert.Equal(t, 1.2, PositionalMultiplier(chess.A8, chess.Rook))
	assert.Equal(t, 1.0, PositionalMultiplier(chess.H8, chess.Rook))
	assert.Equal(t, 1.2, PositionalMultiplier(chess.C7, chess.Pawn))
	assert.Equal(t, 1.2, PositionalMultiplier(chess.D7, chess.Pawn))
	assert.Equal(t, 1.2, PositionalMultiplier(chess.E7, chess.Pawn))
	assert.Equal(t, 1.0, PositionalMultiplier(chess.F7, chess.Pawn))
}

func TestWeightedValue(t *testing.T) {
	assert.InDelta(t, 1.2, WeightedValue(chess.E2, chess.Pawn), 1e-9)
	assert.InDelta(t, 6.0, WeightedValue(chess.H1, chess.Rook), 1e-9)
	assert.InDelta(t, 3.3, WeightedValue(chess.G1, chess.Knight), 1e-9)
	assert.InDelta(t, 9.0, WeightedValue(chess.D1, chess.Queen), 1e-9)
}

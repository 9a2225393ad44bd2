package odds

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/notnil/chess"

	"github.com/AttackingOrDefending/oddsgen/internal/models"
)

// Non-king back-rank pieces by file, king-side and queen-side rooks included.
var backRankLayout = []struct {
	file int
	pt   chess.PieceType
}{
	{0, chess.Rook},
	{1, chess.Knight},
	{2, chess.Bishop},
	{3, chess.Queen},
	{5, chess.Bishop},
	{6, chess.Knight},
	{7, chess.Rook},
}

func squareAt(file, rank int) chess.Square {
	return chess.Square(rank*8 + file)
}

// RemovalCandidates returns the 15 removable squares of a side, weighted by
// the valuation model: the seven non-king back-rank pieces and the eight
// pawns. The king is never a candidate.
func RemovalCandidates(side chess.Color) []Candidate {
	backRank, pawnRank := 0, 1
	if side == chess.Black {
		backRank, pawnRank = 7, 6
	}

	candidates := make([]Candidate, 0, 15)
	for _, p := range backRankLayout {
		sq := squareAt(p.file, backRank)
		candidates = append(candidates, Candidate{Square: sq, Value: WeightedValue(sq, p.pt)})
	}
	for file := 0; file < 8; file++ {
		sq := squareAt(file, pawnRank)
		candidates = append(candidates, Candidate{Square: sq, Value: WeightedValue(sq, chess.Pawn)})
	}
	return candidates
}

// Generate produces a handicapped starting position for the given game
// context. The handicapped side is chosen uniformly at random, the budget is
// computed by the Elo-adjustment model and spent by the greedy selector, and
// the surviving placement is serialized to FEN with white to move.
//
// Castling rights are recomputed from the surviving rooks, so removing a rook
// forfeits the corresponding right in the emitted FEN without the selector
// tracking it.
func Generate(gc models.GameContext, tun models.Tunables, rng *rand.Rand) (*models.OddsPosition, error) {
	budget, diag, err := ComputeBudget(gc, tun, rng)
	if err != nil {
		return nil, err
	}

	side := chess.White
	if rng.Intn(2) == 1 {
		side = chess.Black
	}

	removed := SelectRemovals(budget, RemovalCandidates(side), rng)

	placement := make(map[chess.Square]chess.Piece)
	for sq, piece := range chess.StartingPosition().Board().SquareMap() {
		if piece == chess.NoPiece {
			continue
		}
		placement[sq] = piece
	}
	for _, sq := range removed {
		delete(placement, sq)
	}
	board := chess.NewBoard(placement)

	fen := fmt.Sprintf("%s w %s - 0 1", board.String(), castlingField(board))
	if _, err := chess.FEN(fen); err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrMalformedBoard, err)
	}

	return &models.OddsPosition{
		ID:              uuid.New(),
		FEN:             fen,
		HandicappedSide: side,
		RemovedSquares:  removed,
		Diagnostics:     diag,
		GeneratedAt:     time.Now().UTC(),
	}, nil
}

// castlingField derives the FEN castling field from the rooks still standing
// on their home squares. Kings are never removed, so only rooks matter.
func castlingField(board *chess.Board) string {
	rights := ""
	if board.Piece(chess.H1) == chess.WhiteRook {
		rights += "K"
	}
	if board.Piece(chess.A1) == chess.WhiteRook {
		rights += "Q"
	}
	if board.Piece(chess.H8) == chess.BlackRook {
		rights += "k"
	}
	if board.Piece(chess.A8) == chess.BlackRook {
		rights += "q"
	}
	if rights == "" {
		rights = "-"
	}
	return rights
}

package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/notnil/chess"
)

// Diagnostics carries the intermediate values of the Elo-adjustment model for
// a single generation. They are returned for observability only; nothing
// downstream of the handicap budget consumes them.
type Diagnostics struct {
	OpponentElo     float64 `json:"opponent_elo"`
	AdjustedElo     float64 `json:"adjusted_elo"`
	TimeAdjustedElo float64 `json:"time_adjusted_elo"`
	EffectiveElo    float64 `json:"effective_elo"`
	HandicapBudget  float64 `json:"handicap_budget"`
}

// OddsPosition is a generated handicapped starting position.
type OddsPosition struct {
	ID              uuid.UUID      `json:"id"`
	FEN             string         `json:"fen"`
	HandicappedSide chess.Color    `json:"handicapped_side"`
	RemovedSquares  []chess.Square `json:"removed_squares"`
	Diagnostics     Diagnostics    `json:"diagnostics"`
	GeneratedAt     time.Time      `json:"generated_at"`
}

// RemovedCount returns the number of pieces removed from the handicapped side.
func (p *OddsPosition) RemovedCount() int {
	return len(p.RemovedSquares)
}

package models

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/notnil/chess"
)

var validate = validator.New()

// GameContext describes the match history and time control against a single
// opponent. It is the immutable input to a generation request.
type GameContext struct {
	OpponentElo     float64 `json:"opponent_elo"`
	GamesPlayed     int     `json:"games_played" validate:"gte=0"`
	CumulativeScore float64 `json:"cumulative_score" validate:"gte=0"` // wins + 0.5*draws
	InitialTimeSec  float64 `json:"initial_time_sec" validate:"gte=0"`
	IncrementSec    float64 `json:"increment_sec" validate:"gte=0"`
}

// Validate checks the context against the input taxonomy: negative games,
// score outside [0, gamesPlayed] and negative time values are rejected.
func (gc GameContext) Validate() error {
	if err := validate.Struct(gc); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if gc.CumulativeScore > float64(gc.GamesPlayed) {
		return fmt.Errorf("%w: cumulative score %.1f exceeds games played %d",
			ErrInvalidInput, gc.CumulativeScore, gc.GamesPlayed)
	}
	return nil
}

// ParseSide converts a user-supplied side name into a chess color.
func ParseSide(s string) (chess.Color, error) {
	switch s {
	case "w", "white", "White", "WHITE":
		return chess.White, nil
	case "b", "black", "Black", "BLACK":
		return chess.Black, nil
	}
	return chess.NoColor, fmt.Errorf("%w: %q", ErrUnknownSide, s)
}

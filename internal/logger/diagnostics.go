// Package logger provides structured logging for the odds generator.
package logger

import (
	"github.com/sirupsen/logrus"

	"github.com/AttackingOrDefending/oddsgen/internal/models"
)

// DiagnosticsLogger provides a dedicated trail of the intermediate values of
// every generation and estimate, so calibration runs can be replayed from the
// logs alone.
type DiagnosticsLogger struct {
	*logrus.Entry
}

// NewDiagnosticsLogger creates a new diagnostics logger.
func NewDiagnosticsLogger(baseLogger *logrus.Logger) *DiagnosticsLogger {
	return &DiagnosticsLogger{
		Entry: baseLogger.WithField("component", "diagnostics"),
	}
}

// LogGeneration records a generated odds position together with the Elo
// pipeline intermediates that produced it.
func (dl *DiagnosticsLogger) LogGeneration(gc models.GameContext, pos *models.OddsPosition) {
	dl.WithFields(logrus.Fields{
		"position_id":       pos.ID.String(),
		"opponent_elo":      gc.OpponentElo,
		"games_played":      gc.GamesPlayed,
		"cumulative_score":  gc.CumulativeScore,
		"adjusted_elo":      pos.Diagnostics.AdjustedElo,
		"time_adjusted_elo": pos.Diagnostics.TimeAdjustedElo,
		"effective_elo":     pos.Diagnostics.EffectiveElo,
		"handicap_budget":   pos.Diagnostics.HandicapBudget,
		"handicapped_side":  pos.HandicappedSide.Name(),
		"removed_pieces":    pos.RemovedCount(),
		"fen":               pos.FEN,
	}).Info("Odds position generated")
}

// LogGenerationFailure records a rejected generation request.
func (dl *DiagnosticsLogger) LogGenerationFailure(gc models.GameContext, err error) {
	dl.WithFields(logrus.Fields{
		"opponent_elo":     gc.OpponentElo,
		"games_played":     gc.GamesPlayed,
		"cumulative_score": gc.CumulativeScore,
		"error":            err.Error(),
	}).Warn("Odds position generation rejected")
}

// LogEstimate records an inverse Elo estimate.
func (dl *DiagnosticsLogger) LogEstimate(fen string, side string, estimatedElo float64, cached bool) {
	dl.WithFields(logrus.Fields{
		"fen":           fen,
		"side":          side,
		"estimated_elo": estimatedElo,
		"cached":        cached,
	}).Info("Elo estimate computed")
}

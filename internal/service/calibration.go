package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/AttackingOrDefending/oddsgen/internal/metrics"
	"github.com/AttackingOrDefending/oddsgen/internal/models"
)

// CalibrationRow summarizes the samples taken for one opponent rating.
type CalibrationRow struct {
	OpponentElo float64 `json:"opponent_elo"`
	Samples     int     `json:"samples"`
	MeanBudget  float64 `json:"mean_budget"`
	MinBudget   float64 `json:"min_budget"`
	MaxBudget   float64 `json:"max_budget"`
	MeanRemoved float64 `json:"mean_removed"`
}

// CalibrationSummary is the result of one calibration sweep.
type CalibrationSummary struct {
	RunID      uuid.UUID        `json:"run_id"`
	StartedAt  time.Time        `json:"started_at"`
	FinishedAt time.Time        `json:"finished_at"`
	Rows       []CalibrationRow `json:"rows"`
}

// CalibrationSampler sweeps an opponent-rating ladder through the generator
// and publishes the observed budget distribution, so drift in the tuning
// constants shows up in the metrics without any live games.
type CalibrationSampler struct {
	generator        *GeneratorService
	opponentLadder   []float64
	samplesPerRating int
	initialTimeSec   float64
	incrementSec     float64
	logger           *logrus.Entry
}

// NewCalibrationSampler creates a calibration sampler over the generator.
func NewCalibrationSampler(generator *GeneratorService, ladder []float64, samplesPerRating int, initialTimeSec, incrementSec float64, baseLogger *logrus.Logger) *CalibrationSampler {
	return &CalibrationSampler{
		generator:        generator,
		opponentLadder:   ladder,
		samplesPerRating: samplesPerRating,
		initialTimeSec:   initialTimeSec,
		incrementSec:     incrementSec,
		logger:           baseLogger.WithField("component", "calibration"),
	}
}

// Run performs one sweep across the ladder with an empty score history.
func (cs *CalibrationSampler) Run(ctx context.Context) (*CalibrationSummary, error) {
	summary := &CalibrationSummary{
		RunID:     uuid.New(),
		StartedAt: time.Now().UTC(),
		Rows:      make([]CalibrationRow, 0, len(cs.opponentLadder)),
	}

	for _, opponentElo := range cs.opponentLadder {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		gc := models.GameContext{
			OpponentElo:    opponentElo,
			InitialTimeSec: cs.initialTimeSec,
			IncrementSec:   cs.incrementSec,
		}

		row := CalibrationRow{OpponentElo: opponentElo}
		for i := 0; i < cs.samplesPerRating; i++ {
			pos, err := cs.generator.Generate(ctx, gc)
			if err != nil {
				return nil, fmt.Errorf("calibration sample for rating %.0f: %w", opponentElo, err)
			}
			budget := pos.Diagnostics.HandicapBudget
			if row.Samples == 0 || budget < row.MinBudget {
				row.MinBudget = budget
			}
			if row.Samples == 0 || budget > row.MaxBudget {
				row.MaxBudget = budget
			}
			row.MeanBudget += budget
			row.MeanRemoved += float64(pos.RemovedCount())
			row.Samples++
		}
		if row.Samples > 0 {
			row.MeanBudget /= float64(row.Samples)
			row.MeanRemoved /= float64(row.Samples)
		}

		metrics.UpdateCalibrationMeanBudget(fmt.Sprintf("%.0f", opponentElo), row.MeanBudget)
		summary.Rows = append(summary.Rows, row)
	}

	summary.FinishedAt = time.Now().UTC()
	metrics.RecordCalibrationRun()
	cs.logger.WithFields(logrus.Fields{
		"run_id":   summary.RunID.String(),
		"ratings":  len(summary.Rows),
		"duration": summary.FinishedAt.Sub(summary.StartedAt).String(),
	}).Info("Calibration sweep completed")
	return summary, nil
}

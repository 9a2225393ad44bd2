package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AttackingOrDefending/oddsgen/internal/models"
)

func TestCalibrationSamplerRun(t *testing.T) {
	svc := NewGeneratorService(models.DefaultTunables(), 21, quietLogger())
	sampler := NewCalibrationSampler(svc, []float64{1000, 2000, 3000}, 10, 180, 2, quietLogger())

	summary, err := sampler.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, summary.Rows, 3)

	for _, row := range summary.Rows {
		assert.Equal(t, 10, row.Samples)
		assert.GreaterOrEqual(t, row.MeanBudget, 0.0)
		assert.GreaterOrEqual(t, row.MaxBudget, row.MinBudget)
		assert.GreaterOrEqual(t, row.MeanBudget, row.MinBudget)
		assert.LessOrEqual(t, row.MeanBudget, row.MaxBudget)
	}

	// Weaker opponents should, on average, receive bigger handicaps.
	assert.Greater(t, summary.Rows[0].MeanBudget, summary.Rows[2].MeanBudget)
	assert.False(t, summary.FinishedAt.Before(summary.StartedAt))
}

func TestCalibrationSamplerCancelled(t *testing.T) {
	svc := NewGeneratorService(models.DefaultTunables(), 21, quietLogger())
	sampler := NewCalibrationSampler(svc, []float64{1000, 2000}, 5, 180, 2, quietLogger())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := sampler.Run(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

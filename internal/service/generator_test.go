package service

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AttackingOrDefending/oddsgen/internal/models"
)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func TestGeneratorServiceDeterministicSeed(t *testing.T) {
	gc := models.GameContext{OpponentElo: 2000, GamesPlayed: 10, CumulativeScore: 8, InitialTimeSec: 60, IncrementSec: 1}

	first := NewGeneratorService(models.DefaultTunables(), 99, quietLogger())
	second := NewGeneratorService(models.DefaultTunables(), 99, quietLogger())

	p1, err := first.Generate(context.Background(), gc)
	require.NoError(t, err)
	p2, err := second.Generate(context.Background(), gc)
	require.NoError(t, err)

	assert.Equal(t, p1.FEN, p2.FEN)
	assert.Equal(t, p1.HandicappedSide, p2.HandicappedSide)
}

func TestGeneratorServiceRejectsInvalidContext(t *testing.T) {
	svc := NewGeneratorService(models.DefaultTunables(), 1, quietLogger())

	_, err := svc.Generate(context.Background(), models.GameContext{OpponentElo: 2000, GamesPlayed: -1})
	require.Error(t, err)
	assert.True(t, errors.Is(err, models.ErrInvalidInput))
}

func TestGeneratorServiceConcurrentCalls(t *testing.T) {
	svc := NewGeneratorService(models.DefaultTunables(), 5, quietLogger())
	gc := models.GameContext{OpponentElo: 1800, GamesPlayed: 2, CumulativeScore: 1, InitialTimeSec: 120, IncrementSec: 1}

	done := make(chan error, 8)
	for i := 0; i < 8; i++ {
		go func() {
			_, err := svc.Generate(context.Background(), gc)
			done <- err
		}()
	}
	for i := 0; i < 8; i++ {
		assert.NoError(t, <-done)
	}
}

func TestGeneratorServiceTunables(t *testing.T) {
	tun := models.DefaultTunables()
	tun.BaseElo = 2800
	svc := NewGeneratorService(tun, 1, quietLogger())
	assert.Equal(t, 2800.0, svc.Tunables().BaseElo)
}

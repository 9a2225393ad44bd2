// Package service wires the odds pipeline to logging, metrics and caching.
package service

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/AttackingOrDefending/oddsgen/internal/logger"
	"github.com/AttackingOrDefending/oddsgen/internal/metrics"
	"github.com/AttackingOrDefending/oddsgen/internal/models"
	"github.com/AttackingOrDefending/oddsgen/internal/odds"
)

// GeneratorService produces odds positions for game contexts. It owns the
// random source; a mutex serializes draws so concurrent callers are safe.
type GeneratorService struct {
	tunables    models.Tunables
	rng         *rand.Rand
	mu          sync.Mutex
	diagnostics *logger.DiagnosticsLogger
}

// NewGeneratorService creates a generator service. A zero seed falls back to
// the wall clock; any other seed makes the service fully deterministic.
func NewGeneratorService(tun models.Tunables, seed int64, baseLogger *logrus.Logger) *GeneratorService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &GeneratorService{
		tunables:    tun,
		rng:         rand.New(rand.NewSource(seed)),
		diagnostics: logger.NewDiagnosticsLogger(baseLogger),
	}
}

// Tunables returns the model constants the service was built with.
func (s *GeneratorService) Tunables() models.Tunables {
	return s.tunables
}

// Generate validates the context, runs the pipeline and records the outcome.
func (s *GeneratorService) Generate(ctx context.Context, gc models.GameContext) (*models.OddsPosition, error) {
	_ = ctx

	s.mu.Lock()
	pos, err := odds.Generate(gc, s.tunables, s.rng)
	s.mu.Unlock()

	if err != nil {
		metrics.RecordGenerationFailure()
		s.diagnostics.LogGenerationFailure(gc, err)
		return nil, err
	}

	metrics.RecordGeneration(
		pos.HandicappedSide.Name(),
		pos.Diagnostics.HandicapBudget,
		pos.RemovedCount(),
		pos.Diagnostics.EffectiveElo,
	)
	s.diagnostics.LogGeneration(gc, pos)
	return pos, nil
}

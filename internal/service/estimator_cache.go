package service

import (
	"fmt"
	"sync"
	"time"

	"github.com/notnil/chess"
	cache "github.com/patrickmn/go-cache"
	"github.com/sirupsen/logrus"

	"github.com/AttackingOrDefending/oddsgen/internal/logger"
	"github.com/AttackingOrDefending/oddsgen/internal/metrics"
	"github.com/AttackingOrDefending/oddsgen/internal/models"
	"github.com/AttackingOrDefending/oddsgen/internal/odds"
)

// EstimateKey identifies a cached estimate. The estimator is a pure function
// of board, side and tunables; tunables are fixed per service instance, so
// board and side suffice.
type EstimateKey struct {
	FEN  string
	Side chess.Color
}

// String returns string representation of the key
func (k EstimateKey) String() string {
	return fmt.Sprintf("%s:%s", k.FEN, k.Side)
}

// CachedEstimator serves inverse Elo estimates with in-memory memoization.
type CachedEstimator struct {
	cache       *cache.Cache
	tunables    models.Tunables
	maxEntries  int
	diagnostics *logger.DiagnosticsLogger
	mu          sync.RWMutex
	hitCount    uint64
	missCount   uint64
}

// NewCachedEstimator creates a new cached estimator. A nil cache (ttl <= 0)
// disables memoization and every call computes from scratch.
func NewCachedEstimator(tun models.Tunables, ttl time.Duration, maxEntries int, baseLogger *logrus.Logger) *CachedEstimator {
	ce := &CachedEstimator{
		tunables:    tun,
		maxEntries:  maxEntries,
		diagnostics: logger.NewDiagnosticsLogger(baseLogger),
	}
	if ttl > 0 {
		ce.cache = cache.New(ttl, ttl*2)
	}
	return ce
}

// Estimate returns the estimated Elo for the given side of the position.
func (ce *CachedEstimator) Estimate(fen string, side chess.Color) (float64, error) {
	key := EstimateKey{FEN: fen, Side: side}.String()

	if ce.cache != nil {
		if v, ok := ce.cache.Get(key); ok {
			ce.mu.Lock()
			ce.hitCount++
			ce.mu.Unlock()
			metrics.RecordEstimate(true)
			est := v.(float64)
			ce.diagnostics.LogEstimate(fen, side.Name(), est, true)
			return est, nil
		}
	}

	est, err := odds.EstimateElo(fen, side, ce.tunables)
	if err != nil {
		return 0, err
	}

	ce.mu.Lock()
	ce.missCount++
	ce.mu.Unlock()
	metrics.RecordEstimate(false)

	if ce.cache != nil && ce.cache.ItemCount() < ce.maxEntries {
		ce.cache.Set(key, est, cache.DefaultExpiration)
	}
	ce.diagnostics.LogEstimate(fen, side.Name(), est, false)
	return est, nil
}

// Stats returns the hit and miss counters.
func (ce *CachedEstimator) Stats() (hits, misses uint64) {
	ce.mu.RLock()
	defer ce.mu.RUnlock()
	return ce.hitCount, ce.missCount
}

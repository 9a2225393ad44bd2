// Package metrics provides the centralized Prometheus metrics registry for
// the odds generator.
package metrics

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Global registry instance
var (
	registry *prometheus.Registry
	once     sync.Once
)

// Counter metrics
var (
	PositionsGeneratedTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "oddsgen",
		Name:      "positions_generated_total",
		Help:      "Total number of odds positions generated",
	}, []string{"handicapped_side"})
	GenerationFailuresTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "oddsgen",
		Name:      "generation_failures_total",
		Help:      "Total number of rejected generation requests",
	})
	EstimatesTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "oddsgen",
		Name:      "estimates_total",
		Help:      "Total number of inverse Elo estimates served",
	})
	EstimateCacheHitsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "oddsgen",
		Name:      "estimate_cache_hits_total",
		Help:      "Total number of estimate cache hits",
	})
	EstimateCacheMissesTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "oddsgen",
		Name:      "estimate_cache_misses_total",
		Help:      "Total number of estimate cache misses",
	})
	CalibrationRunsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "oddsgen",
		Name:      "calibration_runs_total",
		Help:      "Total number of calibration sampler runs",
	})
)

// Gauge metrics
var (
	LastEffectiveElo = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "oddsgen",
		Name:      "last_effective_elo",
		Help:      "Effective Elo of the most recent generation",
	})
	CalibrationMeanBudget = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "oddsgen",
		Name:      "calibration_mean_budget",
		Help:      "Mean handicap budget observed per opponent rating during calibration",
	}, []string{"opponent_elo"})
)

// Histogram metrics
var (
	HandicapBudget = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "oddsgen",
		Name:      "handicap_budget",
		Help:      "Distribution of handicap budgets in pawn-equivalent units",
		Buckets:   []float64{0, 1, 2, 3, 4, 6, 8, 10, 12, 14, 16, 20},
	})
	RemovedPieces = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "oddsgen",
		Name:      "removed_pieces",
		Help:      "Distribution of pieces removed per generated position",
		Buckets:   []float64{0, 1, 2, 3, 4, 5, 6, 8, 10, 12, 15},
	})
)

// InitRegistry initializes the global Prometheus registry.
func InitRegistry() *prometheus.Registry {
	once.Do(func() {
		registry = prometheus.NewRegistry()

		// Register counter metrics
		registry.MustRegister(PositionsGeneratedTotal)
		registry.MustRegister(GenerationFailuresTotal)
		registry.MustRegister(EstimatesTotal)
		registry.MustRegister(EstimateCacheHitsTotal)
		registry.MustRegister(EstimateCacheMissesTotal)
		registry.MustRegister(CalibrationRunsTotal)

		// Register gauge metrics
		registry.MustRegister(LastEffectiveElo)
		registry.MustRegister(CalibrationMeanBudget)

		// Register histogram metrics
		registry.MustRegister(HandicapBudget)
		registry.MustRegister(RemovedPieces)
	})
	return registry
}

// GetRegistry returns the global Prometheus registry.
func GetRegistry() *prometheus.Registry {
	if registry == nil {
		return InitRegistry()
	}
	return registry
}

// Handler returns the Prometheus HTTP handler.
func Handler() http.Handler {
	return promhttp.HandlerFor(GetRegistry(), promhttp.HandlerOpts{})
}

// RecordGeneration records a successful generation.
func RecordGeneration(handicappedSide string, budget float64, removedPieces int, effectiveElo float64) {
	PositionsGeneratedTotal.WithLabelValues(handicappedSide).Inc()
	HandicapBudget.Observe(budget)
	RemovedPieces.Observe(float64(removedPieces))
	LastEffectiveElo.Set(effectiveElo)
}

// RecordGenerationFailure records a rejected generation request.
func RecordGenerationFailure() {
	GenerationFailuresTotal.Inc()
}

// RecordEstimate records an inverse Elo estimate and its cache outcome.
func RecordEstimate(cacheHit bool) {
	EstimatesTotal.Inc()
	if cacheHit {
		EstimateCacheHitsTotal.Inc()
	} else {
		EstimateCacheMissesTotal.Inc()
	}
}

// RecordCalibrationRun records a completed calibration sweep.
func RecordCalibrationRun() {
	CalibrationRunsTotal.Inc()
}

// UpdateCalibrationMeanBudget updates the per-rating mean budget gauge.
func UpdateCalibrationMeanBudget(opponentElo string, meanBudget float64) {
	CalibrationMeanBudget.WithLabelValues(opponentElo).Set(meanBudget)
}

package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
)

func TestMetricsRegistry(t *testing.T) {
	InitRegistry()
	registry := GetRegistry()

	assert.NotNil(t, registry)
	assert.IsType(t, &prometheus.Registry{}, registry)
}

func TestRecordGeneration(t *testing.T) {
	InitRegistry()

	assert.NotPanics(t, func() {
		RecordGeneration("White", 13.96, 9, 1604.3)
		RecordGeneration("Black", 0, 0, 3200)
	})
}

func TestRecordGenerationFailure(t *testing.T) {
	InitRegistry()

	assert.NotPanics(t, func() {
		RecordGenerationFailure()
	})
}

func TestRecordEstimate(t *testing.T) {
	InitRegistry()

	assert.NotPanics(t, func() {
		RecordEstimate(true)
		RecordEstimate(false)
	})
}

func TestCalibrationMetrics(t *testing.T) {
	InitRegistry()

	assert.NotPanics(t, func() {
		RecordCalibrationRun()
		UpdateCalibrationMeanBudget("2000", 10.4)
	})
}

func TestHandler(t *testing.T) {
	InitRegistry()
	assert.NotNil(t, Handler())
}

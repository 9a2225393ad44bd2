// Package config provides configuration management for the odds generator.
package config

import (
	"github.com/AttackingOrDefending/oddsgen/internal/models"
)

// Config represents the complete application configuration
type Config struct {
	App         AppConfig         `mapstructure:"app" validate:"required"`
	Tunables    models.Tunables   `mapstructure:"tunables" validate:"required"`
	Generator   GeneratorConfig   `mapstructure:"generator"`
	Estimator   EstimatorConfig   `mapstructure:"estimator"`
	Calibration CalibrationConfig `mapstructure:"calibration"`
	Metrics     MetricsConfig     `mapstructure:"metrics"`
}

// AppConfig represents application-level configuration
type AppConfig struct {
	Name        string `mapstructure:"name" validate:"required"`
	Environment string `mapstructure:"environment" validate:"required,environment"`
	LogLevel    string `mapstructure:"log_level" validate:"required,loglevel"`
}

// GeneratorConfig represents generation-specific configuration
type GeneratorConfig struct {
	// Seed for the random source; 0 seeds from the wall clock.
	Seed int64 `mapstructure:"seed"`
}

// EstimatorConfig represents the inverse-estimator cache configuration
type EstimatorConfig struct {
	CacheEnabled    bool `mapstructure:"cache_enabled"`
	CacheTTLSeconds int  `mapstructure:"cache_ttl_seconds" validate:"omitempty,gt=0"`
	CacheMaxEntries int  `mapstructure:"cache_max_entries" validate:"omitempty,gt=0"`
}

// CalibrationConfig represents the scheduled calibration sampler
type CalibrationConfig struct {
	Enabled          bool      `mapstructure:"enabled"`
	Schedule         string    `mapstructure:"schedule" validate:"omitempty,cronexpr"`
	OpponentLadder   []float64 `mapstructure:"opponent_ladder"`
	SamplesPerRating int       `mapstructure:"samples_per_rating" validate:"omitempty,gt=0"`
	InitialTimeSec   float64   `mapstructure:"initial_time_sec" validate:"gte=0"`
	IncrementSec     float64   `mapstructure:"increment_sec" validate:"gte=0"`
}

// MetricsConfig represents metrics and monitoring configuration
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Address string `mapstructure:"address"`
	Path    string `mapstructure:"path"`
}

// IsDevelopment checks if the application is running in development mode
func (c *Config) IsDevelopment() bool {
	return c.App.Environment == "development"
}

// IsProduction checks if the application is running in production mode
func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

// Package config provides configuration management for the odds generator.
package config

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"

	"github.com/AttackingOrDefending/oddsgen/internal/models"
)

// Load reads and parses the configuration from file and environment variables
// It expands environment variable placeholders in the YAML file (${VAR_NAME})
func Load(configPath string) (*Config, error) {
	if configPath == "" {
		configPath = "config/config.yaml"
	}

	// Read the configuration file
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("config file not found at %s: %w", configPath, err)
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Expand environment variables in the configuration (${VAR} syntax)
	expanded := os.ExpandEnv(string(data))

	v := newViper()
	if err := v.ReadConfig(bytes.NewBuffer([]byte(expanded))); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Unmarshal configuration into Config struct
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	return cfg, nil
}

// LoadWithDefaults loads configuration with default values for optional
// fields. A missing config file is not an error; defaults and environment
// variables still apply, so the CLI works without any file on disk.
func LoadWithDefaults(configPath string) (*Config, error) {
	if configPath == "" {
		configPath = "config/config.yaml"
	}

	v := newViper()
	setDefaults(v)

	// Read and expand the configuration file if it exists
	if data, err := os.ReadFile(configPath); err == nil {
		expanded := os.ExpandEnv(string(data))
		if err := v.ReadConfig(bytes.NewBuffer([]byte(expanded))); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	return cfg, nil
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")

	// Enable automatic binding of environment variables
	v.SetEnvPrefix("ODDSGEN")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	return v
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "oddsgen")
	v.SetDefault("app.environment", "development")
	v.SetDefault("app.log_level", "info")

	v.SetDefault("tunables.pawn_to_elo", models.DefaultPawnToElo)
	v.SetDefault("tunables.variation_std", models.DefaultVariationStd)
	v.SetDefault("tunables.max_variation", models.DefaultMaxVariation)
	v.SetDefault("tunables.base_elo", models.DefaultBaseElo)
	v.SetDefault("tunables.average_moves", models.DefaultAverageMoves)
	v.SetDefault("tunables.time_doubling_elo", models.DefaultTimeDoublingElo)

	v.SetDefault("estimator.cache_enabled", true)
	v.SetDefault("estimator.cache_ttl_seconds", 300)
	v.SetDefault("estimator.cache_max_entries", 10000)

	v.SetDefault("calibration.enabled", false)
	v.SetDefault("calibration.schedule", "@hourly")
	v.SetDefault("calibration.opponent_ladder", []float64{1000, 1500, 2000, 2500, 3000})
	v.SetDefault("calibration.samples_per_rating", 25)
	v.SetDefault("calibration.initial_time_sec", 180)
	v.SetDefault("calibration.increment_sec", 2)

	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.address", ":9090")
	v.SetDefault("metrics.path", "/metrics")
}

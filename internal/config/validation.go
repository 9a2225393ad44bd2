// Package config provides configuration management for the odds generator.
package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/robfig/cron/v3"
)

// CustomValidator wraps the validator with custom validation rules
type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator creates a new validator with custom validation functions
func NewValidator() *CustomValidator {
	v := validator.New()

	// Register custom validation functions
	_ = v.RegisterValidation("environment", validateEnvironment)
	_ = v.RegisterValidation("loglevel", validateLogLevel)
	_ = v.RegisterValidation("cronexpr", validateCronExpr)

	return &CustomValidator{validator: v}
}

// Validate validates the entire configuration
func Validate(cfg *Config) error {
	cv := NewValidator()
	return cv.Validate(cfg)
}

// Validate validates the configuration using registered validation rules
func (cv *CustomValidator) Validate(cfg *Config) error {
	err := cv.validator.Struct(cfg)
	if err != nil {
		if validationErrors, ok := err.(validator.ValidationErrors); ok {
			return formatValidationErrors(validationErrors)
		}
		return fmt.Errorf("validation failed: %w", err)
	}

	// Additional cross-field validations
	if err := validateCrossField(cfg); err != nil {
		return err
	}

	return nil
}

// validateEnvironment validates the environment field
func validateEnvironment(fl validator.FieldLevel) bool {
	env := fl.Field().String()
	switch env {
	case "development", "staging", "production":
		return true
	default:
		return false
	}
}

// validateLogLevel validates the log level field
func validateLogLevel(fl validator.FieldLevel) bool {
	level := fl.Field().String()
	switch level {
	case "debug", "info", "warn", "error":
		return true
	default:
		return false
	}
}

// validateCronExpr validates cron schedule expressions, including the
// @hourly style descriptors cron/v3 accepts.
func validateCronExpr(fl validator.FieldLevel) bool {
	expr := fl.Field().String()
	if expr == "" {
		return false
	}
	_, err := cron.ParseStandard(expr)
	return err == nil
}

// validateCrossField performs cross-field validations
func validateCrossField(cfg *Config) error {
	if cfg.Calibration.Enabled {
		if cfg.Calibration.Schedule == "" {
			return fmt.Errorf("calibration schedule is required when calibration is enabled")
		}
		if len(cfg.Calibration.OpponentLadder) == 0 {
			return fmt.Errorf("calibration opponent_ladder must not be empty when calibration is enabled")
		}
		if cfg.Calibration.SamplesPerRating <= 0 {
			return fmt.Errorf("calibration samples_per_rating must be positive when calibration is enabled")
		}
		for _, elo := range cfg.Calibration.OpponentLadder {
			if elo < 0 {
				return fmt.Errorf("calibration opponent_ladder contains negative rating %.0f", elo)
			}
		}
	}

	if cfg.Metrics.Enabled && cfg.Metrics.Address == "" {
		return fmt.Errorf("metrics address is required when metrics are enabled")
	}

	if cfg.Estimator.CacheEnabled {
		if cfg.Estimator.CacheTTLSeconds <= 0 {
			return fmt.Errorf("estimator cache_ttl_seconds must be positive when the cache is enabled")
		}
		if cfg.Estimator.CacheMaxEntries <= 0 {
			return fmt.Errorf("estimator cache_max_entries must be positive when the cache is enabled")
		}
	}

	// MaxVariation below the std would make the clamp dominate the draw.
	if cfg.Tunables.MaxVariation < cfg.Tunables.VariationStd {
		return fmt.Errorf("tunables max_variation must not be smaller than variation_std")
	}

	return nil
}

// formatValidationErrors formats validation errors into a readable string
func formatValidationErrors(validationErrors validator.ValidationErrors) error {
	var errMsg string
	for _, fieldError := range validationErrors {
		if errMsg != "" {
			errMsg += "; "
		}
		errMsg += fmt.Sprintf("field %s failed validation rule %q (value: %v)",
			fieldError.StructNamespace(), fieldError.Tag(), fieldError.Value())
	}
	return fmt.Errorf("invalid configuration: %s", errMsg)
}

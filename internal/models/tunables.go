package models

// Default tunable values, matching the calibration the generator was tuned
// with. Overridable per call through the configuration.
const (
	DefaultPawnToElo       = 100.0
	DefaultVariationStd    = 50.0
	DefaultMaxVariation    = 200.0
	DefaultBaseElo         = 3000.0
	DefaultAverageMoves    = 40.0
	DefaultTimeDoublingElo = 200.0
)

// Tunables holds the constants of the Elo-adjustment and valuation models.
type Tunables struct {
	// PawnToElo is the Elo value of one pawn-equivalent unit of material.
	PawnToElo float64 `mapstructure:"pawn_to_elo" json:"pawn_to_elo" validate:"gt=0"`
	// VariationStd is the standard deviation of the per-generation
	// gaussian Elo perturbation.
	VariationStd float64 `mapstructure:"variation_std" json:"variation_std" validate:"gte=0"`
	// MaxVariation bounds the gaussian perturbation on both sides.
	MaxVariation float64 `mapstructure:"max_variation" json:"max_variation" validate:"gte=0"`
	// BaseElo is the assumed ceiling strength of the undiminished
	// starting position.
	BaseElo float64 `mapstructure:"base_elo" json:"base_elo" validate:"gt=0"`
	// AverageMoves is the reference game length used by the time-control
	// scaling.
	AverageMoves float64 `mapstructure:"average_moves" json:"average_moves" validate:"gt=0"`
	// TimeDoublingElo is the Elo shift produced by doubling the reference
	// thinking time.
	TimeDoublingElo float64 `mapstructure:"time_doubling_elo" json:"time_doubling_elo" validate:"gt=0"`
}

// DefaultTunables returns the default model constants.
func DefaultTunables() Tunables {
	return Tunables{
		PawnToElo:       DefaultPawnToElo,
		VariationStd:    DefaultVariationStd,
		MaxVariation:    DefaultMaxVariation,
		BaseElo:         DefaultBaseElo,
		AverageMoves:    DefaultAverageMoves,
		TimeDoublingElo: DefaultTimeDoublingElo,
	}
}

// Validate checks the tunables for internally consistent values.
func (t Tunables) Validate() error {
	if err := validate.Struct(t); err != nil {
		return err
	}
	return nil
}

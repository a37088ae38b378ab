package strategy

import (
	"fmt"
	"math"

	"github.com/go-playground/validator/v10"
	"github.com/rxtech-lab/argo-replay/internal/indicator"
	"github.com/rxtech-lab/argo-replay/internal/series"
	"github.com/rxtech-lab/argo-replay/pkg/errors"
	"gopkg.in/yaml.v3"
)

type bollingerReversionConfig struct {
	Period int     `yaml:"period" validate:"gt=1"`
	StdDev float64 `yaml:"std_dev" validate:"gt=0"`
	Size   float64 `yaml:"size" validate:"gte=0"`
}

// BollingerReversion is a mean-reversion strategy: it buys a close below the
// lower band and sells a close above the upper band.
type BollingerReversion struct {
	config bollingerReversionConfig
	upper  *series.View
	lower  *series.View
}

// NewBollingerReversion creates the strategy with default parameters.
func NewBollingerReversion() *BollingerReversion {
	return &BollingerReversion{
		config: bollingerReversionConfig{
			Period: 20,
			StdDev: 2.0,
			Size:   1,
		},
	}
}

// Name returns the name of the strategy.
func (s *BollingerReversion) Name() string {
	return fmt.Sprintf("bollinger_reversion_%d", s.config.Period)
}

// Initialize parses the YAML parameter block. An empty config keeps the
// defaults.
func (s *BollingerReversion) Initialize(config string) error {
	if config != "" {
		if err := yaml.Unmarshal([]byte(config), &s.config); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfiguration, "failed to parse bollinger_reversion config", err)
		}
	}

	if s.config.Size == 0 {
		s.config.Size = 1
	}

	if err := validator.New().Struct(s.config); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfiguration, "invalid bollinger_reversion config", err)
	}

	return nil
}

// Setup registers the bands and keeps views on the upper and lower
// components.
func (s *BollingerReversion) Setup(ctx *Context) error {
	bands, err := ctx.Register(indicator.BollingerBands, ctx.Series.Close, s.config.Period, s.config.StdDev)
	if err != nil {
		return err
	}

	composite := bands.(*series.Composite)

	s.upper, err = composite.Field("upper")
	if err != nil {
		return err
	}

	s.lower, err = composite.Field("lower")
	if err != nil {
		return err
	}

	return nil
}

// Step applies the band rules to the current bar.
func (s *BollingerReversion) Step(ctx *Context) error {
	price, err := ctx.Data.Close.At(-1)
	if err != nil {
		return err
	}

	upper, err := s.upper.At(-1)
	if err != nil {
		return err
	}

	lower, err := s.lower.At(-1)
	if err != nil {
		return err
	}

	if math.IsNaN(upper) || math.IsNaN(lower) {
		return nil
	}

	if price < lower && !ctx.Positions.IsOpen() {
		return ctx.Buy(s.config.Size)
	}

	if price > upper && ctx.Positions.IsOpen() {
		_, err := ctx.Sell()

		return err
	}

	return nil
}

// Validate reports whether the given parameter set is acceptable.
func (s *BollingerReversion) Validate(params map[string]float64) bool {
	if period, ok := params["period"]; ok && period < 2 {
		return false
	}

	if stdDev, ok := params["std_dev"]; ok && stdDev <= 0 {
		return false
	}

	return true
}

// OptimizationSpace maps parameter names to their searchable ranges.
func (s *BollingerReversion) OptimizationSpace() map[string]ParamRange {
	return map[string]ParamRange{
		"period":  {Min: 5, Max: 100},
		"std_dev": {Min: 0.5, Max: 4},
	}
}

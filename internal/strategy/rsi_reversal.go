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

type rsiReversalConfig struct {
	Period     int     `yaml:"period" validate:"gt=1"`
	Oversold   float64 `yaml:"oversold" validate:"gt=0,lt=100"`
	Overbought float64 `yaml:"overbought" validate:"gtfield=Oversold,lt=100"`
	Size       float64 `yaml:"size" validate:"gte=0"`
}

// RSIReversal buys when RSI drops below the oversold threshold and sells once
// it rises above the overbought threshold.
type RSIReversal struct {
	config rsiReversalConfig
	rsi    *series.View
}

// NewRSIReversal creates the strategy with default parameters.
func NewRSIReversal() *RSIReversal {
	return &RSIReversal{
		config: rsiReversalConfig{
			Period:     14,
			Oversold:   30,
			Overbought: 70,
			Size:       1,
		},
	}
}

// Name returns the name of the strategy.
func (s *RSIReversal) Name() string {
	return fmt.Sprintf("rsi_reversal_%d", s.config.Period)
}

// Initialize parses the YAML parameter block. An empty config keeps the
// defaults.
func (s *RSIReversal) Initialize(config string) error {
	if config != "" {
		if err := yaml.Unmarshal([]byte(config), &s.config); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfiguration, "failed to parse rsi_reversal config", err)
		}
	}

	if s.config.Size == 0 {
		s.config.Size = 1
	}

	if err := validator.New().Struct(s.config); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfiguration, "invalid rsi_reversal config", err)
	}

	return nil
}

// Setup registers the RSI series.
func (s *RSIReversal) Setup(ctx *Context) error {
	rsi, err := ctx.Register(indicator.RSI, ctx.Series.Close, s.config.Period)
	if err != nil {
		return err
	}

	s.rsi = rsi.(*series.View)

	return nil
}

// Step applies the threshold rules to the current bar.
func (s *RSIReversal) Step(ctx *Context) error {
	value, err := s.rsi.At(-1)
	if err != nil {
		return err
	}

	if math.IsNaN(value) {
		return nil
	}

	if value < s.config.Oversold && !ctx.Positions.IsOpen() {
		return ctx.Buy(s.config.Size)
	}

	if value > s.config.Overbought && ctx.Positions.IsOpen() {
		_, err := ctx.Sell()

		return err
	}

	return nil
}

// Validate reports whether the given parameter set is acceptable.
func (s *RSIReversal) Validate(params map[string]float64) bool {
	if period, ok := params["period"]; ok && period < 2 {
		return false
	}

	oversold, hasOversold := params["oversold"]
	overbought, hasOverbought := params["overbought"]

	if hasOversold && (oversold <= 0 || oversold >= 100) {
		return false
	}

	if hasOverbought && (overbought <= 0 || overbought >= 100) {
		return false
	}

	if hasOversold && hasOverbought && oversold >= overbought {
		return false
	}

	return true
}

// OptimizationSpace maps parameter names to their searchable ranges.
func (s *RSIReversal) OptimizationSpace() map[string]ParamRange {
	return map[string]ParamRange{
		"period":     {Min: 2, Max: 50},
		"oversold":   {Min: 10, Max: 45},
		"overbought": {Min: 55, Max: 90},
	}
}

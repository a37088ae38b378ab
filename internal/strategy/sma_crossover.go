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

type smaCrossoverConfig struct {
	FastPeriod int     `yaml:"fast_period" validate:"gt=0"`
	SlowPeriod int     `yaml:"slow_period" validate:"gtfield=FastPeriod"`
	Size       float64 `yaml:"size" validate:"gte=0"`
}

// SMACrossover buys when the fast moving average crosses above the slow one
// and sells when it crosses back below.
type SMACrossover struct {
	config smaCrossoverConfig
	fast   *series.View
	slow   *series.View
}

// NewSMACrossover creates the strategy with default parameters.
func NewSMACrossover() *SMACrossover {
	return &SMACrossover{
		config: smaCrossoverConfig{
			FastPeriod: 5,
			SlowPeriod: 20,
			Size:       1,
		},
	}
}

// Name returns the name of the strategy.
func (s *SMACrossover) Name() string {
	return fmt.Sprintf("sma_crossover_%d_%d", s.config.FastPeriod, s.config.SlowPeriod)
}

// Initialize parses the YAML parameter block. An empty config keeps the
// defaults.
func (s *SMACrossover) Initialize(config string) error {
	if config != "" {
		if err := yaml.Unmarshal([]byte(config), &s.config); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfiguration, "failed to parse sma_crossover config", err)
		}
	}

	if s.config.Size == 0 {
		s.config.Size = 1
	}

	if err := validator.New().Struct(s.config); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfiguration, "invalid sma_crossover config", err)
	}

	return nil
}

// Setup registers the two moving averages.
func (s *SMACrossover) Setup(ctx *Context) error {
	fast, err := ctx.Register(indicator.SMA, ctx.Series.Close, s.config.FastPeriod)
	if err != nil {
		return err
	}

	slow, err := ctx.Register(indicator.SMA, ctx.Series.Close, s.config.SlowPeriod)
	if err != nil {
		return err
	}

	s.fast = fast.(*series.View)
	s.slow = slow.(*series.View)

	return nil
}

// Step checks for a crossover between the previous and the current bar.
func (s *SMACrossover) Step(ctx *Context) error {
	// A crossover needs two bars.
	if ctx.Data.Cursor().Current() < 1 {
		return nil
	}

	fastNow, err := s.fast.At(-1)
	if err != nil {
		return err
	}

	slowNow, err := s.slow.At(-1)
	if err != nil {
		return err
	}

	fastPrev, err := s.fast.At(-2)
	if err != nil {
		return err
	}

	slowPrev, err := s.slow.At(-2)
	if err != nil {
		return err
	}

	if math.IsNaN(fastNow) || math.IsNaN(slowNow) || math.IsNaN(fastPrev) || math.IsNaN(slowPrev) {
		return nil
	}

	crossedUp := fastNow > slowNow && fastPrev <= slowPrev
	crossedDown := fastNow < slowNow && fastPrev >= slowPrev

	if crossedUp && !ctx.Positions.IsOpen() {
		return ctx.Buy(s.config.Size)
	}

	if crossedDown && ctx.Positions.IsOpen() {
		_, err := ctx.Sell()

		return err
	}

	return nil
}

// Validate reports whether the given parameter set is acceptable.
func (s *SMACrossover) Validate(params map[string]float64) bool {
	fast, hasFast := params["fast_period"]
	slow, hasSlow := params["slow_period"]

	if hasFast && fast < 1 {
		return false
	}

	if hasSlow && slow < 2 {
		return false
	}

	if hasFast && hasSlow && fast >= slow {
		return false
	}

	return true
}

// OptimizationSpace maps parameter names to their searchable ranges.
func (s *SMACrossover) OptimizationSpace() map[string]ParamRange {
	return map[string]ParamRange{
		"fast_period": {Min: 2, Max: 50},
		"slow_period": {Min: 10, Max: 200},
	}
}

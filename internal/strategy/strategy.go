// Package strategy defines the procedure contract evaluated by the engine:
// one-time Setup that registers derived series, per-bar Step logic, and the
// parameter surface used by external optimization tooling.
package strategy

import (
	"github.com/rxtech-lab/argo-replay/internal/indicator"
	"github.com/rxtech-lab/argo-replay/internal/logger"
	"github.com/rxtech-lab/argo-replay/internal/position"
	"github.com/rxtech-lab/argo-replay/internal/series"
	"github.com/rxtech-lab/argo-replay/internal/types"
)

// ParamRange bounds one optimizable parameter.
type ParamRange struct {
	Min float64 `yaml:"min" json:"min"`
	Max float64 `yaml:"max" json:"max"`
}

// RegisterFunc registers a derived-series computation with the engine's
// caching registrar and returns a cursor-bounded handle to the result.
type RegisterFunc func(fn indicator.Compute, args ...any) (series.Derived, error)

// Strategy is the trading decision procedure evaluated bar by bar.
//
// Setup is called exactly once before the cursor advances; it may register
// derived series but must not read bounded views (there is no current bar
// yet, so any [-1] read fails). Step is called once per bar and may read any
// bounded view at or behind the cursor and open or close the position.
type Strategy interface {
	// Name returns the name of the strategy.
	Name() string
	// Initialize parses the strategy's YAML parameter block into an
	// immutable configuration used for the whole run.
	Initialize(config string) error
	// Setup registers derived series via ctx.Register.
	Setup(ctx *Context) error
	// Step runs the per-bar decision logic.
	Step(ctx *Context) error
	// Validate reports whether the given parameter set is acceptable.
	Validate(params map[string]float64) bool
	// OptimizationSpace maps parameter names to their searchable ranges.
	OptimizationSpace() map[string]ParamRange
}

// Context is the strategy's window into one run. It is owned by the engine
// and valid only for the duration of that run.
type Context struct {
	// Data exposes the raw columns as bounded views sharing the run cursor.
	Data *series.Accessor
	// Series carries the full-length raw columns for use as Register
	// arguments during Setup. Per-bar logic must go through Data; the
	// causal boundary is enforced on the bounded views.
	Series types.MarketSeries
	// Register is the engine's caching registrar.
	Register RegisterFunc
	// Positions is the run's position manager.
	Positions *position.Manager
	// DefaultSize is the order size used when Buy is called with size <= 0.
	DefaultSize float64
	// Logger is the run's logger.
	Logger *logger.Logger
}

// Buy opens a long position at the current close. A non-positive size falls
// back to the engine's default order size.
func (c *Context) Buy(size float64) error {
	if size <= 0 {
		size = c.DefaultSize
	}

	price, err := c.Data.Close.At(-1)
	if err != nil {
		return err
	}

	return c.Positions.Open(price, size, c.Data.Cursor().Current())
}

// Sell closes the current position at the current close and returns the
// realized return.
func (c *Context) Sell() (float64, error) {
	price, err := c.Data.Close.At(-1)
	if err != nil {
		return 0, err
	}

	return c.Positions.Close(price, c.Data.Cursor().Current())
}

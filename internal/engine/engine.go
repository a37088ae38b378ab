// Package engine runs one trading decision procedure over one historical
// series, bar by bar, and aggregates the resulting trades into a RunResult.
//
// The engine exclusively owns the run's cursor and position manager; views
// hold a non-owning reference to the cursor. An Engine instance performs
// exactly one run and is not safe to share or reuse; parallelism happens
// across independent engines, never within one.
package engine

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-replay/internal/logger"
	"github.com/rxtech-lab/argo-replay/internal/position"
	"github.com/rxtech-lab/argo-replay/internal/series"
	"github.com/rxtech-lab/argo-replay/internal/strategy"
	"github.com/rxtech-lab/argo-replay/internal/types"
	"github.com/rxtech-lab/argo-replay/pkg/errors"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/floats"
)

// OnBarCallback is invoked after each processed bar with the number of bars
// processed so far and the total.
type OnBarCallback func(current int, total int)

// Engine evaluates one strategy over one market series.
type Engine struct {
	config    Config
	log       *logger.Logger
	cursor    *series.Cursor
	data      *series.Accessor
	positions *position.Manager
	cache     map[string]series.Derived
	runID     string
	started   bool
}

// New creates an engine for a single run.
func New(config Config, log *logger.Logger) *Engine {
	return &Engine{
		config:    config,
		log:       log,
		cursor:    series.NewCursor(),
		data:      nil,
		positions: position.NewManager(),
		cache:     make(map[string]series.Derived),
		runID:     uuid.NewString(),
		started:   false,
	}
}

// Run evaluates the strategy over the series and returns the aggregated
// result. Any error during setup or the per-bar loop aborts the run with no
// partial result: out-of-range and state violations are never clamped or
// retried, because guessing intent would silently corrupt the statistics.
func (e *Engine) Run(strat strategy.Strategy, data types.MarketSeries, onBar optional.Option[OnBarCallback]) (types.RunResult, error) {
	if e.started {
		return types.RunResult{}, errors.New(errors.ErrCodeInvalidState, "engine instances run exactly once; create a new engine per run")
	}

	e.started = true

	if err := data.Validate(); err != nil {
		return types.RunResult{}, err
	}

	n := data.Len()
	if err := e.cursor.SetLength(n); err != nil {
		return types.RunResult{}, err
	}

	e.data = series.NewAccessor(data, e.cursor)

	if !strat.Validate(e.config.Params) {
		return types.RunResult{}, errors.Newf(errors.ErrCodeInvalidConfiguration,
			"strategy %s rejected parameters %v", strat.Name(), e.config.Params)
	}

	ctx := &strategy.Context{
		Data:        e.data,
		Series:      data,
		Register:    e.register,
		Positions:   e.positions,
		DefaultSize: e.config.Size,
		Logger:      e.log,
	}

	e.log.Debug("run starting",
		zap.String("run_id", e.runID),
		zap.String("strategy", strat.Name()),
		zap.String("symbol", data.Symbol),
		zap.Int("bars", n),
	)

	// Setup runs before the first advance: it may register derived series
	// but has no current bar to read.
	if err := strat.Setup(ctx); err != nil {
		return types.RunResult{}, fmt.Errorf("strategy setup failed: %w", err)
	}

	for i := 0; i < n; i++ {
		if err := e.cursor.Advance(i); err != nil {
			return types.RunResult{}, err
		}

		if err := strat.Step(ctx); err != nil {
			return types.RunResult{}, fmt.Errorf("strategy step failed at bar %d: %w", i, err)
		}

		if onBar.IsSome() {
			onBar.Unwrap()(i+1, n)
		}
	}

	if e.positions.IsOpen() {
		// A position still open after the final bar contributes no realized
		// trade.
		e.log.Debug("run ended with an open position",
			zap.String("run_id", e.runID),
		)
	}

	result := e.aggregate()

	e.log.Debug("run complete",
		zap.String("run_id", e.runID),
		zap.Int("trade_count", result.TradeCount),
		zap.Float64("win_rate", result.WinRate),
	)

	return result, nil
}

// aggregate folds the trade log into the run result. The equity curve is
// indexed per closed trade, matching the returns sequence; a run with no
// trades yields the seed curve [1.0].
func (e *Engine) aggregate() types.RunResult {
	returns := e.positions.Returns()

	if len(returns) == 0 {
		return types.RunResult{
			Returns:     []float64{},
			EquityCurve: []float64{1.0},
			WinRate:     0,
			TradeCount:  0,
		}
	}

	growth := make([]float64, len(returns))
	copy(growth, returns)
	floats.AddConst(1, growth)

	equity := floats.CumProd(make([]float64, len(growth)), growth)

	wins := 0

	for _, r := range returns {
		if r > 0 {
			wins++
		}
	}

	return types.RunResult{
		Returns:     returns,
		EquityCurve: equity,
		WinRate:     float64(wins) / float64(len(returns)),
		TradeCount:  len(returns),
	}
}

// Package position implements the two-state position machine for one run:
// Flat -> Holding -> Flat, one transition per open/close call, with every
// completed cycle appended to an immutable trade log.
package position

import (
	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-replay/internal/types"
	"github.com/rxtech-lab/argo-replay/pkg/errors"
)

// Snapshot is a pure query of the currently held position.
type Snapshot struct {
	EntryPrice float64
	EntryIndex int
	Size       float64
}

// Manager tracks the open position and the trade log for exactly one run.
// It is not safe for concurrent use and is never shared across runs.
type Manager struct {
	holding    bool
	entryPrice float64
	entryIndex int
	size       float64
	trades     []types.Trade
}

// NewManager creates a manager in the Flat state with an empty trade log.
func NewManager() *Manager {
	return &Manager{
		holding:    false,
		entryPrice: 0,
		entryIndex: -1,
		size:       0,
		trades:     nil,
	}
}

// Open transitions Flat -> Holding, recording the entry. A second open
// without an intervening close fails.
func (m *Manager) Open(price, size float64, index int) error {
	if m.holding {
		return errors.Newf(errors.ErrCodeAlreadyOpen,
			"position already open at price %f (bar %d), close it before opening another", m.entryPrice, m.entryIndex)
	}

	if price <= 0 {
		return errors.Newf(errors.ErrCodeInvalidParameter, "entry price must be positive, got %f", price)
	}

	if size <= 0 {
		return errors.Newf(errors.ErrCodeInvalidParameter, "position size must be positive, got %f", size)
	}

	if index < 0 {
		return errors.Newf(errors.ErrCodeInvalidParameter, "entry index must be non-negative, got %d", index)
	}

	m.holding = true
	m.entryPrice = price
	m.entryIndex = index
	m.size = size

	return nil
}

// Close transitions Holding -> Flat, appends the completed trade, and returns
// the realized return (price - entry) / entry. Size is carried on the trade
// record but does not scale the return (full-unit account model).
func (m *Manager) Close(price float64, index int) (float64, error) {
	if !m.holding {
		return 0, errors.New(errors.ErrCodeNotOpen, "no position to close")
	}

	if price <= 0 {
		return 0, errors.Newf(errors.ErrCodeInvalidParameter, "exit price must be positive, got %f", price)
	}

	if index <= m.entryIndex {
		return 0, errors.Newf(errors.ErrCodeInvalidParameter,
			"exit index %d must be after entry index %d", index, m.entryIndex)
	}

	returnPct := (price - m.entryPrice) / m.entryPrice

	m.trades = append(m.trades, types.Trade{
		EntryPrice: m.entryPrice,
		ExitPrice:  price,
		EntryIndex: m.entryIndex,
		ExitIndex:  index,
		ReturnPct:  returnPct,
		Size:       m.size,
	})

	m.holding = false
	m.entryPrice = 0
	m.entryIndex = -1
	m.size = 0

	return returnPct, nil
}

// IsOpen reports whether a position is currently held.
func (m *Manager) IsOpen() bool {
	return m.holding
}

// Snapshot returns the currently held position, or None when flat.
func (m *Manager) Snapshot() optional.Option[Snapshot] {
	if !m.holding {
		return optional.None[Snapshot]()
	}

	return optional.Some(Snapshot{
		EntryPrice: m.entryPrice,
		EntryIndex: m.entryIndex,
		Size:       m.size,
	})
}

// Trades returns a copy of the trade log in close order.
func (m *Manager) Trades() []types.Trade {
	out := make([]types.Trade, len(m.trades))
	copy(out, m.trades)

	return out
}

// Returns returns the per-trade realized returns in close order.
func (m *Manager) Returns() []float64 {
	out := make([]float64, len(m.trades))
	for i, trade := range m.trades {
		out[i] = trade.ReturnPct
	}

	return out
}

// TradeCount returns the number of completed trades.
func (m *Manager) TradeCount() int {
	return len(m.trades)
}

package series

import (
	"github.com/rxtech-lab/argo-replay/pkg/errors"
)

// CursorState represents the lifecycle state of a Cursor.
type CursorState int

const (
	// CursorUnbound is the initial state, before the series length is known.
	CursorUnbound CursorState = iota
	// CursorBound means the length is fixed but no bar has been visited yet.
	CursorBound
	// CursorRunning means at least one bar has been visited.
	CursorRunning
	// CursorDone means the final bar has been reached.
	CursorDone
)

// Cursor tracks the current bar index of a run. It is the single source of
// truth for "now": every bounded view resolves its indices against the same
// Cursor instance. Lifecycle: Unbound -> Bound -> Running -> Done, with no
// state skipped.
type Cursor struct {
	state  CursorState
	index  int
	length int
}

// NewCursor creates an unbound cursor.
func NewCursor() *Cursor {
	return &Cursor{
		state:  CursorUnbound,
		index:  -1,
		length: 0,
	}
}

// SetLength binds the cursor to a series of n bars. It can only be called
// once, before the run starts.
func (c *Cursor) SetLength(n int) error {
	if c.state != CursorUnbound {
		return errors.New(errors.ErrCodeInvalidState, "cursor length is already set")
	}

	if n < 1 {
		return errors.Newf(errors.ErrCodeInvalidParameter, "series length must be at least 1, got %d", n)
	}

	c.length = n
	c.state = CursorBound

	return nil
}

// Advance moves the cursor to bar i. The engine drives it sequentially over
// [0, length); reaching the final bar transitions the cursor to Done, after
// which further advances fail.
func (c *Cursor) Advance(i int) error {
	switch c.state {
	case CursorBound, CursorRunning:
	case CursorUnbound:
		return errors.New(errors.ErrCodeInvalidState, "cannot advance an unbound cursor")
	case CursorDone:
		return errors.New(errors.ErrCodeInvalidState, "cannot advance past the final bar")
	}

	if i < 0 || i >= c.length {
		return errors.Newf(errors.ErrCodeOutOfRange, "bar index %d out of range [0, %d)", i, c.length)
	}

	c.index = i
	if i == c.length-1 {
		c.state = CursorDone
	} else {
		c.state = CursorRunning
	}

	return nil
}

// Current returns the current bar index. Before the first advance it returns
// -1; bounded views translate that into a look-ahead failure on any read.
func (c *Cursor) Current() int {
	return c.index
}

// Length returns the total number of bars, 0 while unbound.
func (c *Cursor) Length() int {
	return c.length
}

// State returns the lifecycle state of the cursor.
func (c *Cursor) State() CursorState {
	return c.state
}

// Started reports whether at least one bar has been visited.
func (c *Cursor) Started() bool {
	return c.state == CursorRunning || c.state == CursorDone
}

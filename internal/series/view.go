package series

import (
	"github.com/rxtech-lab/argo-replay/pkg/errors"
)

// Derived is the handle returned by indicator registration: either a single
// bounded *View or a *Composite grouping several aligned views.
type Derived interface {
	derived()
}

// View gives read-only, cursor-bounded access to one precomputed series.
// Reads past the cursor fail instead of clamping: silently returning the
// nearest valid value would mask look-ahead bugs and still produce
// plausible-looking statistics.
type View struct {
	values []float64
	cursor *Cursor
}

// NewView wraps values in a bounded view tied to the given cursor. The view
// holds a non-owning reference to the cursor.
func NewView(values []float64, cursor *Cursor) *View {
	return &View{
		values: values,
		cursor: cursor,
	}
}

func (v *View) derived() {}

// At reads one value relative to the cursor. Negative index -k resolves to
// absolute index cursor-k+1, so -1 is always the value at the current bar.
// A non-negative index is absolute and must not exceed the cursor. Any index
// resolving outside [0, cursor] fails with a look-ahead violation.
func (v *View) At(index int) (float64, error) {
	current := v.cursor.Current()

	resolved := index
	if index < 0 {
		resolved = current + index + 1
	}

	if resolved < 0 || resolved > current {
		return 0, errors.NewLookAheadError(index, resolved, current)
	}

	return v.values[resolved], nil
}

// Len returns the number of values visible so far: cursor+1, capped at the
// underlying series length.
func (v *View) Len() int {
	visible := v.cursor.Current() + 1
	if visible > len(v.values) {
		visible = len(v.values)
	}

	if visible < 0 {
		visible = 0
	}

	return visible
}

// Values returns a copy of everything visible so far, i.e. [0, cursor].
func (v *View) Values() []float64 {
	out := make([]float64, v.Len())
	copy(out, v.values)

	return out
}

// Slice returns a copy of values[start:stop] truncated to the visible range.
// A stop past the cursor truncates rather than fails: "everything available
// so far" is a legitimate request, unlike a point read of a future bar.
func (v *View) Slice(start, stop int) []float64 {
	limit := v.Len()

	if start < 0 {
		start = 0
	}

	if stop > limit {
		stop = limit
	}

	if start >= stop {
		return []float64{}
	}

	out := make([]float64, stop-start)
	copy(out, v.values[start:stop])

	return out
}

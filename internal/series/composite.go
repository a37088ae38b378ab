package series

import (
	"github.com/rxtech-lab/argo-replay/pkg/errors"
)

// Composite groups the aligned output series of one multi-output computation
// (e.g. MACD line, signal line and histogram), addressable by name or
// position. Component lengths are validated at registration time, not here.
type Composite struct {
	cursor *Cursor
	names  []string
	series [][]float64
	views  []*View
}

// NewComposite wraps named component series in a composite bound to the given
// cursor. Per-component views are constructed lazily on first access.
func NewComposite(cursor *Cursor, names []string, values [][]float64) *Composite {
	return &Composite{
		cursor: cursor,
		names:  names,
		series: values,
		views:  make([]*View, len(values)),
	}
}

func (c *Composite) derived() {}

// Field returns the bounded view for the named component.
func (c *Composite) Field(name string) (*View, error) {
	for i, candidate := range c.names {
		if candidate == name {
			return c.viewAt(i), nil
		}
	}

	return nil, errors.Newf(errors.ErrCodeComponentNotFound, "no component named %q (have %v)", name, c.names)
}

// Index returns the bounded view for the component at position i.
func (c *Composite) Index(i int) (*View, error) {
	if i < 0 || i >= len(c.series) {
		return nil, errors.Newf(errors.ErrCodeComponentNotFound,
			"component position %d out of range, composite has %d components", i, len(c.series))
	}

	return c.viewAt(i), nil
}

// Components returns the component names in positional order.
func (c *Composite) Components() []string {
	out := make([]string, len(c.names))
	copy(out, c.names)

	return out
}

// Size returns the number of components.
func (c *Composite) Size() int {
	return len(c.series)
}

func (c *Composite) viewAt(i int) *View {
	if c.views[i] == nil {
		c.views[i] = NewView(c.series[i], c.cursor)
	}

	return c.views[i]
}

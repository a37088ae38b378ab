package series

import (
	"github.com/rxtech-lab/argo-replay/internal/types"
	"github.com/rxtech-lab/argo-replay/pkg/errors"
)

// Accessor exposes the raw market data columns as bounded views sharing one
// cursor. Because every view resolves against the same Cursor instance,
// reading [-1] on any column always refers to the same bar; alignment is
// structural, never re-validated per access.
type Accessor struct {
	Symbol string
	Time   *View
	Open   *View
	High   *View
	Low    *View
	Close  *View
	Volume *View

	cursor     *Cursor
	timestamps []int64
	volumes    []int64
}

// NewAccessor builds bounded views over every column of the series, all bound
// to the given cursor. Timestamp and volume columns are exposed as
// float64-backed views; the raw integer columns stay available via CurrentBar.
func NewAccessor(data types.MarketSeries, cursor *Cursor) *Accessor {
	times := make([]float64, len(data.Timestamps))
	for i, ts := range data.Timestamps {
		times[i] = float64(ts)
	}

	volumes := make([]float64, len(data.Volume))
	for i, v := range data.Volume {
		volumes[i] = float64(v)
	}

	return &Accessor{
		Symbol:     data.Symbol,
		Time:       NewView(times, cursor),
		Open:       NewView(data.Open, cursor),
		High:       NewView(data.High, cursor),
		Low:        NewView(data.Low, cursor),
		Close:      NewView(data.Close, cursor),
		Volume:     NewView(volumes, cursor),
		cursor:     cursor,
		timestamps: data.Timestamps,
		volumes:    data.Volume,
	}
}

// Cursor returns the cursor shared by every column view.
func (a *Accessor) Cursor() *Cursor {
	return a.cursor
}

// CurrentBar returns the full OHLCV observation at the current bar.
func (a *Accessor) CurrentBar() (types.Bar, error) {
	if !a.cursor.Started() {
		return types.Bar{}, errors.New(errors.ErrCodeInvalidState, "no current bar before the first advance")
	}

	index := a.cursor.Current()

	return types.Bar{
		Timestamp: a.timestamps[index],
		Open:      a.mustAt(a.Open),
		High:      a.mustAt(a.High),
		Low:       a.mustAt(a.Low),
		Close:     a.mustAt(a.Close),
		Volume:    a.volumes[index],
	}, nil
}

func (a *Accessor) mustAt(v *View) float64 {
	value, err := v.At(-1)
	if err != nil {
		// Started() was checked above, so -1 always resolves.
		panic(err)
	}

	return value
}

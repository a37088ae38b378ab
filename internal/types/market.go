package types

import (
	"github.com/rxtech-lab/argo-replay/pkg/errors"
)

// MarketSeries holds one symbol's bar history in column form. Every column
// has the same length N, fixed before a run starts; the engine treats columns
// as immutable for the duration of the run.
type MarketSeries struct {
	Symbol     string    `yaml:"symbol"`
	Timestamps []int64   `yaml:"timestamps"`
	Open       []float64 `yaml:"open"`
	High       []float64 `yaml:"high"`
	Low        []float64 `yaml:"low"`
	Close      []float64 `yaml:"close"`
	Volume     []int64   `yaml:"volume"`
}

// Len returns the number of bars in the series.
func (s MarketSeries) Len() int {
	return len(s.Close)
}

// Validate checks the input contract for a run: at least one bar, all columns
// aligned to the same length, and non-decreasing timestamps.
func (s MarketSeries) Validate() error {
	n := len(s.Close)
	if n < 1 {
		return errors.New(errors.ErrCodeInvalidConfiguration, "market series must contain at least one bar")
	}

	lengths := map[string]int{
		"timestamps": len(s.Timestamps),
		"open":       len(s.Open),
		"high":       len(s.High),
		"low":        len(s.Low),
		"volume":     len(s.Volume),
	}

	for column, length := range lengths {
		if length != n {
			return errors.Newf(errors.ErrCodeInvalidConfiguration,
				"column %s has length %d, want %d", column, length, n)
		}
	}

	for i := 1; i < n; i++ {
		if s.Timestamps[i] < s.Timestamps[i-1] {
			return errors.Newf(errors.ErrCodeInvalidConfiguration,
				"timestamps must be non-decreasing, bar %d goes backwards (%d < %d)",
				i, s.Timestamps[i], s.Timestamps[i-1])
		}
	}

	return nil
}

// Bar is one discrete time-indexed price/volume observation.
type Bar struct {
	Timestamp int64   `yaml:"timestamp"`
	Open      float64 `yaml:"open"`
	High      float64 `yaml:"high"`
	Low       float64 `yaml:"low"`
	Close     float64 `yaml:"close"`
	Volume    int64   `yaml:"volume"`
}

package indicator

import (
	"math"
)

// SMA computes a simple moving average. Parameters: data []float64,
// period int. Bars before the window is full are NaN.
func SMA(params ...any) (Values, error) {
	data, err := seriesParam("SMA", params, 0)
	if err != nil {
		return Values{}, err
	}

	period, err := periodParam("SMA", params, 1)
	if err != nil {
		return Values{}, err
	}

	n := len(data)
	out := nanSlice(n)

	if period > n {
		return Single(out), nil
	}

	windowSum := 0.0
	for i := 0; i < period; i++ {
		windowSum += data[i]
	}

	out[period-1] = windowSum / float64(period)

	for i := period; i < n; i++ {
		windowSum += data[i] - data[i-period]
		out[i] = windowSum / float64(period)
	}

	return Single(out), nil
}

// EMA computes an exponential moving average seeded at the first value.
// Parameters: data []float64, period int.
func EMA(params ...any) (Values, error) {
	data, err := seriesParam("EMA", params, 0)
	if err != nil {
		return Values{}, err
	}

	period, err := periodParam("EMA", params, 1)
	if err != nil {
		return Values{}, err
	}

	out := ema(data, period)

	return Single(out), nil
}

func ema(data []float64, period int) []float64 {
	n := len(data)
	out := make([]float64, n)

	if n == 0 {
		return out
	}

	alpha := 2.0 / float64(period+1)
	out[0] = data[0]

	for i := 1; i < n; i++ {
		out[i] = alpha*data[i] + (1-alpha)*out[i-1]
	}

	return out
}

// ATR computes the average true range with Wilder smoothing. Parameters:
// high, low, close []float64, period int. The first period-1 bars are NaN.
func ATR(params ...any) (Values, error) {
	high, err := seriesParam("ATR", params, 0)
	if err != nil {
		return Values{}, err
	}

	low, err := seriesParam("ATR", params, 1)
	if err != nil {
		return Values{}, err
	}

	closes, err := seriesParam("ATR", params, 2)
	if err != nil {
		return Values{}, err
	}

	period, err := periodParam("ATR", params, 3)
	if err != nil {
		return Values{}, err
	}

	n := len(closes)
	out := nanSlice(n)

	if n == 0 || period > n {
		return Single(out), nil
	}

	tr := make([]float64, n)
	tr[0] = high[0] - low[0]

	for i := 1; i < n; i++ {
		highLow := high[i] - low[i]
		highClose := math.Abs(high[i] - closes[i-1])
		lowClose := math.Abs(low[i] - closes[i-1])
		tr[i] = math.Max(highLow, math.Max(highClose, lowClose))
	}

	// First point is the plain mean of the initial window, Wilder smoothing
	// from there on.
	sum := 0.0
	for i := 0; i < period; i++ {
		sum += tr[i]
	}

	out[period-1] = sum / float64(period)

	alpha := 1.0 / float64(period)
	for i := period; i < n; i++ {
		out[i] = alpha*tr[i] + (1-alpha)*out[i-1]
	}

	return Single(out), nil
}

// RollingStd computes a rolling population standard deviation. Parameters:
// data []float64, window int. Bars before the window is full are NaN.
func RollingStd(params ...any) (Values, error) {
	data, err := seriesParam("RollingStd", params, 0)
	if err != nil {
		return Values{}, err
	}

	window, err := periodParam("RollingStd", params, 1)
	if err != nil {
		return Values{}, err
	}

	return Single(rollingStd(data, window)), nil
}

func rollingStd(data []float64, window int) []float64 {
	n := len(data)
	out := nanSlice(n)

	for i := window - 1; i < n; i++ {
		mean := 0.0
		for j := i - window + 1; j <= i; j++ {
			mean += data[j]
		}

		mean /= float64(window)

		variance := 0.0
		for j := i - window + 1; j <= i; j++ {
			diff := data[j] - mean
			variance += diff * diff
		}

		out[i] = math.Sqrt(variance / float64(window))
	}

	return out
}

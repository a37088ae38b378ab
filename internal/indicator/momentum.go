package indicator

// RSI computes the relative strength index with Wilder smoothing.
// Parameters: data []float64, period int. Bars up to and including index
// period-1 are NaN.
func RSI(params ...any) (Values, error) {
	data, err := seriesParam("RSI", params, 0)
	if err != nil {
		return Values{}, err
	}

	period, err := periodParam("RSI", params, 1)
	if err != nil {
		return Values{}, err
	}

	n := len(data)
	out := nanSlice(n)

	if period >= n {
		return Single(out), nil
	}

	gains := make([]float64, n-1)
	losses := make([]float64, n-1)

	for i := 1; i < n; i++ {
		delta := data[i] - data[i-1]
		if delta > 0 {
			gains[i-1] = delta
		} else {
			losses[i-1] = -delta
		}
	}

	avgGain := 0.0
	avgLoss := 0.0

	for i := 0; i < period; i++ {
		avgGain += gains[i]
		avgLoss += losses[i]
	}

	avgGain /= float64(period)
	avgLoss /= float64(period)
	out[period] = rsiValue(avgGain, avgLoss)

	for i := period + 1; i < n; i++ {
		avgGain = (avgGain*float64(period-1) + gains[i-1]) / float64(period)
		avgLoss = (avgLoss*float64(period-1) + losses[i-1]) / float64(period)
		out[i] = rsiValue(avgGain, avgLoss)
	}

	return Single(out), nil
}

func rsiValue(avgGain, avgLoss float64) float64 {
	// Small epsilon keeps an all-gain window from dividing by zero.
	rs := avgGain / (avgLoss + 1e-10)

	return 100 - 100/(1+rs)
}

// MACD computes the moving average convergence divergence. Parameters:
// data []float64, fast int, slow int, signal int. Returns a named grouping
// with components "macd", "signal" and "histogram".
func MACD(params ...any) (Values, error) {
	data, err := seriesParam("MACD", params, 0)
	if err != nil {
		return Values{}, err
	}

	fast, err := periodParam("MACD", params, 1)
	if err != nil {
		return Values{}, err
	}

	slow, err := periodParam("MACD", params, 2)
	if err != nil {
		return Values{}, err
	}

	signalPeriod, err := periodParam("MACD", params, 3)
	if err != nil {
		return Values{}, err
	}

	n := len(data)
	emaFast := ema(data, fast)
	emaSlow := ema(data, slow)

	macdLine := make([]float64, n)
	for i := 0; i < n; i++ {
		macdLine[i] = emaFast[i] - emaSlow[i]
	}

	signalLine := ema(macdLine, signalPeriod)

	histogram := make([]float64, n)
	for i := 0; i < n; i++ {
		histogram[i] = macdLine[i] - signalLine[i]
	}

	return Named(
		Component{Name: "macd", Values: macdLine},
		Component{Name: "signal", Values: signalLine},
		Component{Name: "histogram", Values: histogram},
	), nil
}

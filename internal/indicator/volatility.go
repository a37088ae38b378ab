package indicator

// BollingerBands computes Bollinger bands. Parameters: data []float64,
// period int, stdDev float64. Returns a named grouping with components
// "middle", "upper" and "lower"; warmup bars are NaN.
func BollingerBands(params ...any) (Values, error) {
	data, err := seriesParam("BollingerBands", params, 0)
	if err != nil {
		return Values{}, err
	}

	period, err := periodParam("BollingerBands", params, 1)
	if err != nil {
		return Values{}, err
	}

	stdDev, err := floatParam("BollingerBands", params, 2)
	if err != nil {
		return Values{}, err
	}

	middleValues, err := SMA(data, period)
	if err != nil {
		return Values{}, err
	}

	middle, err := middleValues.SingleValues()
	if err != nil {
		return Values{}, err
	}

	std := rollingStd(data, period)

	n := len(data)
	upper := make([]float64, n)
	lower := make([]float64, n)

	for i := 0; i < n; i++ {
		upper[i] = middle[i] + stdDev*std[i]
		lower[i] = middle[i] - stdDev*std[i]
	}

	return Named(
		Component{Name: "middle", Values: middle},
		Component{Name: "upper", Values: upper},
		Component{Name: "lower", Values: lower},
	), nil
}

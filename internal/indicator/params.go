package indicator

import (
	"math"

	"github.com/rxtech-lab/argo-replay/pkg/errors"
)

func seriesParam(name string, params []any, i int) ([]float64, error) {
	if i >= len(params) {
		return nil, errors.Newf(errors.ErrCodeMissingParameter, "%s: missing series parameter at position %d", name, i)
	}

	data, ok := params[i].([]float64)
	if !ok {
		return nil, errors.Newf(errors.ErrCodeInvalidType, "%s: parameter %d must be []float64, got %T", name, i, params[i])
	}

	return data, nil
}

func periodParam(name string, params []any, i int) (int, error) {
	if i >= len(params) {
		return 0, errors.Newf(errors.ErrCodeMissingParameter, "%s: missing period parameter at position %d", name, i)
	}

	period, ok := params[i].(int)
	if !ok {
		return 0, errors.Newf(errors.ErrCodeInvalidType, "%s: parameter %d must be int, got %T", name, i, params[i])
	}

	if period < 1 {
		return 0, errors.Newf(errors.ErrCodeInvalidPeriod, "%s: period must be positive, got %d", name, period)
	}

	return period, nil
}

func floatParam(name string, params []any, i int) (float64, error) {
	if i >= len(params) {
		return 0, errors.Newf(errors.ErrCodeMissingParameter, "%s: missing parameter at position %d", name, i)
	}

	value, ok := params[i].(float64)
	if !ok {
		return 0, errors.Newf(errors.ErrCodeInvalidType, "%s: parameter %d must be float64, got %T", name, i, params[i])
	}

	return value, nil
}

// nanSlice returns a series of length n filled with NaN. Indicator values are
// NaN wherever the computation is not yet defined (warmup bars).
func nanSlice(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = math.NaN()
	}

	return out
}

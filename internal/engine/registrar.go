package engine

import (
	"fmt"
	"reflect"
	"runtime"
	"strings"

	"github.com/rxtech-lab/argo-replay/internal/indicator"
	"github.com/rxtech-lab/argo-replay/internal/series"
	"github.com/rxtech-lab/argo-replay/pkg/errors"
	"go.uber.org/zap"
)

// register is the engine's caching registrar. The computation runs eagerly
// over the full series — only procedure access is cursor-bounded, the
// computation itself gets full historical access — and is performed exactly
// once per distinct (function, args) key per run. The cache lives and dies
// with the run; it is never shared across runs.
func (e *Engine) register(fn indicator.Compute, args ...any) (series.Derived, error) {
	key := cacheKey(fn, args)

	if derived, ok := e.cache[key]; ok {
		return derived, nil
	}

	name := computeName(fn)

	values, err := fn(args...)
	if err != nil {
		return nil, fmt.Errorf("computation %s failed: %w", name, err)
	}

	derived, err := e.wrap(name, values)
	if err != nil {
		return nil, err
	}

	e.cache[key] = derived
	e.log.Debug("derived series registered",
		zap.String("computation", name),
		zap.Int("components", len(values.Components())),
	)

	return derived, nil
}

// wrap validates the result shape against the run length and binds it to the
// run's cursor.
func (e *Engine) wrap(name string, values indicator.Values) (series.Derived, error) {
	components := values.Components()
	if len(components) == 0 {
		return nil, errors.Newf(errors.ErrCodeInvalidResultShape, "computation %s returned no series", name)
	}

	n := e.cursor.Length()

	for i, component := range components {
		if len(component.Values) != n {
			return nil, errors.Newf(errors.ErrCodeLengthMismatch,
				"computation %s component %d (%s) has length %d, want %d",
				name, i, component.Name, len(component.Values), n)
		}
	}

	if values.IsSingle() {
		return series.NewView(components[0].Values, e.cursor), nil
	}

	names := make([]string, len(components))
	columns := make([][]float64, len(components))

	for i, component := range components {
		names[i] = component.Name
		columns[i] = component.Values
	}

	return series.NewComposite(e.cursor, names, columns), nil
}

// cacheKey builds the registration key from the computing function's identity
// and its arguments. Slice arguments are keyed by backing array identity and
// length; the cache is scoped to one run, so identity comparison is exact.
func cacheKey(fn indicator.Compute, args []any) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%x", reflect.ValueOf(fn).Pointer())

	for _, arg := range args {
		value := reflect.ValueOf(arg)
		if value.Kind() == reflect.Slice {
			fmt.Fprintf(&b, "|s:%x:%d", value.Pointer(), value.Len())
		} else {
			fmt.Fprintf(&b, "|%v", arg)
		}
	}

	return b.String()
}

// computeName resolves a human-readable name for a computation function,
// used in error messages and logs.
func computeName(fn indicator.Compute) string {
	pc := reflect.ValueOf(fn).Pointer()

	if f := runtime.FuncForPC(pc); f != nil {
		name := f.Name()
		if i := strings.LastIndex(name, "."); i >= 0 {
			return name[i+1:]
		}

		return name
	}

	return fmt.Sprintf("func@%x", pc)
}

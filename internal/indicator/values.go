// Package indicator provides derived-series computation functions and the
// tagged result shape they return. Computations run eagerly over the full
// input series; bounding to the cursor happens at the view layer, not here.
package indicator

import (
	"sort"

	"github.com/rxtech-lab/argo-replay/pkg/errors"
)

// Kind tags the shape of a computation result.
type Kind int

const (
	// KindSingle is one series.
	KindSingle Kind = iota
	// KindTuple is a fixed-arity group of positional series.
	KindTuple
	// KindNamed is a group of series with declared field names.
	KindNamed
	// KindKeyed is a group of series keyed by string, ordered by sorted key.
	KindKeyed
)

// Component is one series of a multi-output result.
type Component struct {
	Name   string
	Values []float64
}

// Values is the tagged result of a derived computation: a single series, or a
// tuple/named/keyed grouping of aligned series. It is consumed uniformly by
// the registrar regardless of kind.
type Values struct {
	kind       Kind
	components []Component
}

// Single wraps one series.
func Single(values []float64) Values {
	return Values{
		kind:       KindSingle,
		components: []Component{{Name: "", Values: values}},
	}
}

// Tuple wraps positional series; components are addressable by index only.
func Tuple(values ...[]float64) Values {
	components := make([]Component, len(values))
	for i, v := range values {
		components[i] = Component{Name: "", Values: v}
	}

	return Values{
		kind:       KindTuple,
		components: components,
	}
}

// Named wraps series with declared field names, addressable by name or index.
func Named(components ...Component) Values {
	return Values{
		kind:       KindNamed,
		components: components,
	}
}

// Keyed wraps a string-keyed mapping of series. Keys are sorted so component
// order is deterministic regardless of map iteration order.
func Keyed(values map[string][]float64) Values {
	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	components := make([]Component, len(keys))
	for i, key := range keys {
		components[i] = Component{Name: key, Values: values[key]}
	}

	return Values{
		kind:       KindKeyed,
		components: components,
	}
}

// Kind returns the shape tag.
func (v Values) Kind() Kind {
	return v.kind
}

// Components returns the component series in positional order.
func (v Values) Components() []Component {
	return v.components
}

// IsSingle reports whether the result is one plain series.
func (v Values) IsSingle() bool {
	return v.kind == KindSingle
}

// SingleValues returns the sole series of a single-shaped result.
func (v Values) SingleValues() ([]float64, error) {
	if v.kind != KindSingle {
		return nil, errors.Newf(errors.ErrCodeInvalidResultShape,
			"result has %d components, expected a single series", len(v.components))
	}

	return v.components[0].Values, nil
}

// Compute is the contract for derived-series computation functions: given
// full-length input arrays and parameters, return either one series of length
// N or a grouping of series each of length N. Parameters follow the
// params-varargs convention; implementations type-assert and report
// missing/mistyped parameters through pkg/errors codes.
type Compute func(params ...any) (Values, error)

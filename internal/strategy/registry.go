package strategy

import (
	"sort"
	"sync"

	"github.com/rxtech-lab/argo-replay/pkg/errors"
)

// Factory constructs a fresh strategy instance. Every run gets its own
// instance; strategies are never shared across runs.
type Factory func() Strategy

// Registry manages the strategies available by name.
type Registry interface {
	Register(name string, factory Factory) error
	Get(name string) (Strategy, error)
	List() []string
}

// RegistryV1 manages the strategies available by name.
type RegistryV1 struct {
	factories map[string]Factory
	mu        sync.RWMutex
}

// NewRegistry creates an empty strategy registry.
func NewRegistry() Registry {
	return &RegistryV1{
		factories: make(map[string]Factory),
		mu:        sync.RWMutex{},
	}
}

// NewBuiltinRegistry creates a registry with every built-in strategy
// registered.
func NewBuiltinRegistry() Registry {
	registry := NewRegistry()

	// Registration of built-ins cannot collide.
	_ = registry.Register("sma_crossover", func() Strategy { return NewSMACrossover() })
	_ = registry.Register("rsi_reversal", func() Strategy { return NewRSIReversal() })
	_ = registry.Register("bollinger_reversion", func() Strategy { return NewBollingerReversion() })

	return registry
}

// Register adds a strategy factory to the registry.
func (r *RegistryV1) Register(name string, factory Factory) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.factories[name]; exists {
		return errors.Newf(errors.ErrCodeInvalidParameter, "strategy %q already registered", name)
	}

	r.factories[name] = factory

	return nil
}

// Get constructs a fresh instance of the named strategy.
func (r *RegistryV1) Get(name string) (Strategy, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	factory, exists := r.factories[name]
	if !exists {
		return nil, errors.Newf(errors.ErrCodeInvalidParameter, "strategy %q not found", name)
	}

	return factory(), nil
}

// List returns the registered strategy names in sorted order.
func (r *RegistryV1) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

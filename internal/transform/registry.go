package transform

import (
	"fmt"
	"sync"
)

// Registry maps entity kinds to the Transformers responsible for them.
// Registration happens during application wiring; lookups are safe for
// concurrent use once the application is serving requests.
type Registry struct {
	mu           sync.RWMutex
	transformers map[string]Transformer
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		transformers: make(map[string]Transformer),
	}
}

// Register associates a kind with its Transformer. Registering the same kind
// twice is a wiring mistake and returns an error.
func (r *Registry) Register(kind string, t Transformer) error {
	if kind == "" {
		return fmt.Errorf("transformer kind cannot be empty")
	}
	if t == nil {
		return fmt.Errorf("transformer for kind %q cannot be nil", kind)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.transformers[kind]; exists {
		return fmt.Errorf("transformer already registered for kind %q", kind)
	}
	r.transformers[kind] = t
	return nil
}

// MustRegister is like Register but panics on error. Intended for wiring code
// that runs at startup, where a bad registration should stop the process.
func (r *Registry) MustRegister(kind string, t Transformer) {
	if err := r.Register(kind, t); err != nil {
		// ALLOW-PANIC: startup wiring enforcing a valid registry
		panic(err)
	}
}

// Lookup returns the Transformer for kind. Returns ErrUnknownKind (wrapped
// with the kind name) when no transformer has been registered for it.
func (r *Registry) Lookup(kind string) (Transformer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.transformers[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	return t, nil
}

// Kinds returns the registered kinds. Order is unspecified.
func (r *Registry) Kinds() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	kinds := make([]string, 0, len(r.transformers))
	for kind := range r.transformers {
		kinds = append(kinds, kind)
	}
	return kinds
}

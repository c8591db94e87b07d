package registry

import (
	"fmt"
	"sync"

	"github.com/beaconhouse/beacon/internal/config"
)

// Key is a type-safe key for registering and retrieving services.
// The string value should be unique, e.g. "leads.service".
type Key[T any] string

// Registry lets modules share services at runtime.
type Registry struct {
	services sync.Map
	cfg      config.Provider
}

// New creates a new registry holding the application's configuration.
func New(cfg config.Provider) *Registry {
	return &Registry{cfg: cfg}
}

// Config returns the configuration provider stored in the registry.
func (r *Registry) Config() config.Provider {
	return r.cfg
}

// Set registers a service instance against a type-safe key.
func Set[T any](r *Registry, key Key[T], value T) {
	r.services.Store(string(key), value)
}

// Get retrieves the service registered under key.
func Get[T any](r *Registry, key Key[T]) (T, bool) {
	var zero T
	val, ok := r.services.Load(string(key))
	if !ok {
		return zero, false
	}
	result, ok := val.(T)
	if !ok {
		return zero, false
	}
	return result, true
}

// MustGet retrieves a service or panics if it is missing. Use it for
// wiring essential dependencies at startup.
func MustGet[T any](r *Registry, key Key[T]) T {
	val, ok := Get(r, key)
	if !ok {
		panic(fmt.Sprintf("service not found for key: %v", key))
	}
	return val
}

// Keys lists the registered keys, for diagnostics.
func (r *Registry) Keys() []string {
	var keys []string
	r.services.Range(func(k, _ any) bool {
		keys = append(keys, k.(string))
		return true
	})
	return keys
}

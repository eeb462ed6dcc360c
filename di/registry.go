package di

import (
	"errors"
	"fmt"
	"reflect"
)

// Registry provides optional dependencies at build time.
//
// Implementations must be read-only and side effect free:
//
//	val, ok, err := reg.Resolve(cfg, "holder.sink")
type Registry interface {
	Resolve(cfg any, key DependencyKey) (val any, ok bool, err error)
}

// ErrRegistryPanic is returned if a registry implementation panics internally.
var ErrRegistryPanic = errors.New("registry: panic during Resolve")

// MapRegistry is an in-memory Registry. It ignores cfg.
type MapRegistry struct {
	items map[DependencyKey]any
}

// NewMapRegistry returns an empty registry.
func NewMapRegistry() *MapRegistry {
	return &MapRegistry{items: map[DependencyKey]any{}}
}

// Provide stores val under key and returns the registry for chaining.
func (r *MapRegistry) Provide(key DependencyKey, val any) *MapRegistry {
	r.items[key] = val
	return r
}

// Resolve implements Registry. Panics inside the lookup become ErrRegistryPanic.
func (r *MapRegistry) Resolve(_ any, key DependencyKey) (val any, ok bool, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			val = nil
			ok = false
			err = fmt.Errorf("%w: %v", ErrRegistryPanic, rec)
		}
	}()

	v, ok := r.items[key]
	return v, ok, nil
}

// ResolveAs looks key up in reg and asserts the result to V.
//
// A nil registry or a missing key yields (zero, false, nil). A value of any
// other type yields WrongTypeDependencyError.
func ResolveAs[V any](reg Registry, cfg any, key DependencyKey) (V, bool, error) {
	var zero V
	if reg == nil {
		return zero, false, nil
	}
	raw, ok, err := reg.Resolve(cfg, key)
	if err != nil {
		return zero, false, err
	}
	if !ok || raw == nil {
		return zero, false, nil
	}
	v, ok := raw.(V)
	if !ok {
		return zero, false, WrongTypeDependencyError{Key: key, GotType: reflect.TypeOf(raw).String()}
	}
	return v, true, nil
}

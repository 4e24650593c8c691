package display

import (
	"errors"
	"fmt"
	"slices"
	"sync"
)

var (
	// ErrEmptyKind is returned when registering under an empty kind.
	ErrEmptyKind = errors.New("display kind is empty")
	// ErrNilFunc is returned when registering a nil callback.
	ErrNilFunc = errors.New("display func is nil")
	// ErrSealed is returned when registering after Seal.
	ErrSealed = errors.New("display registry is sealed")
	// ErrKindMismatch is returned by Typed callbacks handed a value of the wrong type.
	ErrKindMismatch = errors.New("value does not match registered kind")
)

// Kind identifies what a display callback handles.
type Kind string

// Displayable is implemented by values that can be dispatched by kind.
type Displayable interface {
	DisplayKind() string
}

// Func renders v. It may publish into out directly and return Hidden, or
// return a bundle for the registry to publish.
type Func func(out Cell, v Displayable) (Result, error)

// Typed adapts a callback over a concrete type T to a Func.
func Typed[T any](fn func(out Cell, v T) (Result, error)) Func {
	return func(out Cell, v Displayable) (Result, error) {
		t, ok := v.(T)
		if !ok {
			var zero T
			return Result{}, fmt.Errorf("%w: got %T, want %T", ErrKindMismatch, v, zero)
		}
		return fn(out, t)
	}
}

// Registry maps display kinds to callbacks.
//
// The zero value is not usable; call NewRegistry.
type Registry struct {
	mu      sync.RWMutex
	entries map[Kind]Func
	sealed  bool
}

// NewRegistry creates an empty, unsealed registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[Kind]Func)}
}

// Register associates kind with fn. A later registration for the same kind
// replaces the earlier one.
func (r *Registry) Register(kind Kind, fn Func) error {
	if kind == "" {
		return ErrEmptyKind
	}
	if fn == nil {
		return fmt.Errorf("%s: %w", kind, ErrNilFunc)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.sealed {
		return fmt.Errorf("%s: %w", kind, ErrSealed)
	}
	r.entries[kind] = fn
	return nil
}

// Seal ends the registration phase.
func (r *Registry) Seal() {
	r.mu.Lock()
	r.sealed = true
	r.mu.Unlock()
}

// Sealed reports whether Seal has been called.
func (r *Registry) Sealed() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sealed
}

// Lookup returns the callback registered for kind.
func (r *Registry) Lookup(kind Kind) (Func, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	fn, ok := r.entries[kind]
	return fn, ok
}

// Kinds returns the registered kinds, sorted.
func (r *Registry) Kinds() []Kind {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Kind, 0, len(r.entries))
	for k := range r.entries {
		out = append(out, k)
	}
	slices.Sort(out)
	return out
}

// Display renders v into out. Errors from the callback are returned as-is so
// the host can surface them as a failed output.
func (r *Registry) Display(out Cell, v any) error {
	d, ok := v.(Displayable)
	if !ok {
		return out.Publish(Fallback(v))
	}
	fn, ok := r.Lookup(Kind(d.DisplayKind()))
	if !ok {
		return out.Publish(Fallback(v))
	}
	res, err := fn(out, d)
	if err != nil {
		return err
	}
	if res.Hidden() {
		return nil
	}
	return out.Publish(res.Bundle())
}

// Fallback is the plain-text rendering used for values without a callback.
func Fallback(v any) Bundle {
	return Bundle{MIMEText: fmt.Sprint(v)}
}

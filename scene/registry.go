package scene

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownScene = errors.New("unknown scene")
	ErrDuplicate    = errors.New("duplicate scene name")
)

// Factory builds a fresh scene instance
type Factory func() Scene

type entry struct {
	name    string
	factory Factory
}

// Registry is an ordered set of named scene factories
type Registry struct {
	entries []entry
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{}
}

// Register appends a factory under name
func (r *Registry) Register(name string, f Factory) error {
	if _, err := r.Index(name); err == nil {
		return fmt.Errorf("%w: %q", ErrDuplicate, name)
	}
	r.entries = append(r.entries, entry{name: name, factory: f})
	return nil
}

// MustRegister panics on duplicate names, for static registration lists
func (r *Registry) MustRegister(name string, f Factory) {
	if err := r.Register(name, f); err != nil {
		panic(err)
	}
}

// Len returns the number of registered scenes
func (r *Registry) Len() int {
	return len(r.entries)
}

// Names returns scene names in registration order
func (r *Registry) Names() []string {
	names := make([]string, len(r.entries))
	for i, e := range r.entries {
		names[i] = e.name
	}
	return names
}

// Index returns the position of name
func (r *Registry) Index(name string) (int, error) {
	for i, e := range r.entries {
		if e.name == name {
			return i, nil
		}
	}
	return -1, fmt.Errorf("%w: %q", ErrUnknownScene, name)
}

// At builds the scene at index i
func (r *Registry) At(i int) (Scene, error) {
	if i < 0 || i >= len(r.entries) {
		return nil, fmt.Errorf("%w: index %d", ErrUnknownScene, i)
	}
	return r.entries[i].factory(), nil
}

// Build instantiates every scene once, in order
func (r *Registry) Build() []Scene {
	scenes := make([]Scene, len(r.entries))
	for i, e := range r.entries {
		scenes[i] = e.factory()
	}
	return scenes
}

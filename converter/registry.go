package converter

import "sync"

type (
	//Func converts terminal value
	Func func(value interface{}) interface{}

	//Registry maps kinds to converters
	Registry struct {
		mux        sync.RWMutex
		converters map[Kind]Func
	}
)

// Register registers or replaces kind converter
func (r *Registry) Register(kind Kind, fn Func) {
	r.mux.Lock()
	defer r.mux.Unlock()
	r.converters[kind] = fn
}

// Lookup returns kind converter
func (r *Registry) Lookup(kind Kind) (Func, bool) {
	r.mux.RLock()
	defer r.mux.RUnlock()
	fn, ok := r.converters[kind]
	return fn, ok
}

// Convert applies converter matching value kind, otherwise returns value unchanged
func (r *Registry) Convert(value interface{}) interface{} {
	if r == nil || value == nil {
		return value
	}
	fn, ok := r.Lookup(KindOf(value))
	if !ok {
		return value
	}
	return fn(value)
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{converters: map[Kind]Func{}}
}

// New creates a registry with built-in converters
func New() *Registry {
	ret := NewRegistry()
	ret.Register(KindDate, NewDate(nil).Convert)
	return ret
}

package model

import "sync"

// Registry stores model handles per capability.
type Registry struct {
	handles map[Kind]*Handle
	mu      sync.RWMutex
}

// NewRegistry creates a new model registry.
func NewRegistry() *Registry {
	return &Registry{
		handles: make(map[Kind]*Handle),
	}
}

// Set adds a model handle to the registry.
func (r *Registry) Set(h *Handle) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.handles[h.Kind()] = h
}

// Get returns the handle for the given kind.
func (r *Registry) Get(kind Kind) (*Handle, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	h, ok := r.handles[kind]
	return h, ok
}

// Clear removes all handles, e.g. at shutdown.
func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.handles = make(map[Kind]*Handle)
}

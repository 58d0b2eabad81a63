package model

import (
	"fmt"
	"sync"
)

// Handle is a lazily-initialized, process-lifetime reference to a model.
// The first Get triggers the load exactly once, even under concurrent first
// requests. A load failure latches: every later Get re-reports the same
// unavailable error without retrying.
type Handle struct {
	kind Kind
	load func() (*Instance, error)

	once     sync.Once
	instance *Instance
	err      error
}

// NewHandle creates a handle around a load function.
func NewHandle(kind Kind, load func() (*Instance, error)) *Handle {
	return &Handle{kind: kind, load: load}
}

// Kind returns the capability this handle serves.
func (h *Handle) Kind() Kind {
	return h.kind
}

// Get returns the loaded instance, loading it on first use.
func (h *Handle) Get() (*Instance, error) {
	h.once.Do(func() {
		instance, err := h.load()
		if err != nil {
			h.err = fmt.Errorf("%s model: %w: %v", h.kind, ErrUnavailable, err)
			return
		}
		h.instance = instance
	})

	return h.instance, h.err
}

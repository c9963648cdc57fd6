package provider

import (
	"fmt"
	"sync"

	"memo2text/internal/app/api"
)

// Registry manages the available transcription engines by name. The first
// registered engine becomes the default until SetDefault changes it.
type Registry struct {
	mu       sync.RWMutex
	engines  map[string]api.Transcriber
	default_ string
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		engines: make(map[string]api.Transcriber),
	}
}

// Register adds a transcription engine under name.
func (r *Registry) Register(name string, engine api.Transcriber) error {
	if name == "" {
		return fmt.Errorf("engine name cannot be empty")
	}
	if engine == nil {
		return fmt.Errorf("engine cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.engines[name]; exists {
		return fmt.Errorf("engine '%s' already registered", name)
	}

	r.engines[name] = engine

	if r.default_ == "" {
		r.default_ = name
	}

	return nil
}

// Get retrieves an engine by name.
func (r *Registry) Get(name string) (api.Transcriber, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	engine, exists := r.engines[name]
	if !exists {
		return nil, fmt.Errorf("engine '%s' not found", name)
	}

	return engine, nil
}

// Default returns the default engine.
func (r *Registry) Default() (api.Transcriber, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.default_ == "" {
		return nil, fmt.Errorf("no default engine set")
	}

	return r.engines[r.default_], nil
}

// DefaultName returns the name of the default engine, empty when none is set.
func (r *Registry) DefaultName() string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.default_
}

// SetDefault sets the default engine.
func (r *Registry) SetDefault(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.engines[name]; !exists {
		return fmt.Errorf("engine '%s' not found", name)
	}

	r.default_ = name
	return nil
}

// Names returns the registered engine names.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.engines))
	for name := range r.engines {
		names = append(names, name)
	}
	return names
}

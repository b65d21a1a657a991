package engines

import (
	"fmt"
	"sync"

	"github.com/tablingo/tablingo/pkg/pipeline"
)

// Registry maps engine ids to constructed engines. Engines are expensive,
// process-lifetime handles; the registry is populated once at startup and
// read for the rest of the run.
type Registry struct {
	mu      sync.RWMutex
	engines map[string]pipeline.Engine
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{engines: make(map[string]pipeline.Engine)}
}

// Register adds an engine under its id.
func (r *Registry) Register(name string, engine pipeline.Engine) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.engines[name]; exists {
		return fmt.Errorf("engine %s already registered", name)
	}
	r.engines[name] = engine
	return nil
}

// Get returns the engine registered under name.
func (r *Registry) Get(name string) (pipeline.Engine, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	engine, exists := r.engines[name]
	if !exists {
		return nil, fmt.Errorf("engine %s not found", name)
	}
	return engine, nil
}

// List returns the registered engine ids.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.engines))
	for name := range r.engines {
		names = append(names, name)
	}
	return names
}

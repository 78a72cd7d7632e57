package gateway

import "sync"

// Factory builds a Gateway instance for a registered type handle.
type Factory func() Gateway

// TypeInfo describes a registered gateway type.
type TypeInfo struct {
	Handle      string `json:"handle"`
	DisplayName string `json:"display_name"`
}

// Registry maps provider type handles to gateway factories. Registration is
// open at runtime so integrations can add their own gateway types.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
	order     []string
}

func NewRegistry() *Registry {
	return &Registry{
		factories: make(map[string]Factory),
	}
}

// Register adds or replaces the factory for a type handle.
func (r *Registry) Register(typeHandle string, factory Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.factories[typeHandle]; !exists {
		r.order = append(r.order, typeHandle)
	}
	r.factories[typeHandle] = factory
}

// Create instantiates the gateway for a type handle, or nil if the handle is
// not registered.
func (r *Registry) Create(typeHandle string) Gateway {
	r.mu.RLock()
	factory, ok := r.factories[typeHandle]
	r.mu.RUnlock()

	if !ok {
		return nil
	}
	return factory()
}

// Types lists registered gateway types in registration order.
func (r *Registry) Types() []TypeInfo {
	r.mu.RLock()
	defer r.mu.RUnlock()

	types := make([]TypeInfo, 0, len(r.order))
	for _, handle := range r.order {
		gw := r.factories[handle]()
		types = append(types, TypeInfo{
			Handle:      gw.Handle(),
			DisplayName: gw.DisplayName(),
		})
	}
	return types
}

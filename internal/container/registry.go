package container

import "sort"

// Registry is the lookup table of top-level containers. The first container
// registered under a name is the one Find returns.
type Registry struct {
	containers []Container
	byName     map[string]Container
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		byName: make(map[string]Container),
	}
}

// Register adds c unless a container with the same name is already present.
// It reports whether c was accepted.
func (r *Registry) Register(c Container) bool {
	if _, exists := r.byName[c.Name()]; exists {
		return false
	}
	r.containers = append(r.containers, c)
	r.byName[c.Name()] = c
	return true
}

func (r *Registry) Find(name string) (Container, bool) {
	c, ok := r.byName[name]
	return c, ok
}

// All returns the registered containers in registration order.
func (r *Registry) All() []Container {
	out := make([]Container, len(r.containers))
	copy(out, r.containers)
	return out
}

// Sorted returns the registered containers ordered by name.
func (r *Registry) Sorted() []Container {
	out := r.All()
	sort.Slice(out, func(i, j int) bool {
		return out[i].Name() < out[j].Name()
	})
	return out
}

func (r *Registry) Len() int {
	return len(r.containers)
}

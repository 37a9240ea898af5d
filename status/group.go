package status

import "sync"

// Group is a named set of metrics of one kind, kept in registration order
// Metric returns a pointer that stays valid for the life of the group, so owners
// resolve their handles once at setup and update them lock-free afterwards
type Group[T any] struct {
	mu    sync.Mutex
	index map[string]int
	names []string
	vals  []*T
}

// NewGroup creates an empty group
func NewGroup[T any]() *Group[T] {
	return &Group[T]{index: make(map[string]int)}
}

// Metric returns the handle for name, registering it on first use
func (g *Group[T]) Metric(name string) *T {
	g.mu.Lock()
	defer g.mu.Unlock()
	if i, ok := g.index[name]; ok {
		return g.vals[i]
	}
	v := new(T)
	g.index[name] = len(g.vals)
	g.names = append(g.names, name)
	g.vals = append(g.vals, v)
	return v
}

// Each visits metrics in the order they were registered
func (g *Group[T]) Each(fn func(name string, v *T)) {
	g.mu.Lock()
	names, vals := g.names, g.vals
	g.mu.Unlock()
	for i, name := range names {
		fn(name, vals[i])
	}
}

// Len returns the number of registered metrics
func (g *Group[T]) Len() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.vals)
}

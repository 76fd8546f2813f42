// Package zorder assigns and mutates the stacking order across open panels.
package zorder

import "sort"

// Registry maintains a strictly increasing counter; the most recently
// focused panel always holds the numerically highest z-index. Closing a
// panel leaves a gap in the sequence; only the total order matters,
// never contiguity.
type Registry struct {
	counter int
	indexes map[string]int
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{indexes: make(map[string]int)}
}

// Register assigns an initial z-index above every existing panel and
// returns it. Registering an already known id brings it to front instead.
func (r *Registry) Register(id string) int {
	r.counter++
	r.indexes[id] = r.counter
	return r.counter
}

// BringToFront reassigns id the next counter value so it stacks above all
// other registered panels. Unknown ids are ignored.
func (r *Registry) BringToFront(id string) {
	if _, ok := r.indexes[id]; !ok {
		return
	}
	r.counter++
	r.indexes[id] = r.counter
}

// Unregister releases the id's slot. Remaining panels keep their indexes.
func (r *Registry) Unregister(id string) {
	delete(r.indexes, id)
}

// ZIndex returns the z-index for id and whether it is registered.
func (r *Registry) ZIndex(id string) (int, bool) {
	z, ok := r.indexes[id]
	return z, ok
}

// IDsByZ returns registered ids sorted back-to-front (lowest z first),
// the order a compositor should paint them in.
func (r *Registry) IDsByZ() []string {
	ids := make([]string, 0, len(r.indexes))
	for id := range r.indexes {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		return r.indexes[ids[i]] < r.indexes[ids[j]]
	})
	return ids
}

// Len returns the number of registered panels.
func (r *Registry) Len() int {
	return len(r.indexes)
}

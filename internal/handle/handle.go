// Package handle implements the arena-plus-index pattern used by every
// resource registry: opaque positive int32 handles mapped to heap
// resources, so no internal address ever crosses the call boundary.
package handle

import (
	"sort"
	"sync"
)

// Registry maps positive int32 handles to resources of one kind.
// Handle 0 and negative values never resolve. Freed handles become
// eligible for reuse by later allocations.
//
// All methods are safe for concurrent use.
type Registry[T any] struct {
	mu      sync.Mutex
	entries map[int32]*T
	next    int32
	free    []int32
}

// NewRegistry creates an empty registry. The first allocated handle is 1.
func NewRegistry[T any]() *Registry[T] {
	return &Registry[T]{
		entries: make(map[int32]*T),
		next:    1,
	}
}

// Put stores v and returns its handle, reusing a freed slot when one is
// available.
func (r *Registry[T]) Put(v *T) int32 {
	r.mu.Lock()
	defer r.mu.Unlock()

	var id int32
	if n := len(r.free); n > 0 {
		id = r.free[n-1]
		r.free = r.free[:n-1]
	} else {
		id = r.next
		r.next++
	}
	r.entries[id] = v
	return id
}

// Get resolves a handle. ok is false for zero, negative, or unknown
// handles.
func (r *Registry[T]) Get(id int32) (*T, bool) {
	if id <= 0 {
		return nil, false
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	v, ok := r.entries[id]
	return v, ok
}

// Remove invalidates a handle immediately and marks its slot for reuse.
// Removing an unknown handle is a no-op and returns false.
func (r *Registry[T]) Remove(id int32) bool {
	if id <= 0 {
		return false
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.entries[id]; !ok {
		return false
	}
	delete(r.entries, id)
	r.free = append(r.free, id)
	return true
}

// Len returns the number of live handles.
func (r *Registry[T]) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

// IDs returns the live handles in ascending order.
func (r *Registry[T]) IDs() []int32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	ids := make([]int32, 0, len(r.entries))
	for id := range r.entries {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

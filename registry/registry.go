// Package registry maintains the set of temporary paths pending cleanup.
package registry

import (
	"sort"
	"sync"
)

// Registry is a set of file system paths scheduled for removal at process
// termination. All methods are safe for concurrent use.
type Registry struct {
	mu sync.Mutex
	// +checklocks:mu
	paths map[string]struct{}
}

// New returns an empty Registry.
func New() *Registry {
	return &Registry{paths: map[string]struct{}{}}
}

// Register adds the given path to the set. Registering an already-tracked
// path or an empty path is a no-op.
func (r *Registry) Register(path string) {
	if path == "" {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.paths[path] = struct{}{}
}

// Unregister removes the path from the set. Removing a path that is not
// tracked is a no-op, not an error.
func (r *Registry) Unregister(path string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.paths, path)
}

// Contains reports whether the given path is currently tracked.
func (r *Registry) Contains(path string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.paths[path]

	return ok
}

// List returns a sorted snapshot of all tracked paths. Mutations after the
// call do not affect a previously returned snapshot.
func (r *Registry) List() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	return sortedKeys(r.paths)
}

// Drain atomically empties the registry and returns a sorted snapshot of the
// removed paths. A path registered concurrently with a drain lands either in
// the returned snapshot or in the registry for the next drain, never neither.
func (r *Registry) Drain() []string {
	r.mu.Lock()
	drained := r.paths
	r.paths = map[string]struct{}{}
	r.mu.Unlock()

	return sortedKeys(drained)
}

func sortedKeys(m map[string]struct{}) []string {
	result := make([]string, 0, len(m))

	for p := range m {
		result = append(result, p)
	}

	sort.Strings(result)

	return result
}

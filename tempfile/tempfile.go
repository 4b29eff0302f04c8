// Package tempfile creates temporary files and directories with content and
// tracks them for best-effort removal when the process terminates.
package tempfile

import (
	"context"

	"github.com/tmpkeep/tmpkeep/lifecycle"
	"github.com/tmpkeep/tmpkeep/registry"
	"github.com/tmpkeep/tmpkeep/sweep"
)

// Manager creates temporary files and directories and tracks them in its own
// registry. Termination hooks are installed lazily, on the first tracked
// creation. All methods are safe for concurrent use.
type Manager struct {
	reg     *registry.Registry
	sweeper *sweep.Sweeper
	hooks   *lifecycle.Manager
}

// New returns a Manager with a fresh registry and its own lifecycle hooks.
func New() *Manager {
	reg := registry.New()
	sw := sweep.New(reg)

	return &Manager{
		reg:     reg,
		sweeper: sw,
		hooks:   lifecycle.NewManager(sw),
	}
}

// CleanupOne removes a single path, recursively for directories, and reports
// whether removal succeeded. A path that does not exist counts as success and
// double cleanup of the same path is always safe.
func (m *Manager) CleanupOne(ctx context.Context, path string) bool {
	return m.sweeper.One(ctx, path)
}

// CleanupAll removes all currently tracked paths and returns the number of
// paths successfully removed. Calling it on an empty registry returns 0.
func (m *Manager) CleanupAll(ctx context.Context) int {
	return m.sweeper.All(ctx)
}

// ListTracked returns a sorted snapshot of all tracked paths.
func (m *Manager) ListTracked() []string {
	return m.reg.List()
}

// Exclude removes the path from tracking without deleting the underlying
// file or directory.
func (m *Manager) Exclude(path string) {
	m.reg.Unregister(path)
}

// IsTracked reports whether the path is registered for automatic cleanup.
func (m *Manager) IsTracked(path string) bool {
	return m.reg.Contains(path)
}

// Shutdown performs the final sweep, intended to be deferred by embedding
// applications so tracked paths are removed on normal exit. It returns the
// number of paths removed.
func (m *Manager) Shutdown(ctx context.Context) int {
	return m.hooks.Shutdown(ctx)
}

// Lifecycle returns the lifecycle manager owning this Manager's termination
// hooks.
func (m *Manager) Lifecycle() *lifecycle.Manager {
	return m.hooks
}

// Registry returns the underlying path registry.
func (m *Manager) Registry() *registry.Registry {
	return m.reg
}

// track registers a successfully created path for automatic cleanup, making
// sure termination hooks exist first.
func (m *Manager) track(ctx context.Context, path string) {
	m.hooks.EnsureInstalled(ctx)
	m.reg.Register(path)
}

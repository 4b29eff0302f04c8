package tempfile

import (
	"context"
	"sync"
)

// The package-level functions operate on a lazily-created process-wide
// Manager, for callers that do not need an explicitly scoped registry.

var (
	defaultOnce    sync.Once
	defaultManager *Manager
)

// Default returns the process-wide Manager shared by the package-level
// functions.
func Default() *Manager {
	defaultOnce.Do(func() {
		defaultManager = New()
	})

	return defaultManager
}

// Write creates a temporary file using the default Manager.
func Write(ctx context.Context, content []byte, extension string, opt *Options) (string, error) {
	return Default().Write(ctx, content, extension, opt)
}

// WriteString creates a temporary file from string content using the default Manager.
func WriteString(ctx context.Context, content, extension string, opt *Options) (string, error) {
	return Default().WriteString(ctx, content, extension, opt)
}

// WriteJSON writes an indented JSON document using the default Manager.
func WriteJSON(ctx context.Context, value interface{}, opt *Options) (string, error) {
	return Default().WriteJSON(ctx, value, opt)
}

// WriteCSV writes CSV rows using the default Manager.
func WriteCSV(ctx context.Context, rows interface{}, opt *Options) (string, error) {
	return Default().WriteCSV(ctx, rows, opt)
}

// WriteWithPattern creates a temporary file with a pattern-derived name using
// the default Manager.
func WriteWithPattern(ctx context.Context, content []byte, pattern string, opt *Options) (string, error) {
	return Default().WriteWithPattern(ctx, content, pattern, opt)
}

// Copy copies an existing file into a new temporary file using the default Manager.
func Copy(ctx context.Context, sourcePath, extension string, opt *Options) (string, error) {
	return Default().Copy(ctx, sourcePath, extension, opt)
}

// MkdirTemp creates a temporary directory using the default Manager.
func MkdirTemp(ctx context.Context, opt *Options) (string, error) {
	return Default().MkdirTemp(ctx, opt)
}

// CleanupOne removes a single path using the default Manager.
func CleanupOne(ctx context.Context, path string) bool {
	return Default().CleanupOne(ctx, path)
}

// CleanupAll removes all paths tracked by the default Manager.
func CleanupAll(ctx context.Context) int {
	return Default().CleanupAll(ctx)
}

// ListTracked returns the paths tracked by the default Manager.
func ListTracked() []string {
	return Default().ListTracked()
}

// Exclude removes a path from the default Manager's tracking without deleting it.
func Exclude(path string) {
	Default().Exclude(path)
}

// IsTracked reports whether the default Manager tracks the given path.
func IsTracked(path string) bool {
	return Default().IsTracked(path)
}

// Shutdown performs the final sweep of the default Manager.
func Shutdown(ctx context.Context) int {
	return Default().Shutdown(ctx)
}

// Package ospath provides discovery of OS-dependent paths.
package ospath

import (
	"os"
	"path/filepath"
	"strings"
)

// TempRoot returns the directory under which temporary files and directories
// are created by default. The TMPKEEP_TEMP_DIR environment variable overrides
// the operating system default.
func TempRoot() string {
	if d := os.Getenv("TMPKEEP_TEMP_DIR"); d != "" {
		return d
	}

	return os.TempDir()
}

// ResolveUserFriendlyPath replaces ~ in a path with a home directory.
func ResolveUserFriendlyPath(path string, relativeToHome bool) string {
	home, _ := os.UserHomeDir()
	if home != "" && strings.HasPrefix(path, "~") {
		return home + path[1:]
	}

	if filepath.IsAbs(path) {
		return path
	}

	if relativeToHome {
		return filepath.Join(home, path)
	}

	return path
}

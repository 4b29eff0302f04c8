// Package testutil contains utilities used in tests.
package testutil

import (
	"os"
	"testing"
)

// TempDirectory returns a temporary directory that is removed when the test
// completes. Directories of failed tests are left behind to aid debugging.
func TempDirectory(t *testing.T) string {
	t.Helper()

	d, err := os.MkdirTemp("", "tmpkeep-test")
	if err != nil {
		t.Fatal(err)
	}

	t.Cleanup(func() {
		if !t.Failed() {
			os.RemoveAll(d) //nolint:errcheck
		} else {
			t.Logf("temporary files left in %v", d)
		}
	})

	return d
}

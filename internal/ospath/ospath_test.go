package ospath_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tmpkeep/tmpkeep/internal/ospath"
)

func TestTempRootDefault(t *testing.T) {
	t.Setenv("TMPKEEP_TEMP_DIR", "")

	require.Equal(t, os.TempDir(), ospath.TempRoot())
}

func TestTempRootOverride(t *testing.T) {
	t.Setenv("TMPKEEP_TEMP_DIR", "/custom/temp")

	require.Equal(t, "/custom/temp", ospath.TempRoot())
}

func TestResolveUserFriendlyPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	require.Equal(t, filepath.Join(home, "foo"), filepath.FromSlash(ospath.ResolveUserFriendlyPath("~/foo", false)))
	require.Equal(t, "relative/path", ospath.ResolveUserFriendlyPath("relative/path", false))
	require.Equal(t, filepath.Join(home, "relative"), ospath.ResolveUserFriendlyPath("relative", true))
}

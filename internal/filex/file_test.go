package filex

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEnsureParentDir_CreatesMissingDirs(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "state", "blog", "tokens.db")

	require.NoError(t, EnsureParentDir(path))

	fi, err := os.Stat(filepath.Dir(path))
	require.NoError(t, err)
	require.True(t, fi.IsDir(), "should create a directory")

	if runtime.GOOS != "windows" {
		require.Equal(t, os.FileMode(0o700), fi.Mode().Perm()&0o700)
	}
}

func TestEnsureParentDir_Idempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state", "tokens.db")
	require.NoError(t, EnsureParentDir(path))
	require.NoError(t, EnsureParentDir(path))
}

func TestEnsureParentDir_BareFileName(t *testing.T) {
	require.NoError(t, EnsureParentDir("tokens.db"))
}

func TestEnsureParentDir_FailsIfFileWithSameNameExists(t *testing.T) {
	tmp := t.TempDir()
	blocker := filepath.Join(tmp, "state")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o600))

	err := EnsureParentDir(filepath.Join(blocker, "tokens.db"))
	require.Error(t, err, "should fail when a file exists with the same name")
}

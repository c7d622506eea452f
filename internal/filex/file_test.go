package filex

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEnsureFileDir_CreatesParent(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "state", "console", "prefs.db")

	require.NoError(t, EnsureFileDir(path))

	fi, err := os.Stat(filepath.Dir(path))
	require.NoError(t, err)
	require.True(t, fi.IsDir())

	if runtime.GOOS != "windows" {
		require.Equal(t, os.FileMode(0o700), fi.Mode().Perm()&0o700)
	}

	_, err = os.Stat(path)
	require.True(t, os.IsNotExist(err), "the file itself is not created")
}

func TestEnsureFileDir_Idempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "d", "prefs.db")
	require.NoError(t, EnsureFileDir(path))
	require.NoError(t, EnsureFileDir(path))
}

func TestEnsureFileDir_SkipsBareNamesAndURIs(t *testing.T) {
	for _, p := range []string{"prefs.db", ":memory:", "file:x/y.db?mode=memory"} {
		require.NoError(t, EnsureFileDir(p), p)
	}
	_, err := os.Stat("x")
	require.True(t, os.IsNotExist(err))
}

func TestEnsureFileDir_FailsWhenParentIsAFile(t *testing.T) {
	tmp := t.TempDir()
	blocker := filepath.Join(tmp, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o660))

	err := EnsureFileDir(filepath.Join(blocker, "prefs.db"))
	require.Error(t, err)
}

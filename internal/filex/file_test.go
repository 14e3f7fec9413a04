package filex

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
)

func stubConfigDir(t *testing.T, dir string, err error) {
	t.Helper()
	orig := userConfigDir
	userConfigDir = func() (string, error) { return dir, err }
	t.Cleanup(func() { userConfigDir = orig })
}

func TestEnsureDir_CreatesNestedDirectory(t *testing.T) {
	tmp := t.TempDir()
	want := filepath.Join(tmp, "a", "b")

	got, err := EnsureDir(want)
	require.NoError(t, err)
	require.Equal(t, want, got)

	fi, err := os.Stat(want)
	require.NoError(t, err)
	require.True(t, fi.IsDir())

	if runtime.GOOS != "windows" {
		require.Equal(t, os.FileMode(0o700), fi.Mode().Perm())
	}
}

func TestEnsureDir_Idempotent(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "x")

	_, err := EnsureDir(dir)
	require.NoError(t, err)
	_, err = EnsureDir(dir)
	require.NoError(t, err)
}

func TestEnsureDir_FailsWhenPathIsFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o600))

	_, err := EnsureDir(filepath.Join(file, "sub"))
	require.Error(t, err)
}

func TestDataFile_UnderAppDir(t *testing.T) {
	tmp := t.TempDir()
	stubConfigDir(t, tmp, nil)

	got, err := DataFile("session.db")
	require.NoError(t, err)
	require.Equal(t, filepath.Join(tmp, AppDirName, "session.db"), got)

	fi, err := os.Stat(filepath.Join(tmp, AppDirName))
	require.NoError(t, err)
	require.True(t, fi.IsDir())
}

func TestDataFile_ConfigDirError(t *testing.T) {
	stubConfigDir(t, "", errors.New("no home"))

	_, err := DataFile("session.db")
	require.ErrorContains(t, err, "user config dir")
}

func TestEnsureParent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deep", "dir", "session.bolt")
	require.NoError(t, EnsureParent(path))

	fi, err := os.Stat(filepath.Dir(path))
	require.NoError(t, err)
	require.True(t, fi.IsDir())
}

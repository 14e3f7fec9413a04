// Package filex holds filesystem helpers for locating client data files.
package filex

import (
	"fmt"
	"os"
	"path/filepath"
)

// AppDirName is the directory created under the user's config dir.
const AppDirName = "founderhub"

// userConfigDir is a test seam for os.UserConfigDir.
var userConfigDir = os.UserConfigDir

// EnsureDir creates dir (and parents) with owner-only permissions and returns
// its absolute path.
func EnsureDir(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("abs %s: %w", dir, err)
	}
	if err := os.MkdirAll(abs, 0o700); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", abs, err)
	}
	return abs, nil
}

// DataFile returns <user config dir>/founderhub/<name>, creating the directory
// when needed.
func DataFile(name string) (string, error) {
	base, err := userConfigDir()
	if err != nil {
		return "", fmt.Errorf("user config dir: %w", err)
	}
	dir, err := EnsureDir(filepath.Join(base, AppDirName))
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, name), nil
}

// EnsureParent creates the parent directory of path.
func EnsureParent(path string) error {
	_, err := EnsureDir(filepath.Dir(path))
	return err
}

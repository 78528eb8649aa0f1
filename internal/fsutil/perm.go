package fsutil

import (
	"fmt"
	"os"
	"path/filepath"
)

// DefaultFileMode is used for output files that do not exist yet.
const DefaultFileMode os.FileMode = 0o644

// FileMode returns the permission bits of the file at path, or
// DefaultFileMode if there is no such file. Rewriting an output keeps the mode
// the user gave it.
func FileMode(path string) (os.FileMode, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultFileMode, nil
		}
		return 0, fmt.Errorf("stat file: %w", err)
	}
	if info.IsDir() {
		return 0, fmt.Errorf("%s is a directory", path)
	}
	return info.Mode().Perm(), nil
}

// EnsureParentDirectory checks that the directory that will hold path exists.
func EnsureParentDirectory(path string) error {
	dir := filepath.Dir(path)
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("stat directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", dir)
	}
	return nil
}

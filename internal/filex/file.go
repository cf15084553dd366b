// Package filex contains small filesystem helpers shared by components that
// keep their state on disk.
package filex

import (
	"fmt"
	"os"
	"path/filepath"
)

// EnsureDir makes sure the directory at path exists, creating it (and any
// parents) if needed, and returns its absolute path. Relative paths are
// resolved against the current working directory.
func EnsureDir(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", path, err)
	}

	if err := os.MkdirAll(abs, 0o770); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", abs, err)
	}

	return abs, nil
}

package fileutil

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
)

// WriteIfChangedTracked writes data to path unless the file already holds the
// same bytes. It reports whether a write happened.
func WriteIfChangedTracked(path string, data []byte) (bool, error) {
	existing, err := os.ReadFile(path)
	if err == nil && bytes.Equal(existing, data) {
		return false, nil
	}
	if err != nil && !os.IsNotExist(err) {
		return false, err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return false, err
	}
	return true, nil
}

// WriteFileAll creates the parent directory of path when needed and
// overwrites path with data.
func WriteFileAll(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create %s: %w", dir, err)
		}
	}
	return os.WriteFile(path, data, 0644)
}

package util

import (
	"fmt"
	"os"
	"path/filepath"
)

// ValidateSnapshotPath validates and cleans a snapshot file path
// Returns the cleaned absolute path or an error
func ValidateSnapshotPath(path string) (string, error) {
	path = filepath.Clean(path)

	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("cannot access path '%s': %w", path, err)
	}

	if info.IsDir() {
		return "", fmt.Errorf("path '%s' is a directory, expected a snapshot file", path)
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return path, nil
	}

	return absPath, nil
}

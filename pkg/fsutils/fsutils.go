package fsutils

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// CreateDir creates a directory (and any parents) if it doesn't exist.
func CreateDir(path string) error {
	return os.MkdirAll(path, 0755) // Use standard permission bits
}

// FileExists checks if a path exists and is a regular file (not a directory).
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		// NotExist or any other stat failure: treat the file as unusable.
		return false
	}
	return !info.IsDir()
}

// WriteFileAtomic writes content to a uniquely named temporary file in the
// same directory and then renames it over the target path. The rename is
// atomic on POSIX filesystems, so readers never observe a partially
// written file.
func WriteFileAtomic(path string, content []byte) error {
	dir := filepath.Dir(path)
	tmpPath := filepath.Join(dir, fmt.Sprintf(".%s.%s.tmp", filepath.Base(path), uuid.New().String()))

	if err := os.WriteFile(tmpPath, content, 0644); err != nil {
		return fmt.Errorf("failed to write temporary file %s: %w", tmpPath, err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		// Best effort: don't leave the temp file behind.
		os.Remove(tmpPath)
		return fmt.Errorf("failed to rename %s to %s: %w", tmpPath, path, err)
	}
	return nil
}

// =============================================================================
// QMS Defect Extractor - File Utilities
// =============================================================================
//
// This module provides the small set of file operations the extractor needs:
//   - Output directory creation
//   - Existence checks for optional inputs (config file)
//   - Scoped output file handling
//
// =============================================================================

package utils

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// =============================================================================
// DIRECTORY MANAGEMENT
// =============================================================================

// EnsureParentDirs creates the parent directory of every path.
//
// RETURNS:
//   - An error if any directory cannot be created.
func EnsureParentDirs(paths ...string) error {
	for _, p := range paths {
		dir := filepath.Dir(p)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return nil
}

// =============================================================================
// FILE OPERATIONS
// =============================================================================

// FileExists checks if a file exists.
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return !errors.Is(err, fs.ErrNotExist)
}

// WithFile creates (or truncates) path, passes it to write, and closes it
// whether or not write succeeds. A close error is reported only when write
// succeeded.
func WithFile(path string, write func(f *os.File) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close %s: %w", path, cerr)
		}
	}()

	return write(f)
}

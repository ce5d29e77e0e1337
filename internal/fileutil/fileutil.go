// Package fileutil provides file and path utility functions for site output.
package fileutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/natefinch/atomic"
	cp "github.com/otiai10/copy"
)

// Permissions of generated files and directories.
const (
	FilePerm os.FileMode = 0o644
	DirPerm  os.FileMode = 0o755
)

// Sentinel errors for file utility operations.
var (
	ErrWriteFile = errors.New("failed to write file")
	ErrCopy      = errors.New("failed to copy")
	ErrNotDir    = errors.New("not a directory")
)

// WriteFile atomically replaces path with content and sets FilePerm.
// Readers never observe a partially written file.
func WriteFile(path, content string) error {
	if err := atomic.WriteFile(path, strings.NewReader(content)); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrWriteFile, path, err)
	}

	// atomic.WriteFile keeps the temp file mode for new files.
	if err := os.Chmod(path, FilePerm); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrWriteFile, path, err)
	}
	return nil
}

// EnsureDir creates dir and its parents. An existing file at dir is an error.
func EnsureDir(dir string) error {
	info, err := os.Stat(dir)
	if err == nil {
		if !info.IsDir() {
			return fmt.Errorf("%w: %s", ErrNotDir, dir)
		}
		return nil
	}
	if err := os.MkdirAll(dir, DirPerm); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}
	return nil
}

// Copy copies a file or a whole directory tree byte for byte.
func Copy(src, dst string) error {
	if err := cp.Copy(src, dst); err != nil {
		return fmt.Errorf("%w: %s -> %s: %v", ErrCopy, src, dst, err)
	}
	return nil
}

// IsHidden reports whether a directory entry name is hidden (".obsidian", ".git").
func IsHidden(name string) bool {
	return strings.HasPrefix(name, ".")
}

// Stem returns the file name without directory and extension.
func Stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// SameDir reports whether a and b resolve to the same directory.
func SameDir(a, b string) bool {
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	if errA != nil || errB != nil {
		return false
	}
	return filepath.Clean(absA) == filepath.Clean(absB)
}

package assets

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// IsFilePath reports whether ref names a file rather than an asset name:
// it contains a path separator or ends in ext.
func IsFilePath(ref, ext string) bool {
	return strings.ContainsAny(ref, `/\`) || strings.EqualFold(filepath.Ext(ref), ext)
}

// ReadFile reads an asset of kind given by explicit path, such as a
// template passed on the command line.
func ReadFile(path string, kind Kind) (string, error) {
	f, err := os.Open(path) // #nosec G304 -- user-provided asset path
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: %s", kind.NotFound(), path)
		}
		return "", fmt.Errorf("%w: %v", ErrAssetRead, err)
	}
	defer func() { _ = f.Close() }()

	info, err := f.Stat()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrAssetRead, err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("%w: %s is a directory", ErrAssetRead, path)
	}
	return readLimited(f, path)
}

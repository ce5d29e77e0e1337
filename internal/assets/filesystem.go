package assets

import (
	"fmt"
	"os"
	"path/filepath"
)

// DirLoader serves assets from a directory on disk. Every access goes through
// an os.Root, so paths that escape the directory, symlinks included, fail.
type DirLoader struct {
	dir string
}

// NewDirLoader creates a DirLoader for dir, which must be a readable
// directory.
func NewDirLoader(dir string) (*DirLoader, error) {
	if dir == "" {
		return nil, fmt.Errorf("%w: empty path", ErrInvalidBasePath)
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBasePath, err)
	}

	root, err := os.OpenRoot(abs)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBasePath, err)
	}
	_ = root.Close()

	return &DirLoader{dir: abs}, nil
}

// Dir returns the absolute asset directory.
func (d *DirLoader) Dir() string {
	return d.dir
}

// Load reads {dir}/{kind dir}/{name}{ext}.
func (d *DirLoader) Load(kind Kind, name string) (string, error) {
	var content string
	err := d.withRoot(func(root *os.Root) error {
		var err error
		content, err = load(root.FS(), kind, name)
		return err
	})
	return content, err
}

// Names lists the assets of kind found in the directory.
func (d *DirLoader) Names(kind Kind) ([]string, error) {
	var out []string
	err := d.withRoot(func(root *os.Root) error {
		var err error
		out, err = names(root.FS(), kind)
		return err
	})
	return out, err
}

// withRoot opens the directory as an os.Root for the duration of fn.
func (d *DirLoader) withRoot(fn func(*os.Root) error) error {
	root, err := os.OpenRoot(d.dir)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrAssetRead, err)
	}
	defer func() { _ = root.Close() }()
	return fn(root)
}

var _ Loader = (*DirLoader)(nil)

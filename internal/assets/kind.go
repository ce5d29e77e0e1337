package assets

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"slices"
	"strings"
)

// Kind is a category of site asset.
type Kind int

const (
	// Style is a CSS stylesheet under styles/.
	Style Kind = iota
	// Template is an html/template page layout under templates/.
	Template
)

// Built-in asset names.
const (
	DefaultStyleName    = "default"
	DefaultTemplateName = "page"
)

// MaxAssetSize bounds every template and stylesheet read.
const MaxAssetSize = 4 << 20

func (k Kind) String() string {
	if k == Template {
		return "template"
	}
	return "style"
}

func (k Kind) dir() string {
	if k == Template {
		return "templates"
	}
	return "styles"
}

// Ext returns the file extension of the kind, with the dot.
func (k Kind) Ext() string {
	if k == Template {
		return ".html"
	}
	return ".css"
}

// NotFound returns the sentinel reported when an asset of this kind is missing.
func (k Kind) NotFound() error {
	if k == Template {
		return ErrTemplateNotFound
	}
	return ErrStyleNotFound
}

// Loader loads assets by kind and name. Names carry no extension.
type Loader interface {
	Load(kind Kind, name string) (string, error)
	Names(kind Kind) ([]string, error)
}

// checkName rejects names that could leave the kind's directory or change
// the extension.
func checkName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidAssetName)
	}
	if strings.ContainsAny(name, `/\.`) {
		return fmt.Errorf("%w: %q", ErrInvalidAssetName, name)
	}
	return nil
}

// load reads {dir}/{name}{ext} from fsys.
func load(fsys fs.FS, kind Kind, name string) (string, error) {
	if err := checkName(name); err != nil {
		return "", err
	}

	f, err := fsys.Open(kind.dir() + "/" + name + kind.Ext())
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %q", kind.NotFound(), name)
		}
		return "", fmt.Errorf("%w: %v", ErrAssetRead, err)
	}
	defer func() { _ = f.Close() }()

	return readLimited(f, name)
}

// names lists the asset names of kind in fsys, sorted. A missing directory
// holds no assets.
func names(fsys fs.FS, kind Kind) ([]string, error) {
	entries, err := fs.ReadDir(fsys, kind.dir())
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: %v", ErrAssetRead, err)
	}

	var out []string
	for _, e := range entries {
		name, ok := strings.CutSuffix(e.Name(), kind.Ext())
		if ok && !e.IsDir() && checkName(name) == nil {
			out = append(out, name)
		}
	}
	slices.Sort(out)
	return out, nil
}

// readLimited reads r, failing when it holds more than MaxAssetSize bytes.
func readLimited(r io.Reader, label string) (string, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxAssetSize+1))
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrAssetRead, label, err)
	}
	if len(data) > MaxAssetSize {
		return "", fmt.Errorf("%w: %s (max %d bytes)", ErrAssetTooLarge, label, MaxAssetSize)
	}
	return string(data), nil
}

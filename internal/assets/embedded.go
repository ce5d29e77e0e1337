package assets

import (
	"embed"
	"io/fs"
)

//go:embed styles/*.css templates/*.html
var builtin embed.FS

// EmbeddedLoader serves the assets compiled into the binary.
type EmbeddedLoader struct {
	fsys fs.FS
}

// NewEmbeddedLoader creates an EmbeddedLoader.
func NewEmbeddedLoader() *EmbeddedLoader {
	return &EmbeddedLoader{fsys: builtin}
}

// Load returns a built-in asset.
func (e *EmbeddedLoader) Load(kind Kind, name string) (string, error) {
	return load(e.fsys, kind, name)
}

// Names lists the built-in assets of kind.
func (e *EmbeddedLoader) Names(kind Kind) ([]string, error) {
	return names(e.fsys, kind)
}

var _ Loader = (*EmbeddedLoader)(nil)

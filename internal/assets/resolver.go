package assets

import (
	"errors"
	"slices"
)

// Resolver looks assets up in an optional custom directory first and in the
// built-in assets second.
type Resolver struct {
	custom   *DirLoader // nil without a custom directory
	embedded *EmbeddedLoader
}

// NewResolver creates a Resolver. An empty customDir uses the built-in
// assets only; otherwise customDir must be a readable directory.
func NewResolver(customDir string) (*Resolver, error) {
	r := &Resolver{embedded: NewEmbeddedLoader()}
	if customDir != "" {
		dl, err := NewDirLoader(customDir)
		if err != nil {
			return nil, err
		}
		r.custom = dl
	}
	return r, nil
}

// HasCustomDir reports whether a custom asset directory is configured.
func (r *Resolver) HasCustomDir() bool {
	return r.custom != nil
}

// Load returns the named asset. Only a missing custom asset falls back to
// the built-in one; invalid names and read errors are returned as is.
func (r *Resolver) Load(kind Kind, name string) (string, error) {
	if r.custom == nil {
		return r.embedded.Load(kind, name)
	}

	content, err := r.custom.Load(kind, name)
	if err == nil || !errors.Is(err, kind.NotFound()) {
		return content, err
	}
	return r.embedded.Load(kind, name)
}

// Resolve loads an asset given by name, or by file path when ref contains a
// separator or ends in the kind's extension.
func (r *Resolver) Resolve(kind Kind, ref string) (string, error) {
	if IsFilePath(ref, kind.Ext()) {
		return ReadFile(ref, kind)
	}
	return r.Load(kind, ref)
}

// Names lists every asset name of kind, custom and built-in, sorted and
// without duplicates.
func (r *Resolver) Names(kind Kind) ([]string, error) {
	out, err := r.embedded.Names(kind)
	if err != nil {
		return nil, err
	}
	if r.custom != nil {
		custom, err := r.custom.Names(kind)
		if err != nil {
			return nil, err
		}
		out = append(out, custom...)
	}
	slices.Sort(out)
	return slices.Compact(out), nil
}

var _ Loader = (*Resolver)(nil)

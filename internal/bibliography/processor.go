package bibliography

import (
	"fmt"
	"log/slog"
)

// Processor resolves citation keys against a library and formats them with
// a style. It satisfies the Citer contract of the rewrite pipeline.
type Processor struct {
	library *Library
	style   *Style
}

// NewProcessor creates a Processor. A nil style selects DefaultStyle.
func NewProcessor(library *Library, style *Style) *Processor {
	if style == nil {
		style = DefaultStyle()
	}
	return &Processor{library: library, style: style}
}

// Cite renders the citation for key. Unknown keys return ErrUnknownKey.
func (p *Processor) Cite(key, locator string) (string, error) {
	entry, ok := p.library.Lookup(key)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownKey, key)
	}
	return p.style.Render(entry, locator)
}

// Load builds a Processor from a bibliography file and an optional style path.
func Load(bibliographyPath, stylePath string, logger *slog.Logger) (*Processor, error) {
	lib, err := LoadLibrary(bibliographyPath, logger)
	if err != nil {
		return nil, err
	}
	style, err := LoadStyle(stylePath)
	if err != nil {
		return nil, err
	}
	return NewProcessor(lib, style), nil
}

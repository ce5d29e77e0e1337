package bibliography

import "errors"

// Sentinel errors for bibliography operations.
var (
	// ErrUnsupportedFormat indicates a bibliography file extension that is not
	// .bib, .json, .yaml or .yml.
	ErrUnsupportedFormat = errors.New("unsupported bibliography format")

	// ErrBibliographyRead indicates the bibliography file could not be read.
	ErrBibliographyRead = errors.New("failed to read bibliography")

	// ErrBibliographyParse indicates the bibliography file is malformed.
	ErrBibliographyParse = errors.New("failed to parse bibliography")

	// ErrUnknownKey indicates a citation key absent from the library.
	ErrUnknownKey = errors.New("unknown citation key")

	// ErrStyleParse indicates an invalid style definition.
	ErrStyleParse = errors.New("failed to parse citation style")

	// ErrStyleRender indicates the style template failed on an entry.
	ErrStyleRender = errors.New("failed to render citation")
)

package notesite

import (
	"errors"

	"github.com/alnah/go-notesite/internal/assets"
	"github.com/alnah/go-notesite/internal/bibliography"
	"github.com/alnah/go-notesite/internal/pipeline"
)

// Sentinel errors for site generation.
var (
	// Input and output directories.
	ErrInputNotFound = errors.New("input directory not found")
	ErrInputNotDir   = errors.New("input is not a directory")
	ErrSameDirectory = errors.New("input and output directories are the same")
	ErrOutputDir     = errors.New("cannot create output directory")

	// Per-note failures. They abort the build.
	ErrNoteRead   = errors.New("failed to read note")
	ErrNoteRender = errors.New("failed to render note")
	ErrPageWrite  = errors.New("failed to write page")
	ErrAssetCopy  = errors.New("failed to copy static asset")

	// Option validation errors.
	ErrInvalidTitlePolicy = errors.New("invalid title policy")
	ErrInvalidLanguage    = errors.New("invalid language tag")
	ErrInvalidTOCDepth    = errors.New("invalid TOC depth")
	ErrInvalidDate        = errors.New("invalid date")
	ErrInvalidAssetPath   = errors.New("invalid asset path")
	ErrBibliography       = errors.New("cannot load bibliography")

	// Re-exported from internal packages so callers can match them.
	ErrInvalidLinkConvention = pipeline.ErrInvalidLinkConvention
	ErrTemplateParse         = pipeline.ErrTemplateParse
	ErrTemplateRender        = pipeline.ErrTemplateRender
	ErrStyleNotFound         = assets.ErrStyleNotFound
	ErrTemplateNotFound      = assets.ErrTemplateNotFound
	ErrUnknownCitationKey    = bibliography.ErrUnknownKey
)

package main

import (
	"errors"
	"os"

	notesite "github.com/alnah/go-notesite"
	"github.com/alnah/go-notesite/internal/config"
)

// Exit codes for the notesite CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Site generated
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // Missing input, permission denied, write failure
	ExitNote    = 4 // A note or page could not be rendered
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Note processing errors (exit 4)
	if errors.Is(err, notesite.ErrNoteRender) ||
		errors.Is(err, notesite.ErrTemplateRender) {
		return ExitNote
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, notesite.ErrInputNotFound) ||
		errors.Is(err, notesite.ErrInputNotDir) ||
		errors.Is(err, notesite.ErrOutputDir) ||
		errors.Is(err, notesite.ErrNoteRead) ||
		errors.Is(err, notesite.ErrPageWrite) ||
		errors.Is(err, notesite.ErrAssetCopy) ||
		errors.Is(err, ErrNoInput) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrConfigInvalid) ||
		errors.Is(err, notesite.ErrSameDirectory) ||
		errors.Is(err, notesite.ErrInvalidTitlePolicy) ||
		errors.Is(err, notesite.ErrInvalidLanguage) ||
		errors.Is(err, notesite.ErrInvalidLinkConvention) ||
		errors.Is(err, notesite.ErrInvalidTOCDepth) ||
		errors.Is(err, notesite.ErrInvalidDate) ||
		errors.Is(err, notesite.ErrInvalidAssetPath) ||
		errors.Is(err, notesite.ErrTemplateNotFound) ||
		errors.Is(err, notesite.ErrTemplateParse) ||
		errors.Is(err, notesite.ErrStyleNotFound) ||
		errors.Is(err, notesite.ErrBibliography) ||
		errors.Is(err, ErrUsage) ||
		errors.Is(err, ErrEnvFile) ||
		errors.Is(err, ErrUnsupportedShell) {
		return ExitUsage
	}

	return ExitGeneral
}

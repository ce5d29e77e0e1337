// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"strings"
)

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config and creating a config in ~/.config/go-notesite/.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(p, "go-notesite") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForInputDirectory returns hints when the notes directory is missing.
func ForInputDirectory() string {
	return format("pass the notes directory as argument or set input.defaultDir in the config")
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForSameDirectory returns hints when input and output directories coincide.
func ForSameDirectory() string {
	return format("choose a separate output directory with -o")
}

// ForTemplateNotFound returns hints for page template not found errors.
func ForTemplateNotFound() string {
	return format("use a template name from assets.basePath/templates or an .html file path")
}

// ForBibliography returns hints for bibliography loading errors.
func ForBibliography() string {
	return format("supported formats: BibTeX (.bib), CSL JSON (.json), CSL YAML (.yaml, .yml)")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

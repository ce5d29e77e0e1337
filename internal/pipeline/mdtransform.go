package pipeline

import (
	"context"
	"regexp"
	"strings"
)

// Highlight placeholders use Unicode Private Use Area characters.
// They pass through Goldmark unchanged and are converted to <mark> tags
// after HTML generation.
const (
	MarkStartPlaceholder = "\uE000" // U+E000: Private Use Area start
	MarkEndPlaceholder   = "\uE001" // U+E001: Private Use Area end
)

// Precompiled regex patterns for performance.
var (
	// Line ending normalization
	crlfOrCR = regexp.MustCompile(`\r\n?`)

	// Compress multiple blank lines to max 2
	multipleBlankLines = regexp.MustCompile(`\n{3,}`)

	// Highlight syntax ==text==, never spanning lines so setext "===" survives
	highlightPattern = regexp.MustCompile(`==([^=\n]+)==`)

	// Obsidian comments %%hidden%%, possibly multi-line
	commentPattern = regexp.MustCompile(`(?s)%%.*?%%`)
)

// MarkdownPreprocessor defines the contract for markdown preprocessing.
type MarkdownPreprocessor interface {
	PreprocessMarkdown(ctx context.Context, content string) string
}

// ObsidianPreprocessor normalizes Obsidian-flavoured Markdown before the
// rewrite passes run.
type ObsidianPreprocessor struct{}

// PreprocessMarkdown applies all transformations. Order matters: line endings
// first so later patterns only ever see "\n".
func (p *ObsidianPreprocessor) PreprocessMarkdown(ctx context.Context, content string) string {
	if ctx.Err() != nil {
		return content
	}

	content = normalizeLineEndings(content)
	content = outsideFences(content, stripComments)
	content = outsideFences(content, convertHighlights)
	content = compressBlankLines(content)
	return content
}

// normalizeLineEndings converts \r\n and \r to \n.
func normalizeLineEndings(content string) string {
	return crlfOrCR.ReplaceAllString(content, "\n")
}

// compressBlankLines limits consecutive blank lines to 2 maximum.
func compressBlankLines(content string) string {
	return multipleBlankLines.ReplaceAllString(content, "\n\n")
}

// stripComments removes %%comment%% blocks.
func stripComments(content string) string {
	return commentPattern.ReplaceAllString(content, "")
}

// convertHighlights transforms ==text== to placeholder markers.
func convertHighlights(content string) string {
	return highlightPattern.ReplaceAllString(content, MarkStartPlaceholder+"$1"+MarkEndPlaceholder)
}

// outsideFences applies fn to every stretch of content that is not inside a
// fenced code block.
func outsideFences(content string, fn func(string) string) string {
	fences := fencedRegions(content)
	if len(fences) == 0 {
		return fn(content)
	}

	var b strings.Builder
	b.Grow(len(content))

	last := 0
	for _, r := range fences {
		b.WriteString(fn(content[last:r.start]))
		b.WriteString(content[r.start:r.end])
		last = r.end
	}
	b.WriteString(fn(content[last:]))
	return b.String()
}

// ConvertMarkPlaceholders converts placeholder markers to <mark> tags.
// Called after Goldmark HTML conversion to finalize highlight markup.
func ConvertMarkPlaceholders(content string) string {
	return strings.ReplaceAll(
		strings.ReplaceAll(content, MarkStartPlaceholder, "<mark>"),
		MarkEndPlaceholder, "</mark>",
	)
}

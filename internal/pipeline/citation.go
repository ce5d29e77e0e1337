package pipeline

import (
	"context"
	"log/slog"
	"regexp"
	"strconv"
	"strings"
)

// Citation placeholders use Private Use Area characters, like the highlight
// placeholders, so they cannot collide with literal text such as "[0]".
const (
	citeStartPlaceholder = "\uE002" // U+E002: Private Use Area
	citeEndPlaceholder   = "\uE003" // U+E003: Private Use Area
)

// citationPattern matches [@key] and [@key, p. N].
// Captures: 1=key, 2=page locator.
var citationPattern = regexp.MustCompile(`\[@([^\]]+?)(?:, p\. (\d+))?\]`)

// Citer renders one citation. Implementations return an error for keys
// missing from their bibliography.
type Citer interface {
	Cite(key, locator string) (string, error)
}

// CitationMarker is one citation found in a text.
type CitationMarker struct {
	Key      string
	Locator  string // page number, empty when absent
	Ordinal  int    // 0-based position in scan order
	Original string
	Start    int
	End      int
}

// placeholder returns the sentinel standing in for the marker between phases.
func (c CitationMarker) placeholder() string {
	return citeStartPlaceholder + strconv.Itoa(c.Ordinal) + citeEndPlaceholder
}

// FindCitations scans text left to right and assigns ordinals.
// Markers inside fenced code blocks and inline code spans are skipped.
func FindCitations(text string) []CitationMarker {
	code := codeRegions(text)

	var markers []CitationMarker
	for _, loc := range citationPattern.FindAllStringSubmatchIndex(text, -1) {
		if inRegions(loc[0], code) {
			continue
		}
		m := CitationMarker{
			Key:      strings.TrimSpace(text[loc[2]:loc[3]]),
			Ordinal:  len(markers),
			Original: text[loc[0]:loc[1]],
			Start:    loc[0],
			End:      loc[1],
		}
		if loc[4] >= 0 {
			m.Locator = text[loc[4]:loc[5]]
		}
		markers = append(markers, m)
	}
	return markers
}

// CitationRewriter replaces citation markers with rendered citations.
type CitationRewriter struct {
	citer  Citer
	logger *slog.Logger
}

// NewCitationRewriter creates a rewriter. A nil logger discards output.
func NewCitationRewriter(citer Citer, logger *slog.Logger) *CitationRewriter {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &CitationRewriter{citer: citer, logger: logger}
}

// Rewrite resolves every citation marker in two phases: markers are first
// swapped for ordinal sentinels, then each sentinel is replaced with its
// rendered citation. Unknown keys are logged, reported as diagnostics and
// keep their original marker text.
func (r *CitationRewriter) Rewrite(ctx context.Context, text string) (string, []Diagnostic, error) {
	markers := FindCitations(text)
	if len(markers) == 0 {
		return text, nil, nil
	}

	spans := make([]span, len(markers))
	for i, m := range markers {
		spans[i] = span{start: m.Start, end: m.End, replacement: m.placeholder()}
	}
	placeholders := splice(text, spans)

	var diags []Diagnostic
	replacements := make([]string, 0, 2*len(markers))
	for _, m := range markers {
		if err := ctx.Err(); err != nil {
			return "", nil, err
		}

		rendered, err := r.citer.Cite(m.Key, m.Locator)
		if err != nil {
			r.logger.Warn("unresolved citation", "key", m.Key, "line", lineAt(text, m.Start), "error", err)
			diags = append(diags, Diagnostic{
				Kind:    DiagUnresolvedCitation,
				Line:    lineAt(text, m.Start),
				Text:    m.Original,
				Message: err.Error(),
			})
			rendered = m.Original
		}
		replacements = append(replacements, m.placeholder(), rendered)
	}

	return strings.NewReplacer(replacements...).Replace(placeholders), diags, nil
}

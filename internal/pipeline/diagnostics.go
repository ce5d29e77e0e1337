package pipeline

import "fmt"

// DiagnosticKind classifies a lenient-parsing finding.
type DiagnosticKind int

const (
	// DiagUnclosedWikilink reports a "[[" that never closes on the same line.
	DiagUnclosedWikilink DiagnosticKind = iota + 1
	// DiagEmptyWikilink reports a wiki-link or embed without a target.
	DiagEmptyWikilink
	// DiagUnresolvedCitation reports a citation key the Citer could not render.
	DiagUnresolvedCitation
)

// String returns a short, stable name for the kind.
func (k DiagnosticKind) String() string {
	switch k {
	case DiagUnclosedWikilink:
		return "unclosed-wikilink"
	case DiagEmptyWikilink:
		return "empty-wikilink"
	case DiagUnresolvedCitation:
		return "unresolved-citation"
	}
	return fmt.Sprintf("diagnostic(%d)", int(k))
}

// Diagnostic is a non-fatal finding produced by a rewrite pass.
// The offending text is always left unchanged in the output.
type Diagnostic struct {
	Kind    DiagnosticKind
	Line    int    // 1-based line in the text handed to the pass
	Text    string // offending source text
	Message string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("line %d: %s: %s (%q)", d.Line, d.Kind, d.Message, d.Text)
}

// CountKind returns how many diagnostics are of the given kind.
func CountKind(diags []Diagnostic, kind DiagnosticKind) int {
	n := 0
	for _, d := range diags {
		if d.Kind == kind {
			n++
		}
	}
	return n
}

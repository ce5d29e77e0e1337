package pipeline

import (
	"regexp"
	"strings"
)

// CalloutKind is the closed set of callout classes a blockquote line maps to.
type CalloutKind int

const (
	// CalloutNone marks a line that is not a blockquote.
	CalloutNone CalloutKind = iota
	CalloutNote
	CalloutQuestion
	CalloutInfo
	CalloutWarning
	// CalloutBlockquote is a blockquote line without a marker.
	CalloutBlockquote
)

// Class returns the CSS class token emitted for the kind.
// The unmarked case emits "blockquote", not "note".
func (k CalloutKind) Class() string {
	switch k {
	case CalloutNote:
		return "note"
	case CalloutQuestion:
		return "question"
	case CalloutInfo:
		return "info"
	case CalloutWarning:
		return "warning"
	case CalloutBlockquote:
		return "blockquote"
	case CalloutNone:
		return ""
	}
	return ""
}

func (k CalloutKind) String() string {
	if k == CalloutNone {
		return "none"
	}
	return k.Class()
}

var (
	// Blockquote line with an optional one-character marker: "> [!] text".
	// Captures: 1=marker, 2=content.
	calloutPattern = regexp.MustCompile(`^\s*>\s*(?:\[\s*(!|\?|i|x)\s*\])?\s*(.*)$`)

	// Obsidian named marker: "> [!warning] text".
	// Captures: 1=name, 2=content.
	namedCalloutPattern = regexp.MustCompile(`(?i)^\s*>\s*\[!(note|question|info|warning)\]\s*(.*)$`)
)

// calloutMarkers maps one-character markers to kinds.
var calloutMarkers = map[string]CalloutKind{
	"!": CalloutNote,
	"?": CalloutQuestion,
	"i": CalloutInfo,
	"x": CalloutWarning,
}

// calloutNames maps Obsidian marker names to kinds.
var calloutNames = map[string]CalloutKind{
	"note":     CalloutNote,
	"question": CalloutQuestion,
	"info":     CalloutInfo,
	"warning":  CalloutWarning,
}

// CalloutMatch is the classification of a single line.
type CalloutMatch struct {
	Kind    CalloutKind
	Content string
}

// ClassifyLine classifies one line. Lines without a leading ">" yield CalloutNone.
func ClassifyLine(line string) CalloutMatch {
	if m := namedCalloutPattern.FindStringSubmatch(line); m != nil {
		return CalloutMatch{Kind: calloutNames[strings.ToLower(m[1])], Content: m[2]}
	}

	m := calloutPattern.FindStringSubmatch(line)
	if m == nil {
		return CalloutMatch{Kind: CalloutNone}
	}
	if m[1] == "" {
		return CalloutMatch{Kind: CalloutBlockquote, Content: m[2]}
	}
	return CalloutMatch{Kind: calloutMarkers[m[1]], Content: m[2]}
}

// HTML renders the callout block. Content is emitted raw so inline Markdown
// and HTML keep working.
func (c CalloutMatch) HTML() string {
	return `<div class="callout ` + c.Kind.Class() + `"><p>` + c.Content + `</p></div>`
}

// RewriteCallouts rewrites every blockquote line into a callout block.
// Each line is handled independently: a three-line blockquote yields three
// blocks. Lines inside fenced code blocks are left unchanged.
func RewriteCallouts(text string) string {
	lines := strings.Split(text, "\n")

	inCodeBlock := false
	for i, line := range lines {
		if fencedCodeBlock.MatchString(line) {
			inCodeBlock = !inCodeBlock
			continue
		}
		if inCodeBlock {
			continue
		}

		match := ClassifyLine(line)
		if match.Kind == CalloutNone {
			continue
		}
		lines[i] = match.HTML()
	}

	return strings.Join(lines, "\n")
}

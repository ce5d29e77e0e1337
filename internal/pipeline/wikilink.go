package pipeline

import (
	"errors"
	"fmt"
	"html"
	"net/url"
	"regexp"
	"strings"
)

// ErrInvalidLinkConvention indicates an unknown wiki-link convention name.
var ErrInvalidLinkConvention = errors.New("invalid link convention")

// LinkConvention selects which side of "|" holds the link target.
type LinkConvention int

const (
	// AliasTarget reads [[alias|target]].
	AliasTarget LinkConvention = iota
	// TargetAlias reads [[target|alias]], as Obsidian writes them.
	TargetAlias
)

// String returns the configuration name of the convention.
func (c LinkConvention) String() string {
	switch c {
	case AliasTarget:
		return "alias-target"
	case TargetAlias:
		return "target-alias"
	}
	return fmt.Sprintf("LinkConvention(%d)", int(c))
}

// ParseLinkConvention parses a configuration name. Empty selects AliasTarget.
func ParseLinkConvention(name string) (LinkConvention, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "alias-target":
		return AliasTarget, nil
	case "target-alias":
		return TargetAlias, nil
	}
	return AliasTarget, fmt.Errorf("%w: %q (want alias-target or target-alias)", ErrInvalidLinkConvention, name)
}

// wikilinkPattern matches [[inner]] and ![[inner]] on a single line.
// Captures: 1=embed marker, 2=inner text.
var wikilinkPattern = regexp.MustCompile(`(!)?\[\[([^\[\]\n]*)\]\]`)

// LinkMatch is one wiki-link or embed found in a text.
type LinkMatch struct {
	Link     string // target note or file, without section
	Alt      string // display alias, empty when absent
	Section  string // heading slug, links only
	IsEmbed  bool
	Original string // exact matched text
	Start    int    // byte offset of Original
	End      int
}

// Href returns the escaped URL the match points at.
func (m LinkMatch) Href() string {
	if m.IsEmbed {
		return escapePath(m.Link)
	}

	href := ""
	if m.Link != "" {
		href = escapePath(m.Link) + ".html"
	}
	if m.Section != "" {
		href += "#" + m.Section
	}
	return href
}

// Text returns the visible text of a link: the alias, else the raw target.
func (m LinkMatch) Text() string {
	if m.Alt != "" {
		return m.Alt
	}
	return m.Link
}

// HTML renders the match as an anchor or an image tag.
func (m LinkMatch) HTML() string {
	if m.IsEmbed {
		return `<img src="` + html.EscapeString(m.Href()) + `" alt="` + html.EscapeString(m.Alt) + `">`
	}
	return `<a href="` + html.EscapeString(m.Href()) + `">` + html.EscapeString(m.Text()) + `</a>`
}

// escapePath percent-encodes a relative URL path ("My Note" -> "My%20Note").
func escapePath(p string) string {
	return (&url.URL{Path: p}).EscapedPath()
}

// FindLinks scans text once and returns every well-formed wiki-link and embed
// in order, with its byte span. Matches inside fenced code blocks and inline
// code spans are skipped. Unclosed "[[" and empty targets are reported as
// diagnostics.
func FindLinks(text string, conv LinkConvention) ([]LinkMatch, []Diagnostic) {
	code := codeRegions(text)

	var (
		matches []LinkMatch
		diags   []Diagnostic
		covered []region
	)
	for _, loc := range wikilinkPattern.FindAllStringSubmatchIndex(text, -1) {
		start, end := loc[0], loc[1]
		if inRegions(start, code) {
			continue
		}
		covered = append(covered, region{start: start, end: end})

		m, ok := parseLink(text[start:end], loc[2] >= 0, text[loc[4]:loc[5]], conv)
		if !ok {
			diags = append(diags, Diagnostic{
				Kind:    DiagEmptyWikilink,
				Line:    lineAt(text, start),
				Text:    text[start:end],
				Message: "wiki-link has no target",
			})
			continue
		}
		m.Start, m.End = start, end
		matches = append(matches, m)
	}

	for pos := 0; ; {
		i := strings.Index(text[pos:], "[[")
		if i < 0 {
			break
		}
		at := pos + i
		pos = at + 2
		// at+1 covers "[[[x]]]", where the match starts on the second bracket.
		if inRegions(at, code) || inRegions(at, covered) || inRegions(at+1, covered) {
			continue
		}
		lineEnd := strings.IndexByte(text[at:], '\n')
		if lineEnd < 0 {
			lineEnd = len(text) - at
		}
		diags = append(diags, Diagnostic{
			Kind:    DiagUnclosedWikilink,
			Line:    lineAt(text, at),
			Text:    text[at : at+lineEnd],
			Message: "unbalanced wiki-link brackets",
		})
	}

	return matches, diags
}

// parseLink splits the inner text of a wiki-link according to the convention.
// It reports false when the target is empty.
func parseLink(original string, embed bool, inner string, conv LinkConvention) (LinkMatch, bool) {
	target, alias := inner, ""
	if left, right, found := strings.Cut(inner, "|"); found {
		// Embeds are always file first: ![[img.png|Caption]].
		if embed || conv == TargetAlias {
			target, alias = left, right
		} else {
			alias, target = left, right
		}
	}
	target = strings.TrimSpace(target)
	alias = strings.TrimSpace(alias)

	m := LinkMatch{Alt: alias, IsEmbed: embed, Original: original}
	if embed {
		m.Link = target
		return m, target != ""
	}

	link, section, _ := strings.Cut(target, "#")
	m.Link = strings.TrimSpace(link)
	if section = strings.TrimSpace(section); section != "" {
		m.Section = HeadingID(section)
		if m.Alt == "" {
			m.Alt = strings.TrimSpace(strings.ReplaceAll(target, "#", " > "))
			if m.Link == "" {
				m.Alt = section
			}
		}
	}
	return m, m.Link != "" || m.Section != ""
}

// ResolveWikilinks replaces every wiki-link and embed with HTML.
// Replacement is by recorded span so each occurrence is rewritten exactly once.
func ResolveWikilinks(text string, conv LinkConvention) (string, []Diagnostic) {
	matches, diags := FindLinks(text, conv)
	if len(matches) == 0 {
		return text, diags
	}

	spans := make([]span, len(matches))
	for i, m := range matches {
		spans[i] = span{start: m.Start, end: m.End, replacement: m.HTML()}
	}
	return splice(text, spans), diags
}

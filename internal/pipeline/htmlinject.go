package pipeline

import (
	"context"
	"html"
	"regexp"
	"strconv"
	"strings"
)

// CSSInjector defines the contract for CSS injection into HTML.
type CSSInjector interface {
	InjectCSS(ctx context.Context, htmlContent, cssContent string) string
}

// CSSInjection injects CSS as a <style> block into a page.
type CSSInjection struct{}

// InjectCSS inserts a <style> block before </head>, else after <body>,
// else at the start of htmlContent.
func (s *CSSInjection) InjectCSS(ctx context.Context, htmlContent, cssContent string) string {
	if cssContent == "" || ctx.Err() != nil {
		return htmlContent
	}

	styleBlock := "<style>" + sanitizeCSS(cssContent) + "</style>"
	lowerHTML := strings.ToLower(htmlContent)

	if idx := strings.Index(lowerHTML, "</head>"); idx != -1 {
		return htmlContent[:idx] + styleBlock + htmlContent[idx:]
	}
	if pos := afterBodyTag(htmlContent, lowerHTML); pos != -1 {
		return htmlContent[:pos] + styleBlock + htmlContent[pos:]
	}
	return styleBlock + htmlContent
}

// sanitizeCSS escapes "</" so the stylesheet cannot close the <style> block.
func sanitizeCSS(css string) string {
	return strings.ReplaceAll(css, "</", `<\/`)
}

// afterBodyTag returns the offset right after the opening <body ...> tag,
// or -1 when there is none.
func afterBodyTag(htmlContent, lowerHTML string) int {
	idx := strings.Index(lowerHTML, "<body")
	if idx == -1 {
		return -1
	}
	closeIdx := strings.Index(htmlContent[idx:], ">")
	if closeIdx == -1 {
		return -1
	}
	return idx + closeIdx + 1
}

// TOCData holds table of contents settings.
type TOCData struct {
	Title    string
	MinDepth int // lowest heading level listed, e.g. 2 skips the page title
	MaxDepth int
}

// TOCInjector defines the contract for TOC injection into HTML.
type TOCInjector interface {
	InjectTOC(ctx context.Context, htmlContent string, data *TOCData) (string, error)
}

// heading is a heading extracted from rendered HTML.
type heading struct {
	Level int
	ID    string
	Text  string
}

// headingPattern matches h1-h6 tags carrying an id attribute.
// Captures: 1=level, 2=id, 3=inner HTML.
var headingPattern = regexp.MustCompile(`(?is)<h([1-6])[^>]*\bid="([^"]*)"[^>]*>(.*?)</h[1-6]>`)

// htmlTagPattern matches HTML tags for stripping from heading text.
var htmlTagPattern = regexp.MustCompile(`<[^>]*>`)

// headingText strips tags and decodes entities so the text is escaped
// exactly once when written into the TOC.
func headingText(inner string) string {
	return strings.TrimSpace(html.UnescapeString(htmlTagPattern.ReplaceAllString(inner, "")))
}

// extractHeadings returns headings whose level lies in [minDepth, maxDepth].
func extractHeadings(htmlContent string, minDepth, maxDepth int) []heading {
	var headings []heading
	for _, m := range headingPattern.FindAllStringSubmatch(htmlContent, -1) {
		level, _ := strconv.Atoi(m[1])
		if level < minDepth || level > maxDepth {
			continue
		}
		headings = append(headings, heading{Level: level, ID: m[2], Text: headingText(m[3])})
	}
	return headings
}

// renderTOC renders headings as nested ordered lists. Levels are relative
// to the first heading and a jump of several levels nests only once.
func renderTOC(headings []heading, title string) string {
	if len(headings) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(`<nav class="toc">`)
	if title != "" {
		b.WriteString(`<h2 class="toc-title">` + html.EscapeString(title) + `</h2>`)
	}

	base := headings[0].Level
	depth := 0
	for i, h := range headings {
		want := max(h.Level-base+1, 1)
		want = min(want, depth+1)

		switch {
		case want > depth:
			b.WriteString("<ol>")
		case i > 0:
			b.WriteString("</li>")
			for ; depth > want; depth-- {
				b.WriteString("</ol></li>")
			}
		}
		depth = want

		b.WriteString(`<li><a href="#` + html.EscapeString(h.ID) + `">` + html.EscapeString(h.Text) + `</a>`)
	}
	b.WriteString("</li>")
	for ; depth > 1; depth-- {
		b.WriteString("</ol></li>")
	}
	b.WriteString("</ol></nav>")
	return b.String()
}

// TOCInjection implements TOCInjector.
type TOCInjection struct{}

// NewTOCInjection creates a new TOC injector.
func NewTOCInjection() *TOCInjection {
	return &TOCInjection{}
}

// InjectTOC builds a TOC from the headings of htmlContent and inserts it after
// <body>, or at the start when htmlContent is a fragment. A nil data or a page
// without matching headings is returned unchanged.
func (t *TOCInjection) InjectTOC(ctx context.Context, htmlContent string, data *TOCData) (string, error) {
	if data == nil {
		return htmlContent, nil
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	toc := renderTOC(extractHeadings(htmlContent, data.MinDepth, data.MaxDepth), data.Title)
	if toc == "" {
		return htmlContent, nil
	}

	if pos := afterBodyTag(htmlContent, strings.ToLower(htmlContent)); pos != -1 {
		return htmlContent[:pos] + toc + htmlContent[pos:], nil
	}
	return toc + htmlContent, nil
}

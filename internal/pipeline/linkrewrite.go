package pipeline

import (
	"path"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// markdownExtensions are the note extensions rewritten to .html.
var markdownExtensions = []string{".md", ".markdown"}

// RewriteMarkdownLinks rewrites relative anchors to notes ("Other.md",
// "sub/Other.md#part") so they point at the generated pages.
// Content mentioning neither extension, in any case, is returned unchanged
// and unparsed.
//
// Does NOT rewrite:
//   - URLs, protocol-relative links and fragments ("#top")
//   - absolute paths
//   - img, video and other non-anchor elements
func RewriteMarkdownLinks(htmlContent string) (string, error) {
	lower := strings.ToLower(htmlContent)
	if !strings.Contains(lower, ".md") && !strings.Contains(lower, ".markdown") {
		return htmlContent, nil
	}

	doc, isFragment, err := parseHTML(htmlContent)
	if err != nil {
		return "", err
	}

	if !rewriteNode(doc) {
		return htmlContent, nil
	}
	return renderHTML(doc, isFragment)
}

// parseHTML parses HTML content, handling both full documents and fragments.
// Returns the parsed node, whether it was a fragment, and any error.
func parseHTML(content string) (*html.Node, bool, error) {
	trimmed := strings.ToLower(strings.TrimSpace(content))

	if strings.HasPrefix(trimmed, "<!doctype") || strings.HasPrefix(trimmed, "<html") {
		doc, err := html.Parse(strings.NewReader(content))
		return doc, false, err
	}

	// Fragment: parse with body context to avoid wrapping
	body := &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Body,
		Data:     "body",
	}
	nodes, err := html.ParseFragment(strings.NewReader(content), body)
	if err != nil {
		return nil, true, err
	}

	container := &html.Node{Type: html.DocumentNode}
	for _, n := range nodes {
		container.AppendChild(n)
	}
	return container, true, nil
}

// renderHTML renders the document back to string.
// For fragments, only renders the children (avoids adding <html><body> wrapper).
func renderHTML(doc *html.Node, isFragment bool) (string, error) {
	var buf strings.Builder

	if isFragment {
		for c := doc.FirstChild; c != nil; c = c.NextSibling {
			if err := html.Render(&buf, c); err != nil {
				return "", err
			}
		}
		return buf.String(), nil
	}

	if err := html.Render(&buf, doc); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// rewriteNode walks the DOM and rewrites anchor targets.
// It reports whether any attribute changed.
func rewriteNode(n *html.Node) bool {
	changed := false
	if n.Type == html.ElementNode && n.DataAtom == atom.A {
		for i, attr := range n.Attr {
			if attr.Key != "href" || !isRelativePath(attr.Val) {
				continue
			}
			if rewritten, ok := noteHref(attr.Val); ok {
				n.Attr[i].Val = rewritten
				changed = true
			}
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if rewriteNode(c) {
			changed = true
		}
	}
	return changed
}

// noteHref swaps a Markdown extension for .html, keeping any query or fragment.
func noteHref(href string) (string, bool) {
	cut := len(href)
	if i := strings.IndexAny(href, "?#"); i != -1 {
		cut = i
	}
	p, suffix := href[:cut], href[cut:]

	ext := path.Ext(p)
	for _, md := range markdownExtensions {
		if strings.EqualFold(ext, md) {
			return strings.TrimSuffix(p, ext) + ".html" + suffix, true
		}
	}
	return href, false
}

// isRelativePath returns true if the path should be rewritten.
func isRelativePath(p string) bool {
	if p == "" || strings.HasPrefix(p, "#") || strings.HasPrefix(p, "/") {
		return false
	}

	lower := strings.ToLower(p)
	for _, prefix := range []string{"http://", "https://", "file://", "data:", "mailto:", "//"} {
		if strings.HasPrefix(lower, prefix) {
			return false
		}
	}
	return true
}

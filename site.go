package notesite

import (
	"context"
	"fmt"
	"html"
	"html/template"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/alnah/go-notesite/internal/dateutil"
	"github.com/alnah/go-notesite/internal/fileutil"
	"github.com/alnah/go-notesite/internal/pipeline"
)

// homepageContent renders the index heading and one list item per page, in
// registry order.
func homepageContent(heading string, registry Registry) string {
	var b strings.Builder
	b.WriteString("<h1>" + html.EscapeString(heading) + "</h1>\n<ul>\n")
	for _, p := range registry.pages {
		fmt.Fprintf(&b, "<li><a href=\"%s\">%s</a></li>\n",
			html.EscapeString(escapePath(p.Filename)), html.EscapeString(p.Title))
	}
	b.WriteString("</ul>\n")
	return b.String()
}

// buildHomepage writes index.html.
func (g *Generator) buildHomepage(ctx context.Context, registry Registry, outputDir, stylesheet string) error {
	date, err := dateutil.ResolveDate(g.cfg.date, g.cfg.now())
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidDate, err)
	}

	out, err := g.renderPage(ctx, &pipeline.PageData{
		Title:      g.cfg.homeTitle,
		Content:    template.HTML(homepageContent(g.cfg.indexHeading, registry)), // #nosec G203 -- escaped above
		Pages:      registry.links(),
		Current:    HomepageName,
		Stylesheet: stylesheet,
		Date:       date,
	})
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrNoteRender, HomepageName, err)
	}

	if err := fileutil.WriteFile(filepath.Join(outputDir, HomepageName), out); err != nil {
		return fmt.Errorf("%w: %w", ErrPageWrite, err)
	}
	return nil
}

// writeStylesheet writes style.css unless the stylesheet is disabled,
// missing or inlined.
func (g *Generator) writeStylesheet(outputDir string) error {
	if g.stylesheet == "" || g.cfg.inlineStyle {
		return nil
	}
	if err := fileutil.WriteFile(filepath.Join(outputDir, StylesheetName), g.stylesheet); err != nil {
		return fmt.Errorf("%w: %w", ErrPageWrite, err)
	}
	return nil
}

// copyAssets copies every static entry of inputDir verbatim. An entry that
// is the output directory itself is skipped. Copies run after the
// stylesheet is written, so a style.css among the notes takes precedence.
func (g *Generator) copyAssets(ctx context.Context, inputDir, outputDir string, names []string) ([]string, error) {
	var copied []string
	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		src := filepath.Join(inputDir, name)
		if fileutil.SameDir(src, outputDir) {
			continue
		}
		if err := fileutil.Copy(src, filepath.Join(outputDir, name)); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrAssetCopy, err)
		}
		g.logger.Debug("asset copied", "asset", name)
		copied = append(copied, name)
	}
	return copied, nil
}

// escapePath percent-encodes a file name for use in an href, the same way
// wiki-link targets are encoded.
func escapePath(name string) string {
	return (&url.URL{Path: name}).EscapedPath()
}

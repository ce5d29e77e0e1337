package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
)

// Sentinel errors for page templates.
var (
	ErrTemplateParse  = errors.New("page template parsing failed")
	ErrTemplateRender = errors.New("page template rendering failed")
)

// PageLink is one navigation entry.
type PageLink struct {
	Title    string
	Filename string
}

// PageData holds the bindings available to a page template.
type PageData struct {
	Title      string
	Content    template.HTML // rendered note, trusted
	Pages      []PageLink    // every page of the site, in registry order
	Current    string        // filename of the page being rendered
	Stylesheet string        // relative stylesheet URL, empty when none
	Date       string
}

// PageRenderer renders pages through an html/template layout.
type PageRenderer struct {
	tmpl *template.Template
}

// NewPageRenderer parses a page template.
func NewPageRenderer(tmplContent string) (*PageRenderer, error) {
	tmpl, err := template.New("page").Parse(tmplContent)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTemplateParse, err)
	}
	return &PageRenderer{tmpl: tmpl}, nil
}

// Render executes the template for one page.
func (r *PageRenderer) Render(ctx context.Context, data *PageData) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrTemplateRender, data.Current, err)
	}
	return buf.String(), nil
}

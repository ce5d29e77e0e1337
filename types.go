package notesite

import (
	"fmt"
	"slices"
	"time"

	"github.com/alnah/go-notesite/internal/pipeline"
)

// LinkConvention selects which side of "|" holds a wiki-link target.
type LinkConvention = pipeline.LinkConvention

// Wiki-link conventions.
const (
	AliasTarget = pipeline.AliasTarget // [[alias|target]]
	TargetAlias = pipeline.TargetAlias // [[target|alias]]
)

// ParseLinkConvention parses "alias-target" or "target-alias".
func ParseLinkConvention(name string) (LinkConvention, error) {
	return pipeline.ParseLinkConvention(name)
}

// Citer renders one citation. Cite returns an error for unknown keys.
type Citer interface {
	Cite(key, locator string) (string, error)
}

// Page is one generated page of the site.
type Page struct {
	Title    string
	Filename string // "About.html"
}

// Registry is the ordered list of site pages used for navigation and the
// homepage. It is a value: With returns a new Registry and never modifies
// the receiver.
type Registry struct {
	pages []Page
}

// With returns a registry with p appended.
func (r Registry) With(p Page) Registry {
	pages := make([]Page, len(r.pages), len(r.pages)+1)
	copy(pages, r.pages)
	return Registry{pages: append(pages, p)}
}

// Pages returns a copy of the pages in insertion order.
func (r Registry) Pages() []Page {
	return slices.Clone(r.pages)
}

// Len returns the number of pages.
func (r Registry) Len() int {
	return len(r.pages)
}

// links converts the registry to template navigation entries.
func (r Registry) links() []pipeline.PageLink {
	links := make([]pipeline.PageLink, len(r.pages))
	for i, p := range r.pages {
		links[i] = pipeline.PageLink{Title: p.Title, Filename: p.Filename}
	}
	return links
}

// Note is a Markdown source file of the input directory.
type Note struct {
	Name     string // "About.md"
	Path     string
	Stem     string // "About"
	Title    string // derived from Stem or taken from frontmatter
	Body     string // content without frontmatter
	Draft    bool
	Modified time.Time
}

// Page returns the page generated for the note.
func (n Note) Page() Page {
	return Page{Title: n.Title, Filename: n.Stem + ".html"}
}

// Diagnostic is a non-fatal finding about one note, such as an unclosed
// wiki-link or an unknown citation key. The offending text is left as is.
type Diagnostic struct {
	Note    string // note file name
	Kind    string // "unclosed-wikilink", "empty-wikilink", "unresolved-citation"
	Line    int    // 1-based, counted after frontmatter removal
	Text    string
	Message string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s:%d: %s: %s (%q)", d.Note, d.Line, d.Kind, d.Message, d.Text)
}

// toDiagnostics attaches the note name to pipeline diagnostics.
func toDiagnostics(note string, diags []pipeline.Diagnostic) []Diagnostic {
	out := make([]Diagnostic, len(diags))
	for i, d := range diags {
		out[i] = Diagnostic{
			Note:    note,
			Kind:    d.Kind.String(),
			Line:    d.Line,
			Text:    d.Text,
			Message: d.Message,
		}
	}
	return out
}

// BuildResult summarizes a successful build.
type BuildResult struct {
	OutputDir   string
	Pages       []Page   // registry order, homepage excluded
	Assets      []string // copied entries of the input directory
	Skipped     []string // drafts and notes shadowed by the homepage
	Stylesheet  string   // "style.css", empty when none was written
	Diagnostics []Diagnostic
}

// TOC configures the table of contents placed at the top of each page.
type TOC struct {
	Title    string
	MinDepth int // 1-6, 0 means 2
	MaxDepth int // 1-6, 0 means 3
}

// Default TOC depths.
const (
	DefaultTOCMinDepth = 2
	DefaultTOCMaxDepth = 3
)

// Validate checks depth bounds. A nil TOC is valid.
func (t *TOC) Validate() error {
	if t == nil {
		return nil
	}
	minDepth, maxDepth := t.depths()
	if minDepth < 1 || minDepth > 6 {
		return fmt.Errorf("%w: minDepth %d (must be 1-6)", ErrInvalidTOCDepth, minDepth)
	}
	if maxDepth < minDepth || maxDepth > 6 {
		return fmt.Errorf("%w: maxDepth %d (must be %d-6)", ErrInvalidTOCDepth, maxDepth, minDepth)
	}
	return nil
}

func (t *TOC) depths() (minDepth, maxDepth int) {
	minDepth, maxDepth = t.MinDepth, t.MaxDepth
	if minDepth == 0 {
		minDepth = DefaultTOCMinDepth
	}
	if maxDepth == 0 {
		maxDepth = max(DefaultTOCMaxDepth, minDepth)
	}
	return minDepth, maxDepth
}

// toTOCData converts a validated TOC for the pipeline. nil stays nil.
func toTOCData(t *TOC) *pipeline.TOCData {
	if t == nil {
		return nil
	}
	minDepth, maxDepth := t.depths()
	return &pipeline.TOCData{Title: t.Title, MinDepth: minDepth, MaxDepth: maxDepth}
}

package notesite

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alnah/go-notesite/internal/assets"
	"github.com/alnah/go-notesite/internal/bibliography"
	"github.com/alnah/go-notesite/internal/dateutil"
	"github.com/alnah/go-notesite/internal/fileutil"
	"github.com/alnah/go-notesite/internal/pipeline"
)

// Compile-time interface implementation checks.
var (
	_ pipeline.MarkdownPreprocessor = (*pipeline.ObsidianPreprocessor)(nil)
	_ pipeline.HTMLConverter        = (*pipeline.GoldmarkConverter)(nil)
	_ pipeline.CSSInjector          = (*pipeline.CSSInjection)(nil)
	_ pipeline.TOCInjector          = (*pipeline.TOCInjection)(nil)
	_ pipeline.Citer                = (*bibliography.Processor)(nil)
	_ Citer                         = (*bibliography.Processor)(nil)
)

// Generator builds a static site from a directory of notes.
// Create with NewGenerator and call Build once per site.
// A Generator is not safe for concurrent use.
type Generator struct {
	cfg           generatorConfig
	logger        *slog.Logger
	titler        *titler
	preprocessor  pipeline.MarkdownPreprocessor
	rewriter      *pipeline.Rewriter
	htmlConverter pipeline.HTMLConverter
	cssInjector   pipeline.CSSInjector
	tocInjector   pipeline.TOCInjector
	renderer      *pipeline.PageRenderer
	toc           *pipeline.TOCData
	stylesheet    string // CSS content, empty when disabled or missing
}

// NewGenerator creates a Generator. It loads the page template, the
// stylesheet and the bibliography up front, so configuration mistakes are
// reported before any file is written.
func NewGenerator(opts ...Option) (*Generator, error) {
	cfg := defaultGeneratorConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	g := &Generator{
		cfg:           cfg,
		logger:        cfg.logger,
		preprocessor:  &pipeline.ObsidianPreprocessor{},
		htmlConverter: pipeline.NewGoldmarkConverter(),
		cssInjector:   &pipeline.CSSInjection{},
		tocInjector:   pipeline.NewTOCInjection(),
	}

	var err error
	if g.titler, err = newTitler(cfg.titlePolicy, cfg.language); err != nil {
		return nil, err
	}

	if err := cfg.toc.Validate(); err != nil {
		return nil, err
	}
	g.toc = toTOCData(cfg.toc)

	if _, err := dateutil.ResolvePageDate(cfg.date, cfg.now(), cfg.now()); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDate, err)
	}

	if err := g.loadAssets(); err != nil {
		return nil, err
	}

	rewriterOpts := []pipeline.RewriterOption{pipeline.WithLinkConvention(cfg.linkConvention)}
	citer, err := g.loadCiter()
	if err != nil {
		return nil, err
	}
	if citer != nil {
		rewriterOpts = append(rewriterOpts, pipeline.WithCitations(pipeline.NewCitationRewriter(citer, g.logger)))
	}
	g.rewriter = pipeline.NewRewriter(rewriterOpts...)

	return g, nil
}

// loadAssets resolves the page template and the stylesheet.
// A missing stylesheet is not an error: the site is built without one.
func (g *Generator) loadAssets() error {
	resolver, err := assets.NewResolver(g.cfg.assetPath)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidAssetPath, err)
	}

	templateRef := g.cfg.template
	if templateRef == "" {
		templateRef = assets.DefaultTemplateName
	}
	tmpl, err := resolver.Resolve(assets.Template, templateRef)
	if err != nil {
		return fmt.Errorf("loading page template: %w", err)
	}
	if g.renderer, err = pipeline.NewPageRenderer(tmpl); err != nil {
		return err
	}

	if g.cfg.noStyle {
		return nil
	}
	styleRef := g.cfg.style
	if styleRef == "" {
		styleRef = assets.DefaultStyleName
	}
	css, err := resolver.Resolve(assets.Style, styleRef)
	switch {
	case errors.Is(err, assets.ErrStyleNotFound) && g.cfg.style == "":
		g.logger.Debug("stylesheet not found, skipping", "style", styleRef)
		return nil
	case errors.Is(err, assets.ErrStyleNotFound):
		available, _ := resolver.Names(assets.Style)
		g.logger.Warn("stylesheet not found, skipping", "style", styleRef, "available", available)
		return nil
	case err != nil:
		return fmt.Errorf("loading stylesheet: %w", err)
	}
	g.stylesheet = css
	return nil
}

// loadCiter returns the configured citer, or nil when citations are disabled.
func (g *Generator) loadCiter() (Citer, error) {
	if g.cfg.citer != nil {
		return g.cfg.citer, nil
	}
	if g.cfg.bibliography == "" {
		return nil, nil
	}
	processor, err := bibliography.Load(g.cfg.bibliography, g.cfg.citationStyle, g.logger)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBibliography, err)
	}
	return processor, nil
}

// Build generates the site for the notes in inputDir into outputDir.
// Pages are written as they are rendered: a failure aborts the build and
// leaves the pages written so far in place.
func (g *Generator) Build(ctx context.Context, inputDir, outputDir string) (*BuildResult, error) {
	if err := g.checkDirs(inputDir, outputDir); err != nil {
		return nil, err
	}

	inv, err := discover(inputDir)
	if err != nil {
		return nil, err
	}

	notes, skipped, err := g.readNotes(inv.notes)
	if err != nil {
		return nil, err
	}

	var registry Registry
	for _, n := range notes {
		registry = registry.With(n.Page())
	}

	result := &BuildResult{
		OutputDir: outputDir,
		Pages:     registry.Pages(),
		Skipped:   skipped,
	}
	if g.stylesheet != "" && !g.cfg.inlineStyle {
		result.Stylesheet = StylesheetName
	}

	for _, n := range notes {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		diags, err := g.buildPage(ctx, n, registry, outputDir, result.Stylesheet)
		if err != nil {
			return nil, err
		}
		result.Diagnostics = append(result.Diagnostics, diags...)
	}

	if err := g.buildHomepage(ctx, registry, outputDir, result.Stylesheet); err != nil {
		return nil, err
	}
	if err := g.writeStylesheet(outputDir); err != nil {
		return nil, err
	}
	if result.Assets, err = g.copyAssets(ctx, inputDir, outputDir, inv.assets); err != nil {
		return nil, err
	}

	g.logger.Info("site generated",
		"output", outputDir,
		"pages", registry.Len(),
		"assets", len(result.Assets),
		"diagnostics", len(result.Diagnostics))
	return result, nil
}

// checkDirs validates the input directory and creates the output directory.
func (g *Generator) checkDirs(inputDir, outputDir string) error {
	info, err := os.Stat(inputDir)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrInputNotFound, inputDir)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s", ErrInputNotDir, inputDir)
	}
	if fileutil.SameDir(inputDir, outputDir) {
		return fmt.Errorf("%w: %s", ErrSameDirectory, inputDir)
	}
	if err := fileutil.EnsureDir(outputDir); err != nil {
		return fmt.Errorf("%w: %w", ErrOutputDir, err)
	}
	return nil
}

// readNotes reads every note in order. Drafts and a note that would be
// overwritten by the homepage are left out of the site and returned by name.
func (g *Generator) readNotes(paths []string) (notes []Note, skipped []string, err error) {
	for _, p := range paths {
		n, err := readNote(p, g.titler, g.logger.Warn)
		if err != nil {
			return nil, nil, err
		}
		switch {
		case n.Draft:
			g.logger.Debug("skipping draft", "note", n.Name)
			skipped = append(skipped, n.Name)
		case n.Page().Filename == HomepageName:
			g.logger.Warn("note shadowed by the homepage, skipping", "note", n.Name, "page", HomepageName)
			skipped = append(skipped, n.Name)
		default:
			notes = append(notes, n)
		}
	}
	return notes, skipped, nil
}

// buildPage renders one note and writes {stem}.html.
func (g *Generator) buildPage(ctx context.Context, n Note, registry Registry, outputDir, stylesheet string) ([]Diagnostic, error) {
	content, diags, err := g.renderNote(ctx, n)
	if err != nil {
		return nil, err
	}

	date, err := dateutil.ResolvePageDate(g.cfg.date, g.cfg.now(), n.Modified)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDate, err)
	}

	page := n.Page()
	out, err := g.renderPage(ctx, &pipeline.PageData{
		Title:      page.Title,
		Content:    template.HTML(content), // #nosec G203 -- notes are trusted author content
		Pages:      registry.links(),
		Current:    page.Filename,
		Stylesheet: stylesheet,
		Date:       date,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrNoteRender, n.Name, err)
	}

	if err := fileutil.WriteFile(filepath.Join(outputDir, page.Filename), out); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPageWrite, err)
	}
	g.logger.Debug("page written", "note", n.Name, "page", page.Filename)
	return diags, nil
}

// renderNote runs the text passes and Markdown rendering on a note body and
// returns the HTML fragment.
func (g *Generator) renderNote(ctx context.Context, n Note) (string, []Diagnostic, error) {
	body := g.preprocessor.PreprocessMarkdown(ctx, n.Body)

	rewritten, pipeDiags, err := g.rewriter.Rewrite(ctx, body)
	if err != nil {
		return "", nil, err
	}
	diags := toDiagnostics(n.Name, pipeDiags)
	for _, d := range pipeDiags {
		// The citation pass logs its own warnings.
		if d.Kind != pipeline.DiagUnresolvedCitation {
			g.logger.Warn("malformed wiki-link", "note", n.Name, "line", d.Line, "kind", d.Kind.String(), "text", d.Text)
		}
	}

	content, err := g.htmlConverter.ToHTML(ctx, rewritten)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %s: %w", ErrNoteRender, n.Name, err)
	}
	if content, err = pipeline.RewriteMarkdownLinks(content); err != nil {
		return "", nil, fmt.Errorf("%w: %s: %w", ErrNoteRender, n.Name, err)
	}
	if content, err = g.tocInjector.InjectTOC(ctx, content, g.toc); err != nil {
		return "", nil, err
	}
	return content, diags, nil
}

// renderPage executes the page template and inlines the stylesheet when
// requested.
func (g *Generator) renderPage(ctx context.Context, data *pipeline.PageData) (string, error) {
	out, err := g.renderer.Render(ctx, data)
	if err != nil {
		return "", err
	}
	if g.cfg.inlineStyle {
		out = g.cssInjector.InjectCSS(ctx, out, g.stylesheet)
	}
	return out, nil
}

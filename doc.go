// Package notesite turns a directory of Obsidian-flavoured Markdown notes into
// a static HTML site.
//
// # Quick Start
//
// Create a generator and build a site:
//
//	gen, err := notesite.NewGenerator()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := gen.Build(ctx, "notes", "public")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("%d pages\n", len(result.Pages))
//
// # Page Pipeline
//
// Every note goes through the same stages, in order:
//
//  1. Markdown preprocessing (line endings, %%comments%%, ==highlight==)
//  2. Callouts: "> [!] text" becomes <div class="callout note">
//  3. Wiki-links and embeds: [[alias|Target]], ![[image.png|Caption]]
//  4. Citations, when a bibliography is configured: [@key, p. 12]
//  5. Markdown to HTML via Goldmark (GFM, footnotes, syntax highlighting)
//  6. Relative .md links rewritten to .html, optional table of contents
//  7. Page template with the site navigation, optional inline stylesheet
//
// Malformed wiki-links and unknown citation keys never stop a build. They are
// left unchanged in the page, logged as warnings and returned in
// BuildResult.Diagnostics.
//
// # Site Layout
//
// The output directory is flat: one {stem}.html per note, index.html listing
// every page, style.css unless disabled, and a verbatim copy of every
// non-Markdown entry of the input directory.
//
// # Configuration
//
// Use functional options to customize the generator:
//
//	gen, err := notesite.NewGenerator(
//	    notesite.WithLinkConvention(notesite.TargetAlias),
//	    notesite.WithTitlePolicy(notesite.TitleChicago),
//	    notesite.WithBibliography("refs.bib", ""),
//	    notesite.WithTOC(&notesite.TOC{Title: "On this page", MinDepth: 2, MaxDepth: 3}),
//	    notesite.WithLogger(slog.Default()),
//	)
//
// # Error Handling
//
// Errors wrap sentinel values and can be tested with errors.Is:
//
//	if errors.Is(err, notesite.ErrInputNotFound) {
//	    // Handle missing notes directory
//	}
package notesite

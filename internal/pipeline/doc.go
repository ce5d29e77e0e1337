// Package pipeline implements the note-to-HTML transformation pipeline.
//
// The package handles the text rewrite passes, Markdown rendering and HTML
// post-processing stages:
//   - Markdown preprocessing (line normalization, ==highlight==, %%comments%%)
//   - Callout blocks (> [!], > [?], > [i], > [x], plain blockquotes)
//   - Wiki-links and embeds ([[target]], [[alias|target]], ![[image.png]])
//   - Citation markers ([@key], [@key, p. 12]) resolved through a Citer
//   - Markdown to HTML conversion via Goldmark
//   - Relative .md link rewriting, table of contents and CSS injection
//   - Page template rendering
//
// Rewrite passes are lenient: malformed syntax is left untouched and reported
// as a Diagnostic instead of an error. Replacements are performed by recorded
// byte span, never by substring search, so repeated identical constructs are
// each rewritten exactly once.
package pipeline

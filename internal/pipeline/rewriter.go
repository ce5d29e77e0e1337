package pipeline

import "context"

// Rewriter chains the text rewrite passes in their fixed order:
// callouts, wiki-links, then citations when a CitationRewriter is set.
type Rewriter struct {
	convention LinkConvention
	citations  *CitationRewriter
}

// RewriterOption configures a Rewriter.
type RewriterOption func(*Rewriter)

// WithLinkConvention sets how [[a|b]] is split into alias and target.
func WithLinkConvention(c LinkConvention) RewriterOption {
	return func(r *Rewriter) {
		r.convention = c
	}
}

// WithCitations enables the citation pass.
func WithCitations(c *CitationRewriter) RewriterOption {
	return func(r *Rewriter) {
		r.citations = c
	}
}

// NewRewriter creates a Rewriter. Without options it uses AliasTarget and
// leaves citation markers alone.
func NewRewriter(opts ...RewriterOption) *Rewriter {
	r := &Rewriter{convention: AliasTarget}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Rewrite applies every pass to text. Diagnostics from all passes are
// returned in pass order. Only context cancellation produces an error.
func (r *Rewriter) Rewrite(ctx context.Context, text string) (string, []Diagnostic, error) {
	if err := ctx.Err(); err != nil {
		return "", nil, err
	}

	text = RewriteCallouts(text)

	text, diags := ResolveWikilinks(text, r.convention)

	if r.citations != nil {
		var citeDiags []Diagnostic
		var err error
		text, citeDiags, err = r.citations.Rewrite(ctx, text)
		if err != nil {
			return "", nil, err
		}
		diags = append(diags, citeDiags...)
	}

	return text, diags, nil
}

package pipeline

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestGoldmarkConverter_ToHTML(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		input        string
		wantContains []string
		wantAbsent   []string
	}{
		{
			name:         "heading ids",
			input:        "# Title\n\n## Sub Part",
			wantContains: []string{`<h1 id="title">Title</h1>`, `<h2 id="sub-part">Sub Part</h2>`},
		},
		{
			name:         "heading ids from punctuation and accents",
			input:        "## Q & A\n\n## Café Menu\n\n## Q & A",
			wantContains: []string{`<h2 id="q-and-a">`, `<h2 id="cafe-menu">`, `<h2 id="q-and-a-1">`},
		},
		{
			name:         "heading without sluggable text",
			input:        "## !!!",
			wantContains: []string{`<h2 id="heading">`},
		},
		{
			name:         "raw callout HTML kept",
			input:        `<div class="callout note"><p>hello</p></div>`,
			wantContains: []string{`<div class="callout note"><p>hello</p></div>`},
			wantAbsent:   []string{"&lt;div"},
		},
		{
			name:         "inline anchors kept",
			input:        `See <a href="About.html">About</a> now.`,
			wantContains: []string{`<a href="About.html">About</a>`},
		},
		{
			name:         "highlight placeholders become mark",
			input:        "x " + MarkStartPlaceholder + "hi" + MarkEndPlaceholder,
			wantContains: []string{"<mark>hi</mark>"},
			wantAbsent:   []string{MarkStartPlaceholder, MarkEndPlaceholder},
		},
		{
			name:         "fragment only",
			input:        "text",
			wantContains: []string{"<p>text</p>"},
			wantAbsent:   []string{"<html", "<body"},
		},
		{
			name:         "hard wraps",
			input:        "one\ntwo",
			wantContains: []string{"<br"},
		},
		{
			name:         "highlighted code",
			input:        "```go\npackage main\n```",
			wantContains: []string{"<pre", "package"},
		},
		{
			name:         "GFM table",
			input:        "| a | b |\n|---|---|\n| 1 | 2 |",
			wantContains: []string{"<table>", "<td>1</td>"},
		},
	}

	c := NewGoldmarkConverter()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := c.ToHTML(context.Background(), tt.input)
			if err != nil {
				t.Fatalf("ToHTML() error = %v", err)
			}
			for _, want := range tt.wantContains {
				if !strings.Contains(got, want) {
					t.Errorf("output missing %q:\n%s", want, got)
				}
			}
			for _, absent := range tt.wantAbsent {
				if strings.Contains(got, absent) {
					t.Errorf("output should not contain %q:\n%s", absent, got)
				}
			}
		})
	}
}

func TestGoldmarkConverter_ContextCanceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := NewGoldmarkConverter().ToHTML(ctx, "# x"); !errors.Is(err, context.Canceled) {
		t.Errorf("ToHTML() error = %v, want context.Canceled", err)
	}
}

package pipeline

import (
	"context"
	"errors"
	"testing"
)

func TestRewriter_Rewrite(t *testing.T) {
	t.Parallel()

	citer := &mapCiter{entries: map[string]string{"smith": "(Smith 2020)"}}

	tests := []struct {
		name      string
		opts      []RewriterOption
		input     string
		want      string
		wantDiags int
	}{
		{
			name:  "callout with link inside",
			input: "> [!] see [[About]]",
			want:  `<div class="callout note"><p>see <a href="About.html">About</a></p></div>`,
		},
		{
			name:  "citations disabled leaves markers",
			input: "text [@smith]",
			want:  "text [@smith]",
		},
		{
			name:  "citations enabled",
			opts:  []RewriterOption{WithCitations(NewCitationRewriter(citer, nil))},
			input: "> [i] per [@smith]",
			want:  `<div class="callout info"><p>per (Smith 2020)</p></div>`,
		},
		{
			name:  "target alias convention",
			opts:  []RewriterOption{WithLinkConvention(TargetAlias)},
			input: "[[About|the about page]]",
			want:  `<a href="About.html">the about page</a>`,
		},
		{
			name:      "diagnostics from several passes",
			opts:      []RewriterOption{WithCitations(NewCitationRewriter(citer, nil))},
			input:     "[[open\n[@nobody]",
			want:      "[[open\n[@nobody]",
			wantDiags: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, diags, err := NewRewriter(tt.opts...).Rewrite(context.Background(), tt.input)
			if err != nil {
				t.Fatalf("Rewrite() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Rewrite(%q)\n got: %q\nwant: %q", tt.input, got, tt.want)
			}
			if len(diags) != tt.wantDiags {
				t.Errorf("got %d diagnostics, want %d: %v", len(diags), tt.wantDiags, diags)
			}
		})
	}
}

func TestRewriter_Idempotent(t *testing.T) {
	t.Parallel()

	citer := &mapCiter{entries: map[string]string{"a": "(A 2020)"}}
	r := NewRewriter(WithCitations(NewCitationRewriter(citer, nil)))
	ctx := context.Background()

	inputs := []string{
		"# Title\n\n> [!] note with [[Link]]\n\nBody ![[pic.png|Pic]] [@a]",
		"> quote\n> [x] warn\n\n```\n> [!] code\n```",
		"[[alias|Target#Some Section]] and [[#Local]]",
	}

	for _, input := range inputs {
		once, _, err := r.Rewrite(ctx, input)
		if err != nil {
			t.Fatalf("first Rewrite() error = %v", err)
		}
		twice, _, err := r.Rewrite(ctx, once)
		if err != nil {
			t.Fatalf("second Rewrite() error = %v", err)
		}
		if once != twice {
			t.Errorf("second pass changed output:\n once: %q\ntwice: %q", once, twice)
		}
	}
}

func TestRewriter_RenderedHTMLIsStable(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	r := NewRewriter()

	rewritten, _, err := r.Rewrite(ctx, "# Page\n\n> [?] ask [[About]]\n\n> plain\n\nSee [[Other|x]].")
	if err != nil {
		t.Fatalf("Rewrite() error = %v", err)
	}
	rendered, err := NewGoldmarkConverter().ToHTML(ctx, rewritten)
	if err != nil {
		t.Fatalf("ToHTML() error = %v", err)
	}

	again, diags, err := r.Rewrite(ctx, rendered)
	if err != nil {
		t.Fatalf("Rewrite() error = %v", err)
	}
	if again != rendered {
		t.Errorf("rewrite altered rendered HTML:\n before: %q\n  after: %q", rendered, again)
	}
	if len(diags) != 0 {
		t.Errorf("unexpected diagnostics: %v", diags)
	}
}

func TestRewriter_ContextCanceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, _, err := NewRewriter().Rewrite(ctx, "[[A]]"); !errors.Is(err, context.Canceled) {
		t.Errorf("Rewrite() error = %v, want context.Canceled", err)
	}
}

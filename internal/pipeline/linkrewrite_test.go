package pipeline

import "testing"

func TestRewriteMarkdownLinks(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "relative note link",
			input: `<p><a href="Other.md">x</a></p>`,
			want:  `<p><a href="Other.html">x</a></p>`,
		},
		{
			name:  "nested path with fragment",
			input: `<p><a href="sub/Note.md#part">x</a></p>`,
			want:  `<p><a href="sub/Note.html#part">x</a></p>`,
		},
		{
			name:  "markdown extension case-insensitive",
			input: `<p><a href="Long.MARKDOWN?v=1">x</a></p>`,
			want:  `<p><a href="Long.html?v=1">x</a></p>`,
		},
		{
			name:  "external URL unchanged",
			input: `<p><a href="https://example.com/readme.md">x</a></p>`,
			want:  `<p><a href="https://example.com/readme.md">x</a></p>`,
		},
		{
			name:  "absolute path unchanged",
			input: `<p><a href="/docs/a.md">x</a></p>`,
			want:  `<p><a href="/docs/a.md">x</a></p>`,
		},
		{
			name:  "images unchanged",
			input: `<p><img src="diagram.md"></p>`,
			want:  `<p><img src="diagram.md"></p>`,
		},
		{
			name:  "no markdown reference returned as is",
			input: `<p><img src="a.png"/></p>`,
			want:  `<p><img src="a.png"/></p>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := RewriteMarkdownLinks(tt.input)
			if err != nil {
				t.Fatalf("RewriteMarkdownLinks() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("RewriteMarkdownLinks(%q)\n got: %q\nwant: %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestIsRelativePath(t *testing.T) {
	t.Parallel()

	tests := map[string]bool{
		"note.md":             true,
		"../up/note.md":       true,
		"":                    false,
		"#top":                false,
		"/abs.md":             false,
		"http://x/a.md":       false,
		"//cdn.example/a.md":  false,
		"mailto:me@x.md":      false,
		"data:text/plain,.md": false,
	}
	for input, want := range tests {
		if got := isRelativePath(input); got != want {
			t.Errorf("isRelativePath(%q) = %v, want %v", input, got, want)
		}
	}
}

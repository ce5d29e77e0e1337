package pipeline

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSplice(t *testing.T) {
	t.Parallel()

	text := "aXbYc"
	got := splice(text, []span{
		{start: 1, end: 2, replacement: "11"},
		{start: 3, end: 4, replacement: ""},
	})
	if got != "a11bc" {
		t.Errorf("splice() = %q, want %q", got, "a11bc")
	}
	if splice(text, nil) != text {
		t.Error("splice() without spans should return text unchanged")
	}
}

func TestFencedRegions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		want []region
	}{
		{name: "none", text: "plain\ntext"},
		{name: "closed", text: "a\n```\nx\n```\nb", want: []region{{start: 2, end: 12}}},
		{name: "unclosed runs to end", text: "a\n~~~\nx", want: []region{{start: 2, end: 8}}},
		{name: "indented fence ignored", text: "  ```\nx", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := fencedRegions(tt.text)
			if diff := cmp.Diff(tt.want, got, cmp.AllowUnexported(region{})); diff != "" {
				t.Errorf("fencedRegions() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCodeRegions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		want []region
	}{
		{name: "none", text: "plain text"},
		{name: "single backticks", text: "a `x` b", want: []region{{start: 2, end: 5}}},
		{name: "double backticks hold a single one", text: "``a ` b`` c", want: []region{{start: 0, end: 9}}},
		{name: "unmatched run is literal", text: "unmatched ` tick"},
		{name: "escaped opener", text: "escaped \\`x` y"},
		{name: "span across a line", text: "`a\nb`", want: []region{{start: 0, end: 5}}},
		{name: "blank line closes paragraph", text: "`a\n\nb`"},
		{
			name: "inline span and fence",
			text: "`x`\n```\n`y`\n```\n",
			want: []region{{start: 0, end: 3}, {start: 4, end: 16}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := codeRegions(tt.text)
			if diff := cmp.Diff(tt.want, got, cmp.AllowUnexported(region{})); diff != "" {
				t.Errorf("codeRegions(%q) mismatch (-want +got):\n%s", tt.text, diff)
			}
		})
	}
}

func TestLineAt(t *testing.T) {
	t.Parallel()

	text := "one\ntwo\nthree"
	for pos, want := range map[int]int{0: 1, 3: 1, 4: 2, 8: 3, 12: 3} {
		if got := lineAt(text, pos); got != want {
			t.Errorf("lineAt(%d) = %d, want %d", pos, got, want)
		}
	}
}

package assets

import (
	"errors"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"
)

func TestKind(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind     Kind
		str      string
		ext      string
		notFound error
	}{
		{Style, "style", ".css", ErrStyleNotFound},
		{Template, "template", ".html", ErrTemplateNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.str, func(t *testing.T) {
			t.Parallel()

			if got := tt.kind.String(); got != tt.str {
				t.Errorf("String() = %q, want %q", got, tt.str)
			}
			if got := tt.kind.Ext(); got != tt.ext {
				t.Errorf("Ext() = %q, want %q", got, tt.ext)
			}
			if got := tt.kind.NotFound(); got != tt.notFound {
				t.Errorf("NotFound() = %v, want %v", got, tt.notFound)
			}
		})
	}
}

func TestCheckName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		wantErr bool
	}{
		{"default", false},
		{"dark-mode", false},
		{"my_style", false},
		{"", true},
		{"../etc", true},
		{"sub/style", true},
		{`sub\style`, true},
		{"style.css", true},
		{".hidden", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := checkName(tt.name)
			if tt.wantErr && !errors.Is(err, ErrInvalidAssetName) {
				t.Errorf("checkName(%q) error = %v, want ErrInvalidAssetName", tt.name, err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("checkName(%q) unexpected error = %v", tt.name, err)
			}
		})
	}
}

func TestLoadAndNames(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"styles/light.css":      {Data: []byte("body{}")},
		"styles/dark.css":       {Data: []byte("body{color:#fff}")},
		"styles/notes.txt":      {Data: []byte("ignored")},
		"styles/bad.name.css":   {Data: []byte("ignored")},
		"templates/page.html":   {Data: []byte("{{.Content}}")},
		"templates/nested/x.ht": {Data: []byte("ignored")},
	}

	t.Run("load existing", func(t *testing.T) {
		t.Parallel()

		got, err := load(fsys, Style, "dark")
		if err != nil {
			t.Fatalf("load() error = %v", err)
		}
		if got != "body{color:#fff}" {
			t.Errorf("load() = %q", got)
		}
	})

	t.Run("load missing", func(t *testing.T) {
		t.Parallel()

		_, err := load(fsys, Template, "post")
		if !errors.Is(err, ErrTemplateNotFound) {
			t.Errorf("load() error = %v, want ErrTemplateNotFound", err)
		}
	})

	t.Run("names skip foreign files", func(t *testing.T) {
		t.Parallel()

		got, err := names(fsys, Style)
		if err != nil {
			t.Fatalf("names() error = %v", err)
		}
		if diff := cmp.Diff([]string{"dark", "light"}, got); diff != "" {
			t.Errorf("names() mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("names of missing directory", func(t *testing.T) {
		t.Parallel()

		got, err := names(fstest.MapFS{}, Template)
		if err != nil || got != nil {
			t.Errorf("names() = %v, %v; want nil, nil", got, err)
		}
	})
}

func TestReadLimited(t *testing.T) {
	t.Parallel()

	if _, err := readLimited(strings.NewReader(strings.Repeat("a", MaxAssetSize)), "ok"); err != nil {
		t.Errorf("readLimited() at limit error = %v", err)
	}
	_, err := readLimited(strings.NewReader(strings.Repeat("a", MaxAssetSize+1)), "big")
	if !errors.Is(err, ErrAssetTooLarge) {
		t.Errorf("readLimited() over limit error = %v, want ErrAssetTooLarge", err)
	}
}

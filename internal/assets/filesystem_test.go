package assets

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// writeAsset creates {base}/{dir}/{file} with content.
func writeAsset(t *testing.T, base, dir, file, content string) {
	t.Helper()

	full := filepath.Join(base, dir)
	if err := os.MkdirAll(full, 0o755); err != nil {
		t.Fatalf("MkdirAll() error = %v", err)
	}
	if err := os.WriteFile(filepath.Join(full, file), []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
}

func TestNewDirLoader(t *testing.T) {
	t.Parallel()

	file := filepath.Join(t.TempDir(), "file.txt")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		dir     string
		wantErr bool
	}{
		{"valid directory", t.TempDir(), false},
		{"empty path", "", true},
		{"missing directory", filepath.Join(t.TempDir(), "missing"), true},
		{"file instead of directory", file, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := NewDirLoader(tt.dir)
			if tt.wantErr && !errors.Is(err, ErrInvalidBasePath) {
				t.Errorf("NewDirLoader() error = %v, want ErrInvalidBasePath", err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("NewDirLoader() unexpected error = %v", err)
			}
		})
	}
}

func TestDirLoader(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	writeAsset(t, base, "styles", "dark.css", "body{background:#000}")
	writeAsset(t, base, "templates", "wide.html", "<main>{{.Content}}</main>")

	loader, err := NewDirLoader(base)
	if err != nil {
		t.Fatalf("NewDirLoader() error = %v", err)
	}

	t.Run("load style", func(t *testing.T) {
		t.Parallel()

		got, err := loader.Load(Style, "dark")
		if err != nil || got != "body{background:#000}" {
			t.Errorf("Load() = %q, %v", got, err)
		}
	})

	t.Run("load template", func(t *testing.T) {
		t.Parallel()

		got, err := loader.Load(Template, "wide")
		if err != nil || got != "<main>{{.Content}}</main>" {
			t.Errorf("Load() = %q, %v", got, err)
		}
	})

	t.Run("missing", func(t *testing.T) {
		t.Parallel()

		if _, err := loader.Load(Style, "light"); !errors.Is(err, ErrStyleNotFound) {
			t.Errorf("Load() error = %v, want ErrStyleNotFound", err)
		}
	})

	t.Run("traversal name", func(t *testing.T) {
		t.Parallel()

		if _, err := loader.Load(Style, "../dark"); !errors.Is(err, ErrInvalidAssetName) {
			t.Errorf("Load() error = %v, want ErrInvalidAssetName", err)
		}
	})

	t.Run("names", func(t *testing.T) {
		t.Parallel()

		got, err := loader.Names(Style)
		if err != nil {
			t.Fatalf("Names() error = %v", err)
		}
		if diff := cmp.Diff([]string{"dark"}, got); diff != "" {
			t.Errorf("Names() mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestDirLoader_SymlinkEscape(t *testing.T) {
	t.Parallel()

	if runtime.GOOS == "windows" {
		t.Skip("symlinks need privileges on Windows")
	}

	outside := t.TempDir()
	writeAsset(t, outside, "", "secret.css", "secret")

	base := t.TempDir()
	if err := os.MkdirAll(filepath.Join(base, "styles"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.Symlink(filepath.Join(outside, "secret.css"), filepath.Join(base, "styles", "leak.css")); err != nil {
		t.Fatal(err)
	}

	loader, err := NewDirLoader(base)
	if err != nil {
		t.Fatalf("NewDirLoader() error = %v", err)
	}
	got, err := loader.Load(Style, "leak")
	if err == nil {
		t.Fatalf("Load() = %q, want an error for a symlink leaving the directory", got)
	}
}

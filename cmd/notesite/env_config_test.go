package main

// Notes:
// - loadEnvConfig: process variables come from an injected Getenv, so tests
//   run in parallel without t.Setenv.
// - readEnvFile: the default .env is optional, an explicit one is not. The
//   default case relies on the package directory holding no .env file.

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/alnah/go-notesite/internal/config"
)

func TestLoadEnvConfig(t *testing.T) {
	t.Parallel()

	t.Run("all variables", func(t *testing.T) {
		t.Parallel()

		env := newTestEnv(map[string]string{
			"NOTESITE_CONFIG":          "site.yaml",
			"NOTESITE_INPUT_DIR":       "/notes",
			"NOTESITE_OUTPUT_DIR":      "/site",
			"NOTESITE_TEMPLATE":        "page",
			"NOTESITE_STYLE":           "default",
			"NOTESITE_ASSET_PATH":      "/assets",
			"NOTESITE_BIBLIOGRAPHY":    "refs.bib",
			"NOTESITE_TITLE_POLICY":    "ap",
			"NOTESITE_LINK_CONVENTION": "target-alias",
			"NOTESITE_DATE":            "auto",
		})

		got := loadEnvConfig(env.Environment, nil)
		want := &envConfig{
			ConfigPath:     "site.yaml",
			InputDir:       "/notes",
			OutputDir:      "/site",
			Template:       "page",
			Style:          "default",
			AssetPath:      "/assets",
			Bibliography:   "refs.bib",
			TitlePolicy:    "ap",
			LinkConvention: "target-alias",
			Date:           "auto",
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("loadEnvConfig() mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("process variables win over env file", func(t *testing.T) {
		t.Parallel()

		env := newTestEnv(map[string]string{"NOTESITE_STYLE": "process"})
		dotenv := map[string]string{"NOTESITE_STYLE": "file", "NOTESITE_DATE": "auto"}

		got := loadEnvConfig(env.Environment, dotenv)
		if got.Style != "process" {
			t.Errorf("Style = %q, want process", got.Style)
		}
		if got.Date != "auto" {
			t.Errorf("Date = %q, want auto from env file", got.Date)
		}
	})

	t.Run("empty environment", func(t *testing.T) {
		t.Parallel()

		got := loadEnvConfig(newTestEnv(nil).Environment, nil)
		if diff := cmp.Diff(&envConfig{}, got); diff != "" {
			t.Errorf("loadEnvConfig() mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestReadEnvFile(t *testing.T) {
	t.Parallel()

	t.Run("explicit file", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeFiles(t, dir, map[string]string{
			"ci.env": "# CI settings\nNOTESITE_STYLE=dark\nNOTESITE_DATE=\"auto:YYYY\"\n",
		})

		got, err := readEnvFile(filepath.Join(dir, "ci.env"))
		if err != nil {
			t.Fatalf("readEnvFile() error = %v", err)
		}
		want := map[string]string{"NOTESITE_STYLE": "dark", "NOTESITE_DATE": "auto:YYYY"}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("readEnvFile() mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("missing explicit file", func(t *testing.T) {
		t.Parallel()

		_, err := readEnvFile(filepath.Join(t.TempDir(), "missing.env"))
		if !errors.Is(err, ErrEnvFile) {
			t.Errorf("readEnvFile() error = %v, want ErrEnvFile", err)
		}
	})

	t.Run("missing default file", func(t *testing.T) {
		t.Parallel()

		got, err := readEnvFile("")
		if err != nil {
			t.Fatalf("readEnvFile() error = %v", err)
		}
		if got != nil {
			t.Errorf("readEnvFile() = %v, want nil", got)
		}
	})
}

func TestWarnUnknownEnvVars(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		environ []string
		dotenv  map[string]string
		want    []string
		notWant []string
	}{
		{
			name:    "typo in process environment",
			environ: []string{"NOTESITE_OUTPUT=/site", "HOME=/root"},
			want:    []string{"NOTESITE_OUTPUT"},
			notWant: []string{"HOME"},
		},
		{
			name:   "typo in env file",
			dotenv: map[string]string{"NOTESITE_STYLES": "dark"},
			want:   []string{"NOTESITE_STYLES"},
		},
		{
			name:    "known variables are silent",
			environ: []string{"NOTESITE_STYLE=dark", "NOTESITE_OUTPUT_DIR=/site"},
			dotenv:  map[string]string{"NOTESITE_DATE": "auto"},
			notWant: []string{"warning"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			warnUnknownEnvVars(&buf, tt.environ, tt.dotenv)
			out := buf.String()

			for _, s := range tt.want {
				if !strings.Contains(out, s) {
					t.Errorf("output %q should mention %s", out, s)
				}
			}
			for _, s := range tt.notWant {
				if strings.Contains(out, s) {
					t.Errorf("output %q should not contain %s", out, s)
				}
			}
		})
	}
}

func TestApplyEnvConfig(t *testing.T) {
	t.Parallel()

	t.Run("set variables override config", func(t *testing.T) {
		t.Parallel()

		cfg := config.DefaultConfig()
		cfg.Site.Style = "from-config"
		cfg.Site.Template = "from-config"

		applyEnvConfig(&envConfig{
			Style:          "from-env",
			LinkConvention: "target-alias",
			InputDir:       "/notes",
		}, cfg)

		if cfg.Site.Style != "from-env" {
			t.Errorf("Site.Style = %q, want from-env", cfg.Site.Style)
		}
		if cfg.Site.Template != "from-config" {
			t.Errorf("Site.Template = %q, want from-config", cfg.Site.Template)
		}
		if cfg.Links.Convention != "target-alias" {
			t.Errorf("Links.Convention = %q, want target-alias", cfg.Links.Convention)
		}
		if cfg.Input.DefaultDir != "/notes" {
			t.Errorf("Input.DefaultDir = %q, want /notes", cfg.Input.DefaultDir)
		}
	})

	t.Run("bibliography enables citations", func(t *testing.T) {
		t.Parallel()

		cfg := config.DefaultConfig()
		applyEnvConfig(&envConfig{Bibliography: "refs.bib"}, cfg)

		if !cfg.Citations.Enabled || cfg.Citations.Bibliography != "refs.bib" {
			t.Errorf("Citations = %+v, want enabled with refs.bib", cfg.Citations)
		}
	})

	t.Run("empty env keeps config", func(t *testing.T) {
		t.Parallel()

		cfg := config.DefaultConfig()
		applyEnvConfig(&envConfig{}, cfg)

		if diff := cmp.Diff(config.DefaultConfig(), cfg); diff != "" {
			t.Errorf("config changed (-want +got):\n%s", diff)
		}
	})
}

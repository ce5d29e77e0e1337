package main

// Notes:
// - runMain: drives the CLI end to end with an injected Environment, so
//   builds write real sites into temp directories.

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunMain_Commands(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		args       []string
		wantCode   int
		wantStdout string
		wantStderr string
	}{
		{"no command", []string{"notesite"}, ExitUsage, "", "Usage: notesite"},
		{"unknown command", []string{"notesite", "deploy"}, ExitUsage, "", "Unknown command: deploy"},
		{"version", []string{"notesite", "version"}, ExitSuccess, "notesite dev", ""},
		{"help", []string{"notesite", "help"}, ExitSuccess, "Commands:", ""},
		{"help build", []string{"notesite", "help", "build"}, ExitSuccess, "--links", ""},
		{"completion bash", []string{"notesite", "completion", "bash"}, ExitSuccess, "complete -F _notesite notesite", ""},
		{"completion unknown shell", []string{"notesite", "completion", "tcsh"}, ExitUsage, "", "unsupported shell"},
		{"build unknown flag", []string{"notesite", "build", "--nope"}, ExitUsage, "", "invalid usage"},
		{"build two dirs", []string{"notesite", "build", "a", "b"}, ExitUsage, "", "expected one notes directory"},
		{"build no input", []string{"notesite", "build"}, ExitIO, "", "no input directory"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			env := newTestEnv(nil)
			code := runMain(context.Background(), tt.args, env.Environment)

			if code != tt.wantCode {
				t.Errorf("exit code = %d, want %d (stderr: %s)", code, tt.wantCode, env.stderr)
			}
			if tt.wantStdout != "" && !strings.Contains(env.stdout.String(), tt.wantStdout) {
				t.Errorf("stdout %q should contain %q", env.stdout, tt.wantStdout)
			}
			if tt.wantStderr != "" && !strings.Contains(env.stderr.String(), tt.wantStderr) {
				t.Errorf("stderr %q should contain %q", env.stderr, tt.wantStderr)
			}
		})
	}
}

func TestRunMain_Build(t *testing.T) {
	t.Parallel()

	t.Run("generates site", func(t *testing.T) {
		t.Parallel()

		in := notesDir(t)
		out := filepath.Join(t.TempDir(), "site")
		env := newTestEnv(nil)

		code := runMain(context.Background(), []string{"notesite", "build", in, "-o", out}, env.Environment)
		if code != ExitSuccess {
			t.Fatalf("exit code = %d, stderr: %s", code, env.stderr)
		}

		for _, name := range []string{"index.html", "Home.html", "About.html", "style.css"} {
			if _, err := os.Stat(filepath.Join(out, name)); err != nil {
				t.Errorf("missing %s: %v", name, err)
			}
		}
		if !strings.Contains(env.stdout.String(), "Site generated in "+out) {
			t.Errorf("stdout = %q", env.stdout)
		}

		about, err := os.ReadFile(filepath.Join(out, "About.html"))
		if err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(string(about), `<a href="Home.html">Home page</a>`) {
			t.Errorf("About.html should link to Home.html:\n%s", about)
		}
	})

	t.Run("target-alias from flag", func(t *testing.T) {
		t.Parallel()

		in := t.TempDir()
		writeFiles(t, in, map[string]string{"a.md": "[[Target|Shown]]\n"})
		out := filepath.Join(t.TempDir(), "site")
		env := newTestEnv(nil)

		code := runMain(context.Background(), []string{"notesite", "build", in, "-o", out, "--links", "target-alias"}, env.Environment)
		if code != ExitSuccess {
			t.Fatalf("exit code = %d, stderr: %s", code, env.stderr)
		}
		page, _ := os.ReadFile(filepath.Join(out, "a.html"))
		if !strings.Contains(string(page), `<a href="Target.html">Shown</a>`) {
			t.Errorf("a.html:\n%s", page)
		}
	})

	t.Run("config file supplies input", func(t *testing.T) {
		t.Parallel()

		in := notesDir(t)
		out := filepath.Join(t.TempDir(), "site")
		cfgPath := filepath.Join(t.TempDir(), "notesite.yaml")
		writeFiles(t, filepath.Dir(cfgPath), map[string]string{
			"notesite.yaml": "input:\n  defaultDir: " + in + "\noutput:\n  defaultDir: " + out + "\nsite:\n  homeTitle: My Wiki\n",
		})
		env := newTestEnv(nil)

		code := runMain(context.Background(), []string{"notesite", "build", "-c", cfgPath}, env.Environment)
		if code != ExitSuccess {
			t.Fatalf("exit code = %d, stderr: %s", code, env.stderr)
		}
		index, err := os.ReadFile(filepath.Join(out, "index.html"))
		if err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(string(index), "My Wiki") {
			t.Errorf("index.html should use the configured title:\n%s", index)
		}
	})

	t.Run("env file supplies directories", func(t *testing.T) {
		t.Parallel()

		in := notesDir(t)
		out := filepath.Join(t.TempDir(), "site")
		envDir := t.TempDir()
		writeFiles(t, envDir, map[string]string{
			"site.env": "NOTESITE_INPUT_DIR=" + in + "\nNOTESITE_OUTPUT_DIR=" + out + "\nNOTESITE_OUTPT=typo\n",
		})
		env := newTestEnv(nil)

		code := runMain(context.Background(), []string{"notesite", "build", "--env-file", filepath.Join(envDir, "site.env")}, env.Environment)
		if code != ExitSuccess {
			t.Fatalf("exit code = %d, stderr: %s", code, env.stderr)
		}
		if _, err := os.Stat(filepath.Join(out, "index.html")); err != nil {
			t.Errorf("index.html not generated: %v", err)
		}
		if !strings.Contains(env.stderr.String(), "NOTESITE_OUTPT") {
			t.Errorf("stderr %q should warn about NOTESITE_OUTPT", env.stderr)
		}
	})

	t.Run("process environment supplies input", func(t *testing.T) {
		t.Parallel()

		in := notesDir(t)
		out := filepath.Join(t.TempDir(), "site")
		env := newTestEnv(map[string]string{"NOTESITE_INPUT_DIR": in})

		code := runMain(context.Background(), []string{"notesite", "build", "-o", out, "-q"}, env.Environment)
		if code != ExitSuccess {
			t.Fatalf("exit code = %d, stderr: %s", code, env.stderr)
		}
		if env.stdout.Len() != 0 {
			t.Errorf("quiet build printed %q", env.stdout)
		}
	})
}

func TestRunMain_BuildErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		args       func(t *testing.T) []string
		wantCode   int
		wantStderr string
	}{
		{
			name: "missing notes directory",
			args: func(t *testing.T) []string {
				return []string{"notesite", "build", filepath.Join(t.TempDir(), "nope"), "-o", t.TempDir()}
			},
			wantCode:   ExitIO,
			wantStderr: "hint:",
		},
		{
			name: "invalid link convention",
			args: func(t *testing.T) []string {
				return []string{"notesite", "build", notesDir(t), "--links", "sideways"}
			},
			wantCode:   ExitUsage,
			wantStderr: "invalid config",
		},
		{
			name: "same input and output",
			args: func(t *testing.T) []string {
				dir := notesDir(t)
				return []string{"notesite", "build", dir, "-o", dir}
			},
			wantCode:   ExitUsage,
			wantStderr: "hint:",
		},
		{
			name: "missing config",
			args: func(t *testing.T) []string {
				return []string{"notesite", "build", notesDir(t), "-c", filepath.Join(t.TempDir(), "none.yaml")}
			},
			wantCode:   ExitUsage,
			wantStderr: "config file not found",
		},
		{
			name: "missing env file",
			args: func(t *testing.T) []string {
				return []string{"notesite", "build", notesDir(t), "--env-file", filepath.Join(t.TempDir(), "none.env")}
			},
			wantCode:   ExitUsage,
			wantStderr: "env file",
		},
		{
			name: "missing bibliography",
			args: func(t *testing.T) []string {
				return []string{"notesite", "build", notesDir(t), "-o", filepath.Join(t.TempDir(), "site"), "-b", filepath.Join(t.TempDir(), "refs.bib")}
			},
			wantCode:   ExitUsage,
			wantStderr: "BibTeX",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			env := newTestEnv(nil)
			code := runMain(context.Background(), tt.args(t), env.Environment)

			if code != tt.wantCode {
				t.Errorf("exit code = %d, want %d (stderr: %s)", code, tt.wantCode, env.stderr)
			}
			if !strings.Contains(env.stderr.String(), tt.wantStderr) {
				t.Errorf("stderr %q should contain %q", env.stderr, tt.wantStderr)
			}
		})
	}
}

func TestRunMain_Canceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	env := newTestEnv(nil)
	code := runMain(ctx, []string{"notesite", "build", notesDir(t), "-o", filepath.Join(t.TempDir(), "site")}, env.Environment)

	if code == ExitSuccess {
		t.Fatal("canceled build should fail")
	}
	if !strings.Contains(env.stderr.String(), "interrupted") {
		t.Errorf("stderr = %q, want interrupted", env.stderr)
	}
}

package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"sort"
	"strings"

	"github.com/joho/godotenv"

	"github.com/alnah/go-notesite/internal/config"
)

// envPrefix is the prefix of every recognized environment variable.
const envPrefix = "NOTESITE_"

// defaultEnvFile is read when present and --env-file is not given.
const defaultEnvFile = ".env"

// envConfig holds configuration from environment variables.
// Provides CI-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath     string // NOTESITE_CONFIG: config file name or path
	InputDir       string // NOTESITE_INPUT_DIR: notes directory
	OutputDir      string // NOTESITE_OUTPUT_DIR: site directory
	Template       string // NOTESITE_TEMPLATE: page template name or path
	Style          string // NOTESITE_STYLE: stylesheet name or path
	AssetPath      string // NOTESITE_ASSET_PATH: custom asset directory
	Bibliography   string // NOTESITE_BIBLIOGRAPHY: bibliography file, enables citations
	TitlePolicy    string // NOTESITE_TITLE_POLICY: capitalize, title, ap, chicago, none
	LinkConvention string // NOTESITE_LINK_CONVENTION: alias-target, target-alias
	Date           string // NOTESITE_DATE: page date
}

// knownEnvVars lists valid NOTESITE_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"NOTESITE_CONFIG":          true,
	"NOTESITE_INPUT_DIR":       true,
	"NOTESITE_OUTPUT_DIR":      true,
	"NOTESITE_TEMPLATE":        true,
	"NOTESITE_STYLE":           true,
	"NOTESITE_ASSET_PATH":      true,
	"NOTESITE_BIBLIOGRAPHY":    true,
	"NOTESITE_TITLE_POLICY":    true,
	"NOTESITE_LINK_CONVENTION": true,
	"NOTESITE_DATE":            true,
}

// readEnvFile reads a .env file. The default file may be absent; an explicit
// one may not.
func readEnvFile(path string) (map[string]string, error) {
	explicit := path != ""
	if !explicit {
		path = defaultEnvFile
	}

	vars, err := godotenv.Read(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: %s: %v", ErrEnvFile, path, err)
	}
	return vars, nil
}

// loadEnvConfig reads NOTESITE_* values. Process variables take precedence
// over values from the .env file.
func loadEnvConfig(env *Environment, dotenv map[string]string) *envConfig {
	get := func(name string) string {
		if v := env.Getenv(name); v != "" {
			return v
		}
		return dotenv[name]
	}

	return &envConfig{
		ConfigPath:     get("NOTESITE_CONFIG"),
		InputDir:       get("NOTESITE_INPUT_DIR"),
		OutputDir:      get("NOTESITE_OUTPUT_DIR"),
		Template:       get("NOTESITE_TEMPLATE"),
		Style:          get("NOTESITE_STYLE"),
		AssetPath:      get("NOTESITE_ASSET_PATH"),
		Bibliography:   get("NOTESITE_BIBLIOGRAPHY"),
		TitlePolicy:    get("NOTESITE_TITLE_POLICY"),
		LinkConvention: get("NOTESITE_LINK_CONVENTION"),
		Date:           get("NOTESITE_DATE"),
	}
}

// warnUnknownEnvVars prints a warning for unrecognized NOTESITE_* variables
// from the process environment and the .env file.
// Helps catch typos like NOTESITE_OUTPUT instead of NOTESITE_OUTPUT_DIR.
func warnUnknownEnvVars(w io.Writer, environ []string, dotenv map[string]string) {
	seen := make(map[string]bool)
	for _, kv := range environ {
		name, _, _ := strings.Cut(kv, "=")
		seen[name] = true
	}
	for name := range dotenv {
		seen[name] = true
	}

	var unknown []string
	for name := range seen {
		if strings.HasPrefix(name, envPrefix) && !knownEnvVars[name] {
			unknown = append(unknown, name)
		}
	}
	sort.Strings(unknown)
	for _, name := range unknown {
		fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
	}
}

// applyEnvConfig applies environment variable values to config.
// Set variables override the config file; CLI flags are applied later.
// Priority: CLI flags > env vars > config file > defaults.
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	override := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}

	override(&cfg.Input.DefaultDir, env.InputDir)
	override(&cfg.Output.DefaultDir, env.OutputDir)
	override(&cfg.Site.Template, env.Template)
	override(&cfg.Site.Style, env.Style)
	override(&cfg.Site.Date, env.Date)
	override(&cfg.Assets.BasePath, env.AssetPath)
	override(&cfg.Title.Policy, env.TitlePolicy)
	override(&cfg.Links.Convention, env.LinkConvention)

	// A bibliography alone is enough to turn citations on.
	if env.Bibliography != "" {
		cfg.Citations.Bibliography = env.Bibliography
		cfg.Citations.Enabled = true
	}
}

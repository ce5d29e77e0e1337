// Package config loads and validates notesite YAML configuration files.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"golang.org/x/text/language"

	"github.com/alnah/go-notesite/internal/fileutil"
	"github.com/alnah/go-notesite/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrConfigInvalid   = errors.New("invalid config")
)

// Field length limits.
const (
	MaxTitleLength = 200  // homeTitle, indexHeading, toc.title
	MaxPathLength  = 4096 // file and directory paths
	MaxDateLength  = 64   // "auto:DD/MM/YYYY", "2025-12-31"
)

// Accepted enumerated values.
var (
	TitlePolicies   = []any{"capitalize", "title", "ap", "chicago", "none"}
	LinkConventions = []any{"alias-target", "target-alias"}
)

// configDirName is the directory under os.UserConfigDir searched for configs.
const configDirName = "go-notesite"

// Config holds all configuration for site generation.
type Config struct {
	Input     InputConfig     `yaml:"input"`
	Output    OutputConfig    `yaml:"output"`
	Site      SiteConfig      `yaml:"site"`
	Title     TitleConfig     `yaml:"title"`
	Links     LinksConfig     `yaml:"links"`
	Citations CitationsConfig `yaml:"citations"`
	Assets    AssetsConfig    `yaml:"assets"`
	TOC       TOCConfig       `yaml:"toc"`
}

// InputConfig defines the notes directory.
type InputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Empty = must be given on the command line
}

// OutputConfig defines the site directory.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Empty = "output"
}

// SiteConfig defines page layout options.
type SiteConfig struct {
	Template     string `yaml:"template"`     // Template name or .html path
	Style        string `yaml:"style"`        // Style name or .css path
	NoStyle      bool   `yaml:"noStyle"`      // Do not emit style.css
	InlineStyle  bool   `yaml:"inlineStyle"`  // Embed the style in every page instead
	HomeTitle    string `yaml:"homeTitle"`    // <title> of index.html
	IndexHeading string `yaml:"indexHeading"` // <h1> of index.html
	Date         string `yaml:"date"`         // "auto", "auto:FORMAT" or a literal date
}

// TitleConfig defines how page titles are derived from file names.
type TitleConfig struct {
	Policy   string `yaml:"policy"`   // capitalize, title, ap, chicago, none
	Language string `yaml:"language"` // BCP 47 tag used for casing
}

// LinksConfig defines how wiki-links are read.
type LinksConfig struct {
	Convention string `yaml:"convention"` // alias-target or target-alias
}

// CitationsConfig defines citation resolution.
type CitationsConfig struct {
	Enabled      bool   `yaml:"enabled"`
	Bibliography string `yaml:"bibliography"` // .bib, .json, .yaml or .yml
	Style        string `yaml:"style"`        // Style YAML path, empty = built-in
}

// AssetsConfig defines asset loading options.
type AssetsConfig struct {
	BasePath string `yaml:"basePath"` // Empty = use embedded assets
}

// TOCConfig defines table of contents options.
type TOCConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Title    string `yaml:"title"`
	MinDepth int    `yaml:"minDepth"`
	MaxDepth int    `yaml:"maxDepth"`
}

// Validate checks every section. Called automatically by LoadConfig, but
// available to callers that build a Config by hand.
func (c *Config) Validate() error {
	if err := c.validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrConfigInvalid, err)
	}
	return nil
}

func (c *Config) validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Input),
		validation.Field(&c.Output),
		validation.Field(&c.Site),
		validation.Field(&c.Title),
		validation.Field(&c.Links),
		validation.Field(&c.Citations),
		validation.Field(&c.Assets),
		validation.Field(&c.TOC),
	)
}

// Validate validates the input section.
func (c InputConfig) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.DefaultDir, validation.Length(0, MaxPathLength)),
	)
}

// Validate validates the output section.
func (c OutputConfig) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.DefaultDir, validation.Length(0, MaxPathLength)),
	)
}

// Validate validates the site section.
func (c SiteConfig) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Template, validation.Length(0, MaxPathLength)),
		validation.Field(&c.Style, validation.Length(0, MaxPathLength)),
		validation.Field(&c.HomeTitle, validation.Length(0, MaxTitleLength)),
		validation.Field(&c.IndexHeading, validation.Length(0, MaxTitleLength)),
		validation.Field(&c.Date, validation.Length(0, MaxDateLength)),
		validation.Field(&c.InlineStyle, validation.When(c.NoStyle, validation.Empty.Error("cannot be combined with noStyle"))),
	)
}

// Validate validates the title section.
func (c TitleConfig) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Policy, validation.In(TitlePolicies...)),
		validation.Field(&c.Language, validation.By(languageTag)),
	)
}

// Validate validates the links section.
func (c LinksConfig) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Convention, validation.In(LinkConventions...)),
	)
}

// Validate validates the citations section.
func (c CitationsConfig) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Bibliography,
			validation.When(c.Enabled, validation.Required.Error("is required when citations are enabled")),
			validation.Length(0, MaxPathLength),
		),
		validation.Field(&c.Style, validation.Length(0, MaxPathLength)),
	)
}

// Validate validates the assets section.
func (c AssetsConfig) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.BasePath, validation.Length(0, MaxPathLength)),
	)
}

// Validate validates the TOC section.
func (c TOCConfig) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Title, validation.Length(0, MaxTitleLength)),
		validation.Field(&c.MinDepth, validation.Min(1), validation.Max(6)),
		validation.Field(&c.MaxDepth, validation.Min(c.MinDepth), validation.Max(6)),
	)
}

// languageTag is an ozzo rule accepting empty strings and valid BCP 47 tags.
func languageTag(value any) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	if _, err := language.Parse(s); err != nil {
		return fmt.Errorf("must be a BCP 47 language tag: %v", err)
	}
	return nil
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Output: OutputConfig{DefaultDir: "output"},
		Site: SiteConfig{
			HomeTitle:    "Home",
			IndexHeading: "Contents",
		},
		Title: TitleConfig{Policy: "capitalize", Language: "en"},
		Links: LinksConfig{Convention: "alias-target"},
		TOC:   TOCConfig{Title: "Contents", MinDepth: 2, MaxDepth: 3},
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Fields absent from the file keep their DefaultConfig values, and ${VAR}
// references are expanded from the environment before parsing.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !isFilePath(nameOrPath) {
		var err error
		if configPath, err = resolveConfigPath(nameOrPath); err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict([]byte(os.ExpandEnv(string(data))), cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// isFilePath returns true if the string looks like a file path.
func isFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, ~/.config/go-notesite/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	dirs := []string{""}
	if userConfigDir, err := os.UserConfigDir(); err == nil {
		dirs = append(dirs, filepath.Join(userConfigDir, configDirName))
	}

	var tried []string
	for _, dir := range dirs {
		for _, ext := range extensions {
			p := filepath.Join(dir, name+ext)
			if fileutil.FileExists(p) {
				return p, nil
			}
			tried = append(tried, p)
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(tried, ", "))
}

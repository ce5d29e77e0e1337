package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/fatih/color"
	flag "github.com/spf13/pflag"

	notesite "github.com/alnah/go-notesite"
	"github.com/alnah/go-notesite/internal/config"
	"github.com/alnah/go-notesite/internal/hints"
)

// Sentinel errors for CLI operations.
var (
	ErrNoInput = errors.New("no input directory specified")
	ErrUsage   = errors.New("invalid usage")
	ErrEnvFile = errors.New("failed to read env file")
)

// defaultOutputDir is used when neither -o nor the config names one.
const defaultOutputDir = "output"

// runBuild orchestrates a site build.
func runBuild(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseBuildFlags(args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}
	if len(positional) > 1 {
		return fmt.Errorf("%w: expected one notes directory, got %d", ErrUsage, len(positional))
	}

	dotenv, err := readEnvFile(flags.common.envFile)
	if err != nil {
		return err
	}
	if !flags.common.quiet {
		warnUnknownEnvVars(env.Stderr, env.Environ(), dotenv)
	}
	envCfg := loadEnvConfig(env, dotenv)

	cfg, err := loadConfig(flags.common.config, envCfg)
	if err != nil {
		return err
	}
	applyEnvConfig(envCfg, cfg)
	mergeFlags(flags, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	inputDir, err := resolveInputDir(positional, cfg)
	if err != nil {
		return err
	}
	outputDir := resolveOutputDir(flags.output, cfg)

	logger := newLogger(env.Stderr, flags.common)
	opts, err := buildOptions(cfg, flags, logger, env)
	if err != nil {
		return err
	}

	gen, err := notesite.NewGenerator(opts...)
	if err != nil {
		return withHint(err)
	}

	result, err := gen.Build(ctx, inputDir, outputDir)
	if err != nil {
		return withHint(err)
	}

	printResult(env.Stdout, result, flags.common)
	return nil
}

// loadConfig loads the config named by --config, else NOTESITE_CONFIG, else
// returns the defaults.
func loadConfig(name string, envCfg *envConfig) (*config.Config, error) {
	if name == "" {
		name = envCfg.ConfigPath
	}
	if name == "" {
		return config.DefaultConfig(), nil
	}

	cfg, err := config.LoadConfig(name)
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) {
			return nil, fmt.Errorf("loading config: %w%s", err, hints.ForConfigNotFound(searchedPaths(err)))
		}
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// searchedPaths extracts the "tried a, b" list from a config not found error.
func searchedPaths(err error) []string {
	_, tried, ok := strings.Cut(err.Error(), "tried ")
	if !ok {
		return nil
	}
	return strings.Split(tried, ", ")
}

// mergeFlags applies CLI flags over config values. Only flags that were set
// (non-zero) override.
func mergeFlags(f *buildFlags, cfg *config.Config) {
	override := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}

	override(&cfg.Output.DefaultDir, f.output)
	override(&cfg.Site.Template, f.site.template)
	override(&cfg.Site.Style, f.site.style)
	override(&cfg.Site.HomeTitle, f.site.homeTitle)
	override(&cfg.Site.IndexHeading, f.site.indexHeading)
	override(&cfg.Site.Date, f.site.date)
	override(&cfg.Assets.BasePath, f.site.assetPath)
	override(&cfg.Title.Policy, f.content.titlePolicy)
	override(&cfg.Title.Language, f.content.language)
	override(&cfg.Links.Convention, f.content.linkConvention)
	override(&cfg.Citations.Style, f.citations.style)
	override(&cfg.TOC.Title, f.toc.title)

	// The two style modes are exclusive; the flag given wins over the config.
	if f.site.noStyle {
		cfg.Site.NoStyle = true
		cfg.Site.InlineStyle = false
	}
	if f.site.inlineStyle {
		cfg.Site.InlineStyle = true
		cfg.Site.NoStyle = false
	}

	if f.citations.bibliography != "" {
		cfg.Citations.Bibliography = f.citations.bibliography
		cfg.Citations.Enabled = true
	}
	if f.citations.disabled {
		cfg.Citations.Enabled = false
	}

	if f.toc.minDepth != 0 {
		cfg.TOC.MinDepth = f.toc.minDepth
	}
	if f.toc.maxDepth != 0 {
		cfg.TOC.MaxDepth = f.toc.maxDepth
	}
	if f.toc.enabled || f.toc.title != "" || f.toc.minDepth != 0 || f.toc.maxDepth != 0 {
		cfg.TOC.Enabled = true
	}
	if f.toc.disabled {
		cfg.TOC.Enabled = false
	}
}

// resolveInputDir returns the positional notes directory, else the config's.
func resolveInputDir(args []string, cfg *config.Config) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if cfg.Input.DefaultDir != "" {
		return cfg.Input.DefaultDir, nil
	}
	return "", fmt.Errorf("%w%s", ErrNoInput, hints.ForInputDirectory())
}

// resolveOutputDir returns -o, else the config's output directory, else
// defaultOutputDir.
func resolveOutputDir(flagOutput string, cfg *config.Config) string {
	if flagOutput != "" {
		return flagOutput
	}
	if cfg.Output.DefaultDir != "" {
		return cfg.Output.DefaultDir
	}
	return defaultOutputDir
}

// newLogger returns a text logger on w. -q keeps errors only, -v adds debug
// output.
func newLogger(w io.Writer, f commonFlags) *slog.Logger {
	level := slog.LevelWarn
	switch {
	case f.quiet:
		level = slog.LevelError
	case f.verbose:
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// buildOptions maps the merged configuration to generator options.
func buildOptions(cfg *config.Config, f *buildFlags, logger *slog.Logger, env *Environment) ([]notesite.Option, error) {
	policy, err := notesite.ParseTitlePolicy(cfg.Title.Policy)
	if err != nil {
		return nil, err
	}
	convention, err := notesite.ParseLinkConvention(cfg.Links.Convention)
	if err != nil {
		return nil, err
	}

	opts := []notesite.Option{
		notesite.WithLogger(logger),
		notesite.WithClock(env.Now),
		notesite.WithTitlePolicy(policy),
		notesite.WithLanguage(cfg.Title.Language),
		notesite.WithLinkConvention(convention),
		notesite.WithAssetPath(cfg.Assets.BasePath),
		notesite.WithTemplate(cfg.Site.Template),
		notesite.WithStyle(cfg.Site.Style),
		notesite.WithHomeTitle(cfg.Site.HomeTitle),
		notesite.WithIndexHeading(cfg.Site.IndexHeading),
		notesite.WithDate(cfg.Site.Date),
	}

	switch {
	case cfg.Site.NoStyle:
		opts = append(opts, notesite.WithoutStyle())
	case cfg.Site.InlineStyle:
		opts = append(opts, notesite.WithInlineStyle())
	}

	if cfg.Citations.Enabled && cfg.Citations.Bibliography != "" {
		opts = append(opts, notesite.WithBibliography(cfg.Citations.Bibliography, cfg.Citations.Style))
	}

	if cfg.TOC.Enabled && !f.toc.disabled {
		opts = append(opts, notesite.WithTOC(&notesite.TOC{
			Title:    cfg.TOC.Title,
			MinDepth: cfg.TOC.MinDepth,
			MaxDepth: cfg.TOC.MaxDepth,
		}))
	}

	return opts, nil
}

// withHint appends an actionable hint to errors users can fix themselves.
func withHint(err error) error {
	var hint string
	switch {
	case errors.Is(err, notesite.ErrInputNotFound), errors.Is(err, notesite.ErrInputNotDir):
		hint = hints.ForInputDirectory()
	case errors.Is(err, notesite.ErrSameDirectory):
		hint = hints.ForSameDirectory()
	case errors.Is(err, notesite.ErrOutputDir):
		hint = hints.ForOutputDirectory()
	case errors.Is(err, notesite.ErrTemplateNotFound):
		hint = hints.ForTemplateNotFound()
	case errors.Is(err, notesite.ErrBibliography):
		hint = hints.ForBibliography()
	default:
		return err
	}
	return fmt.Errorf("%w%s", err, hint)
}

// printResult prints the build summary and diagnostics.
func printResult(w io.Writer, r *notesite.BuildResult, f commonFlags) {
	if f.quiet {
		return
	}

	warn := color.New(color.FgYellow)
	for _, d := range r.Diagnostics {
		_, _ = warn.Fprintf(w, "warning: %s\n", d)
	}
	for _, name := range r.Skipped {
		_, _ = warn.Fprintf(w, "skipped: %s\n", name)
	}

	if f.verbose {
		for _, p := range r.Pages {
			fmt.Fprintf(w, "  page   %s (%s)\n", p.Filename, p.Title)
		}
		for _, a := range r.Assets {
			fmt.Fprintf(w, "  asset  %s\n", a)
		}
	}

	_, _ = color.New(color.FgGreen).Fprintf(w, "Site generated in %s", r.OutputDir)
	fmt.Fprintf(w, " (%d pages, %d assets)\n", len(r.Pages), len(r.Assets))
}

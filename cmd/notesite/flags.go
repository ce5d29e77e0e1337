package main

import (
	"os"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	envFile string
	quiet   bool
	verbose bool
}

// siteFlags holds page layout flags.
type siteFlags struct {
	template     string
	style        string
	assetPath    string
	noStyle      bool
	inlineStyle  bool
	homeTitle    string
	indexHeading string
	date         string
}

// contentFlags holds flags changing how notes are read.
type contentFlags struct {
	titlePolicy    string
	language       string
	linkConvention string
}

// citationFlags holds bibliography flags.
type citationFlags struct {
	bibliography string
	style        string
	disabled     bool
}

// tocFlags holds table of contents flags.
type tocFlags struct {
	enabled  bool
	title    string
	minDepth int
	maxDepth int
	disabled bool
}

// buildFlags holds all flags for the build command.
type buildFlags struct {
	common    commonFlags
	output    string
	site      siteFlags
	content   contentFlags
	citations citationFlags
	toc       tocFlags
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.StringVar(&f.envFile, "env-file", "", "load NOTESITE_* variables from a .env file")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show every page and asset")
}

// addSiteFlags adds page layout flags to a FlagSet.
func addSiteFlags(fs *flag.FlagSet, f *siteFlags) {
	fs.StringVar(&f.template, "template", "", "page template name or .html path")
	fs.StringVar(&f.style, "style", "", "stylesheet name or .css path")
	fs.StringVar(&f.assetPath, "asset-path", "", "custom asset directory")
	fs.BoolVar(&f.noStyle, "no-style", false, "do not write style.css")
	fs.BoolVar(&f.inlineStyle, "inline-style", false, "embed the stylesheet in every page")
	fs.StringVar(&f.homeTitle, "home-title", "", "title of index.html")
	fs.StringVar(&f.indexHeading, "index-heading", "", "heading of the page list on index.html")
	fs.StringVar(&f.date, "date", "", "page date: auto, auto:FORMAT, modified, or literal")
}

// addContentFlags adds note reading flags to a FlagSet.
func addContentFlags(fs *flag.FlagSet, f *contentFlags) {
	fs.StringVar(&f.titlePolicy, "title-policy", "", "page titles: capitalize, title, ap, chicago, none")
	fs.StringVar(&f.language, "lang", "", "language tag for title casing (e.g. en, tr)")
	fs.StringVar(&f.linkConvention, "links", "", "wiki-link order: alias-target, target-alias")
}

// addCitationFlags adds bibliography flags to a FlagSet.
func addCitationFlags(fs *flag.FlagSet, f *citationFlags) {
	fs.StringVarP(&f.bibliography, "bibliography", "b", "", "bibliography file (.bib, .json, .yaml)")
	fs.StringVar(&f.style, "csl-style", "", "citation style YAML file")
	fs.BoolVar(&f.disabled, "no-citations", false, "leave citation markers unchanged")
}

// addTOCFlags adds TOC flags to a FlagSet.
func addTOCFlags(fs *flag.FlagSet, f *tocFlags) {
	fs.BoolVar(&f.enabled, "toc", false, "add a table of contents to every page")
	fs.StringVar(&f.title, "toc-title", "", "table of contents heading")
	fs.IntVar(&f.minDepth, "toc-min-depth", 0, "min heading depth for TOC (1-6, default: 2)")
	fs.IntVar(&f.maxDepth, "toc-max-depth", 0, "max heading depth for TOC (1-6, default: 3)")
	fs.BoolVar(&f.disabled, "no-toc", false, "disable table of contents")
}

// newBuildFlagSet registers every build flag on a new FlagSet.
// Completion uses the same FlagSet so the two never drift apart.
func newBuildFlagSet(f *buildFlags) *flag.FlagSet {
	fs := flag.NewFlagSet("build", flag.ContinueOnError)

	fs.StringVarP(&f.output, "output", "o", "", "output directory (default: output)")

	addCommonFlags(fs, &f.common)
	addSiteFlags(fs, &f.site)
	addContentFlags(fs, &f.content)
	addCitationFlags(fs, &f.citations)
	addTOCFlags(fs, &f.toc)

	return fs
}

// parseBuildFlags parses build command flags and returns positional args.
func parseBuildFlags(args []string) (*buildFlags, []string, error) {
	f := &buildFlags{}
	fs := newBuildFlagSet(f)
	fs.Usage = func() { printBuildUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

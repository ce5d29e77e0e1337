package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: notesite <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  build       Generate a static site from a notes directory")
	fmt.Fprintln(w, "  version     Show version information")
	fmt.Fprintln(w, "  help        Show help for a command")
	fmt.Fprintln(w, "  completion  Generate shell completion script")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'notesite help <command>' for details on a specific command.")
}

// printBuildUsage prints usage for the build command.
func printBuildUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: notesite build <notes-dir> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Generate one HTML page per note plus index.html and style.css.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  notes-dir    Directory of .md notes (optional if config has input.defaultDir)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <dir>        Output directory (default: output)")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "      --env-file <path>     Load NOTESITE_* variables (default: .env if present)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Site:")
	fmt.Fprintln(w, "      --template <s>        Page template name or .html path")
	fmt.Fprintln(w, "      --style <s>           Stylesheet name or .css path")
	fmt.Fprintln(w, "      --asset-path <dir>    Custom asset directory (styles/, templates/)")
	fmt.Fprintln(w, "      --no-style            Do not write style.css")
	fmt.Fprintln(w, "      --inline-style        Embed the stylesheet in every page")
	fmt.Fprintln(w, "      --home-title <s>      Title of index.html")
	fmt.Fprintln(w, "      --index-heading <s>   Heading of the page list on index.html")
	fmt.Fprintln(w, "      --date <s>            Date: \"auto\", \"auto:FORMAT\", \"modified\", or literal")
	fmt.Fprintln(w, "                            Tokens: YYYY, YY, MMMM, MMM, MM, M, DD, D")
	fmt.Fprintln(w, "                            Presets (case-insensitive): iso, european, us, long")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Notes:")
	fmt.Fprintln(w, "      --links <s>           Wiki-link order: alias-target, target-alias")
	fmt.Fprintln(w, "      --title-policy <s>    Titles: capitalize, title, ap, chicago, none")
	fmt.Fprintln(w, "      --lang <tag>          Language for title casing (e.g. en, tr)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Citations:")
	fmt.Fprintln(w, "  -b, --bibliography <path> BibTeX, CSL JSON or CSL YAML file")
	fmt.Fprintln(w, "      --csl-style <path>    Citation style YAML file")
	fmt.Fprintln(w, "      --no-citations        Leave [@key] markers unchanged")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Table of Contents:")
	fmt.Fprintln(w, "      --toc                 Add a table of contents to every page")
	fmt.Fprintln(w, "      --toc-title <s>       TOC heading text")
	fmt.Fprintln(w, "      --toc-min-depth <n>   Min heading depth (1-6)")
	fmt.Fprintln(w, "      --toc-max-depth <n>   Max heading depth (1-6)")
	fmt.Fprintln(w, "      --no-toc              Disable table of contents")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             List every page and asset")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return
	}

	switch args[0] {
	case "build":
		printBuildUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: notesite version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: notesite help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	case "completion":
		printCompletionUsage(env.Stdout)
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
	}
}

package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	flag "github.com/spf13/pflag"
)

// Shell represents a supported shell for completion generation.
type Shell string

// Supported shells for completion.
const (
	ShellBash       Shell = "bash"
	ShellZsh        Shell = "zsh"
	ShellFish       Shell = "fish"
	ShellPowerShell Shell = "powershell"
)

// ErrUnsupportedShell is returned when an unknown shell is requested.
var ErrUnsupportedShell = errors.New("unsupported shell")

// programName is the command completions are registered for.
const programName = "notesite"

// shells lists completion targets in the order help shows them.
var shells = []string{string(ShellBash), string(ShellZsh), string(ShellFish), string(ShellPowerShell)}

// flagType represents the completion type for a flag.
type flagType int

const (
	flagString flagType = iota // default
	flagBool
	flagInt
	flagEnum // has predefined values
	flagFile // file with glob pattern
	flagDir  // directory
)

// flagDef describes a flag for completion purposes.
type flagDef struct {
	Long     string   // --output
	Short    string   // -o (empty if none)
	Type     flagType // completion type
	Desc     string   // help text
	Values   []string // for enum flags
	FileGlob string   // for file flags
}

// takesValue reports whether the flag consumes the next word.
func (f flagDef) takesValue() bool {
	return f.Type != flagBool
}

// commandDef describes a command for completion.
type commandDef struct {
	Name     string
	Desc     string
	Flags    []flagDef
	TakesDir bool     // accepts a directory argument
	Args     []string // fixed argument values (shells, command names)
}

// completionMeta holds completion-specific metadata for flags.
// Flag names, types and descriptions come from the FlagSet.
type completionMeta struct {
	Values   []string // enum values
	FileGlob string   // file glob pattern
	IsDir    bool     // directory completion
}

// flagCompletionMeta maps flag names to their completion metadata.
var flagCompletionMeta = map[string]completionMeta{
	// Enum flags
	"links":        {Values: []string{"alias-target", "target-alias"}},
	"title-policy": {Values: []string{"capitalize", "title", "ap", "chicago", "none"}},

	// File flags with glob patterns
	"config":       {FileGlob: "*.yaml,*.yml"},
	"env-file":     {FileGlob: "*.env,.env"},
	"style":        {FileGlob: "*.css"},
	"template":     {FileGlob: "*.html"},
	"bibliography": {FileGlob: "*.bib,*.json,*.yaml,*.yml"},
	"csl-style":    {FileGlob: "*.yaml,*.yml"},

	// Directory flags
	"output":     {IsDir: true},
	"asset-path": {IsDir: true},
}

// extractFlagsFromFlagSet extracts flag definitions from a pflag.FlagSet.
// Enriches with completion metadata from flagCompletionMeta.
func extractFlagsFromFlagSet(fs *flag.FlagSet) []flagDef {
	var flags []flagDef

	fs.VisitAll(func(f *flag.Flag) {
		fd := flagDef{
			Long:  f.Name,
			Short: f.Shorthand,
			Desc:  f.Usage,
		}

		switch f.Value.Type() {
		case "bool":
			fd.Type = flagBool
		case "int", "int8", "int16", "int32", "int64", "uint", "uint8", "uint16", "uint32", "uint64":
			fd.Type = flagInt
		default:
			fd.Type = flagString
		}

		if meta, ok := flagCompletionMeta[f.Name]; ok {
			switch {
			case len(meta.Values) > 0:
				fd.Type = flagEnum
				fd.Values = meta.Values
			case meta.FileGlob != "":
				fd.Type = flagFile
				fd.FileGlob = meta.FileGlob
			case meta.IsDir:
				fd.Type = flagDir
			}
		}

		flags = append(flags, fd)
	})

	return flags
}

// getCommands returns the command registry for completion.
// Build flags come from the same FlagSet the build command parses.
func getCommands() []commandDef {
	flags := extractFlagsFromFlagSet(newBuildFlagSet(&buildFlags{}))

	return []commandDef{
		{
			Name:     "build",
			Desc:     "Generate a static site from a notes directory",
			Flags:    flags,
			TakesDir: true,
		},
		{
			Name: "version",
			Desc: "Show version information",
		},
		{
			Name: "help",
			Desc: "Show help for a command",
			Args: []string{"build", "version", "help", "completion"},
		},
		{
			Name: "completion",
			Desc: "Generate shell completion script",
			Args: shells,
		},
	}
}

// GenerateCompletion writes shell completion script to w.
// Returns error if shell is unsupported or write fails.
func GenerateCompletion(w io.Writer, shell Shell) error {
	var gen func(*bytes.Buffer, []commandDef)
	switch shell {
	case ShellBash:
		gen = generateBash
	case ShellZsh:
		gen = generateZsh
	case ShellFish:
		gen = generateFish
	case ShellPowerShell:
		gen = generatePowerShell
	default:
		return fmt.Errorf("%w: %q (supported: %s)", ErrUnsupportedShell, shell, strings.Join(shells, ", "))
	}

	var buf bytes.Buffer
	gen(&buf, getCommands())
	_, err := w.Write(buf.Bytes())
	return err
}

// commandNames returns the names of cmds separated by spaces.
func commandNames(cmds []commandDef) string {
	names := make([]string, len(cmds))
	for i, c := range cmds {
		names[i] = c.Name
	}
	return strings.Join(names, " ")
}

// flagWords returns "--long" and "-s" words for every flag.
func flagWords(flags []flagDef) string {
	var words []string
	for _, f := range flags {
		words = append(words, "--"+f.Long)
		if f.Short != "" {
			words = append(words, "-"+f.Short)
		}
	}
	sort.Strings(words)
	return strings.Join(words, " ")
}

// flagPattern returns the case pattern matching a flag, e.g. "-o|--output".
func flagPattern(f flagDef) string {
	if f.Short != "" {
		return "-" + f.Short + "|--" + f.Long
	}
	return "--" + f.Long
}

// globs splits a comma separated glob list.
func globs(pattern string) []string {
	return strings.Split(pattern, ",")
}

// ---------------------------------------------------------------------------
// Bash
// ---------------------------------------------------------------------------

func generateBash(b *bytes.Buffer, cmds []commandDef) {
	fn := "_" + programName

	fmt.Fprintf(b, "# bash completion for %s\n\n", programName)
	fmt.Fprintf(b, "%s() {\n", fn)
	b.WriteString("    local cur prev\n")
	b.WriteString("    cur=\"${COMP_WORDS[COMP_CWORD]}\"\n")
	b.WriteString("    prev=\"${COMP_WORDS[COMP_CWORD-1]}\"\n\n")
	b.WriteString("    if [[ ${COMP_CWORD} -eq 1 ]]; then\n")
	fmt.Fprintf(b, "        COMPREPLY=($(compgen -W \"%s\" -- \"${cur}\"))\n", commandNames(cmds))
	b.WriteString("        return\n")
	b.WriteString("    fi\n\n")
	b.WriteString("    case \"${COMP_WORDS[1]}\" in\n")

	for _, c := range cmds {
		fmt.Fprintf(b, "    %s)\n", c.Name)
		if len(c.Flags) > 0 {
			b.WriteString("        case \"${prev}\" in\n")
			for _, f := range c.Flags {
				if !f.takesValue() {
					continue
				}
				fmt.Fprintf(b, "        %s)\n", flagPattern(f))
				switch f.Type {
				case flagEnum:
					fmt.Fprintf(b, "            COMPREPLY=($(compgen -W \"%s\" -- \"${cur}\"))\n", strings.Join(f.Values, " "))
				case flagFile:
					fmt.Fprintf(b, "            # %s\n", strings.Join(globs(f.FileGlob), " "))
					b.WriteString("            COMPREPLY=($(compgen -f -- \"${cur}\"))\n")
				case flagDir:
					b.WriteString("            COMPREPLY=($(compgen -d -- \"${cur}\"))\n")
				default:
					b.WriteString("            COMPREPLY=()\n")
				}
				b.WriteString("            return\n")
				b.WriteString("            ;;\n")
			}
			b.WriteString("        esac\n")
			b.WriteString("        if [[ ${cur} == -* ]]; then\n")
			fmt.Fprintf(b, "            COMPREPLY=($(compgen -W \"%s\" -- \"${cur}\"))\n", flagWords(c.Flags))
			b.WriteString("            return\n")
			b.WriteString("        fi\n")
		}
		switch {
		case c.TakesDir:
			b.WriteString("        COMPREPLY=($(compgen -d -- \"${cur}\"))\n")
		case len(c.Args) > 0:
			fmt.Fprintf(b, "        COMPREPLY=($(compgen -W \"%s\" -- \"${cur}\"))\n", strings.Join(c.Args, " "))
		}
		b.WriteString("        ;;\n")
	}

	b.WriteString("    esac\n")
	b.WriteString("}\n\n")
	fmt.Fprintf(b, "complete -F %s %s\n", fn, programName)
}

// ---------------------------------------------------------------------------
// Zsh
// ---------------------------------------------------------------------------

// zshEscape escapes text for a single-quoted _arguments entry.
var zshEscape = strings.NewReplacer(`'`, `'\''`, `[`, `\[`, `]`, `\]`, `:`, `\:`)

// zshAction returns the _arguments action completing a flag's value.
func zshAction(f flagDef) string {
	switch f.Type {
	case flagEnum:
		return ":value:(" + strings.Join(f.Values, " ") + ")"
	case flagFile:
		return ":file:_files -g '(" + strings.Join(globs(f.FileGlob), "|") + ")'"
	case flagDir:
		return ":directory:_files -/"
	case flagBool:
		return ""
	}
	return ":value: "
}

func generateZsh(b *bytes.Buffer, cmds []commandDef) {
	fn := "_" + programName

	fmt.Fprintf(b, "#compdef %s\n\n", programName)
	fmt.Fprintf(b, "%s() {\n", fn)
	b.WriteString("    local -a commands\n")
	b.WriteString("    commands=(\n")
	for _, c := range cmds {
		fmt.Fprintf(b, "        '%s:%s'\n", c.Name, zshEscape.Replace(c.Desc))
	}
	b.WriteString("    )\n\n")
	b.WriteString("    _arguments -C '1:command:->command' '*::arg:->args'\n\n")
	b.WriteString("    case $state in\n")
	b.WriteString("    command)\n")
	b.WriteString("        _describe 'command' commands\n")
	b.WriteString("        ;;\n")
	b.WriteString("    args)\n")
	b.WriteString("        case $words[1] in\n")

	for _, c := range cmds {
		if len(c.Flags) == 0 && !c.TakesDir && len(c.Args) == 0 {
			continue
		}
		fmt.Fprintf(b, "        %s)\n", c.Name)
		b.WriteString("            _arguments")
		for _, f := range c.Flags {
			desc := zshEscape.Replace(f.Desc)
			action := zshAction(f)
			if f.Short != "" {
				fmt.Fprintf(b, " \\\n                '(-%s --%s)'{-%s,--%s}'[%s]%s'", f.Short, f.Long, f.Short, f.Long, desc, action)
			} else {
				fmt.Fprintf(b, " \\\n                '--%s[%s]%s'", f.Long, desc, action)
			}
		}
		switch {
		case c.TakesDir:
			b.WriteString(" \\\n                '1:notes directory:_files -/'")
		case len(c.Args) > 0:
			fmt.Fprintf(b, " \\\n                '1:argument:(%s)'", strings.Join(c.Args, " "))
		}
		b.WriteString("\n            ;;\n")
	}

	b.WriteString("        esac\n")
	b.WriteString("        ;;\n")
	b.WriteString("    esac\n")
	b.WriteString("}\n\n")
	fmt.Fprintf(b, "if [ \"$funcstack[1]\" = \"%s\" ]; then\n", fn)
	fmt.Fprintf(b, "    %s \"$@\"\n", fn)
	b.WriteString("else\n")
	fmt.Fprintf(b, "    compdef %s %s\n", fn, programName)
	b.WriteString("fi\n")
}

// ---------------------------------------------------------------------------
// Fish
// ---------------------------------------------------------------------------

// fishEscape escapes text for a single-quoted fish string.
var fishEscape = strings.NewReplacer(`\`, `\\`, `'`, `\'`)

func generateFish(b *bytes.Buffer, cmds []commandDef) {
	fmt.Fprintf(b, "# fish completion for %s\n\n", programName)
	fmt.Fprintf(b, "complete -c %s -f\n\n", programName)

	for _, c := range cmds {
		fmt.Fprintf(b, "complete -c %s -n __fish_use_subcommand -a %s -d '%s'\n",
			programName, c.Name, fishEscape.Replace(c.Desc))
	}

	for _, c := range cmds {
		cond := fmt.Sprintf("-n '__fish_seen_subcommand_from %s'", c.Name)
		if len(c.Flags) > 0 || c.TakesDir || len(c.Args) > 0 {
			b.WriteString("\n")
		}

		for _, f := range c.Flags {
			fmt.Fprintf(b, "complete -c %s %s", programName, cond)
			if f.Short != "" {
				fmt.Fprintf(b, " -s %s", f.Short)
			}
			fmt.Fprintf(b, " -l %s", f.Long)
			switch f.Type {
			case flagEnum:
				fmt.Fprintf(b, " -x -a '%s'", strings.Join(f.Values, " "))
			case flagFile:
				b.WriteString(" -r -F")
			case flagDir:
				b.WriteString(" -x -a '(__fish_complete_directories)'")
			case flagString, flagInt:
				b.WriteString(" -x")
			}
			fmt.Fprintf(b, " -d '%s'\n", fishEscape.Replace(f.Desc))
		}

		switch {
		case c.TakesDir:
			fmt.Fprintf(b, "complete -c %s %s -a '(__fish_complete_directories)'\n", programName, cond)
		case len(c.Args) > 0:
			fmt.Fprintf(b, "complete -c %s %s -x -a '%s'\n", programName, cond, strings.Join(c.Args, " "))
		}
	}
}

// ---------------------------------------------------------------------------
// PowerShell
// ---------------------------------------------------------------------------

// psEscape escapes text for a single-quoted PowerShell string.
var psEscape = strings.NewReplacer(`'`, `''`)

// psList renders values as a PowerShell array literal.
func psList(values []string) string {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = "'" + psEscape.Replace(v) + "'"
	}
	return "@(" + strings.Join(quoted, ", ") + ")"
}

func generatePowerShell(b *bytes.Buffer, cmds []commandDef) {
	fmt.Fprintf(b, "# PowerShell completion for %s\n\n", programName)
	fmt.Fprintf(b, "Register-ArgumentCompleter -Native -CommandName %s -ScriptBlock {\n", programName)
	b.WriteString("    param($wordToComplete, $commandAst, $cursorPosition)\n\n")

	b.WriteString("    $commands = [ordered]@{\n")
	for _, c := range cmds {
		fmt.Fprintf(b, "        '%s' = '%s'\n", c.Name, psEscape.Replace(c.Desc))
	}
	b.WriteString("    }\n\n")

	b.WriteString("    $flags = @{\n")
	for _, c := range cmds {
		if len(c.Flags) == 0 {
			continue
		}
		fmt.Fprintf(b, "        '%s' = [ordered]@{\n", c.Name)
		for _, f := range c.Flags {
			fmt.Fprintf(b, "            '--%s' = '%s'\n", f.Long, psEscape.Replace(f.Desc))
		}
		b.WriteString("        }\n")
	}
	b.WriteString("    }\n\n")

	b.WriteString("    $values = @{\n")
	for _, c := range cmds {
		for _, f := range c.Flags {
			if f.Type != flagEnum {
				continue
			}
			fmt.Fprintf(b, "        '--%s' = %s\n", f.Long, psList(f.Values))
		}
	}
	b.WriteString("    }\n\n")

	b.WriteString("    $arguments = @{\n")
	for _, c := range cmds {
		if len(c.Args) == 0 {
			continue
		}
		fmt.Fprintf(b, "        '%s' = %s\n", c.Name, psList(c.Args))
	}
	b.WriteString("    }\n\n")

	b.WriteString(`    $elements = @($commandAst.CommandElements | ForEach-Object { $_.ToString() })
    if ($wordToComplete -ne '') {
        $elements = @($elements | Select-Object -SkipLast 1)
    }

    $complete = {
        param($items)
        $items | Where-Object { $_.Key -like "$wordToComplete*" } | ForEach-Object {
            [System.Management.Automation.CompletionResult]::new($_.Key, $_.Key, 'ParameterValue', $_.Value)
        }
    }

    if ($elements.Count -le 1) {
        & $complete $commands.GetEnumerator()
        return
    }

    $command = $elements[1]
    $prev = $elements[-1]
    if ($values.ContainsKey($prev)) {
        $values[$prev] | Where-Object { $_ -like "$wordToComplete*" } | ForEach-Object {
            [System.Management.Automation.CompletionResult]::new($_, $_, 'ParameterValue', $_)
        }
        return
    }

    if ($wordToComplete -like '-*' -and $flags.ContainsKey($command)) {
        & $complete $flags[$command].GetEnumerator()
        return
    }

    if ($arguments.ContainsKey($command)) {
        $arguments[$command] | Where-Object { $_ -like "$wordToComplete*" } | ForEach-Object {
            [System.Management.Automation.CompletionResult]::new($_, $_, 'ParameterValue', $_)
        }
    }
}
`)
}

// runCompletion handles the completion command.
func runCompletion(args []string, env *Environment) error {
	if len(args) == 0 {
		printCompletionUsage(env.Stdout)
		return nil
	}
	return GenerateCompletion(env.Stdout, Shell(args[0]))
}

// printCompletionUsage prints help for the completion command.
func printCompletionUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: notesite completion <shell>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Generate shell completion script for the specified shell.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Supported shells:")
	fmt.Fprintln(w, "  bash        Bash completion script")
	fmt.Fprintln(w, "  zsh         Zsh completion script")
	fmt.Fprintln(w, "  fish        Fish completion script")
	fmt.Fprintln(w, "  powershell  PowerShell completion script")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Installation:")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Bash:")
	fmt.Fprintln(w, "    # Add to ~/.bashrc:")
	fmt.Fprintln(w, "    eval \"$(notesite completion bash)\"")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Zsh:")
	fmt.Fprintln(w, "    # Add to ~/.zshrc (after compinit):")
	fmt.Fprintln(w, "    eval \"$(notesite completion zsh)\"")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Fish:")
	fmt.Fprintln(w, "    notesite completion fish > ~/.config/fish/completions/notesite.fish")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  PowerShell:")
	fmt.Fprintln(w, "    # Add to $PROFILE:")
	fmt.Fprintln(w, "    notesite completion powershell | Out-String | Invoke-Expression")
}

package notesite

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/frontmatter"

	"github.com/alnah/go-notesite/internal/fileutil"
)

// markdownExtensions are the file extensions treated as notes.
var markdownExtensions = []string{".md", ".markdown"}

// isMarkdown reports whether name has a note extension (case-insensitive).
func isMarkdown(name string) bool {
	ext := filepath.Ext(name)
	for _, md := range markdownExtensions {
		if strings.EqualFold(ext, md) {
			return true
		}
	}
	return false
}

// inventory is the top-level content of an input directory.
type inventory struct {
	notes  []string // note paths, sorted by file name
	assets []string // entry names of everything else
}

// discover lists the top level of dir. os.ReadDir sorts by file name so the
// result, and therefore the navigation order, is reproducible. Hidden
// directories (".obsidian", ".git") are skipped. Hidden files such as
// ".htaccess" are static assets and are never rendered as notes.
func discover(dir string) (inventory, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return inventory{}, fmt.Errorf("%w: %v", ErrInputNotFound, err)
	}

	var inv inventory
	for _, e := range entries {
		name := e.Name()
		hidden := fileutil.IsHidden(name)
		if hidden && e.IsDir() {
			continue
		}
		if !hidden && !e.IsDir() && isMarkdown(name) {
			inv.notes = append(inv.notes, filepath.Join(dir, name))
			continue
		}
		inv.assets = append(inv.assets, name)
	}
	return inv, nil
}

// noteMeta is the frontmatter recognized in notes. Other keys are ignored.
type noteMeta struct {
	Title string `yaml:"title" toml:"title"`
	Draft bool   `yaml:"draft" toml:"draft"`
}

// readNote reads a note and strips its frontmatter. Malformed frontmatter is
// reported through warn and the whole file becomes the body.
func readNote(path string, title *titler, warn func(msg string, args ...any)) (Note, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path comes from the input directory listing
	if err != nil {
		return Note{}, fmt.Errorf("%w: %v", ErrNoteRead, err)
	}
	info, err := os.Stat(path)
	if err != nil {
		return Note{}, fmt.Errorf("%w: %v", ErrNoteRead, err)
	}

	name := filepath.Base(path)
	note := Note{
		Name:     name,
		Path:     path,
		Stem:     fileutil.Stem(name),
		Body:     string(data),
		Modified: info.ModTime(),
	}

	var meta noteMeta
	body, err := frontmatter.Parse(bytes.NewReader(data), &meta)
	if err != nil {
		warn("ignoring malformed frontmatter", "note", name, "error", err)
	} else {
		note.Body = string(body)
		note.Draft = meta.Draft
	}

	note.Title = title.Title(note.Stem)
	if t := strings.TrimSpace(meta.Title); t != "" && err == nil {
		note.Title = t
	}
	return note, nil
}

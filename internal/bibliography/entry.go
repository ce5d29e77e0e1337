package bibliography

import (
	"log/slog"
	"strings"
)

// Name is one author or editor.
type Name struct {
	Family  string
	Given   string
	Literal string // institutional or unparsed name
}

// Short returns the name as cited in text: the family name, else the literal.
func (n Name) Short() string {
	if n.Family != "" {
		return n.Family
	}
	return n.Literal
}

// Entry is one bibliographic reference.
type Entry struct {
	Key            string
	Type           string // CSL-like type: article, book, chapter...
	Title          string
	Authors        []Name
	Year           string
	ContainerTitle string // journal or book title
	Publisher      string
	URL            string
	DOI            string
}

// valid reports whether the entry carries enough data to be cited.
func (e Entry) valid() bool {
	return e.Key != "" && (e.Title != "" || len(e.Authors) > 0)
}

// Library is a read-only set of entries keyed by citation key.
type Library struct {
	entries map[string]Entry
	keys    []string
}

// NewLibrary builds a library. Entries without a key, or without both title
// and authors, are skipped with a warning. A duplicate key keeps the first
// entry.
func NewLibrary(entries []Entry, logger *slog.Logger) *Library {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	lib := &Library{entries: make(map[string]Entry, len(entries))}
	for _, e := range entries {
		if !e.valid() {
			logger.Warn("skipping bibliography entry without title or author", "key", e.Key)
			continue
		}
		if _, dup := lib.entries[e.Key]; dup {
			logger.Warn("duplicate bibliography key, keeping the first entry", "key", e.Key)
			continue
		}
		lib.entries[e.Key] = e
		lib.keys = append(lib.keys, e.Key)
	}
	return lib
}

// Lookup returns the entry for key.
func (l *Library) Lookup(key string) (Entry, bool) {
	e, ok := l.entries[strings.TrimSpace(key)]
	return e, ok
}

// Len returns the number of entries.
func (l *Library) Len() int {
	return len(l.keys)
}

// Keys returns citation keys in load order.
func (l *Library) Keys() []string {
	return append([]string(nil), l.keys...)
}

package bibliography

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/nickng/bibtex"

	"github.com/alnah/go-notesite/internal/dateutil"
)

// bibtexTypes maps BibTeX entry types to the types used by Entry.
// Types absent from the map are kept as written.
var bibtexTypes = map[string]string{
	"online":        "article",
	"webpage":       "article",
	"inbook":        "chapter",
	"incollection":  "chapter",
	"inproceedings": "paper-conference",
	"phdthesis":     "thesis",
	"mastersthesis": "thesis",
}

// nameSeparator splits BibTeX author lists on the "and" keyword.
var nameSeparator = regexp.MustCompile(`(?i)\s+and\s+`)

// ParseBibTeX reads BibTeX entries. Fields the Entry type has no use for
// (keywords, file, langid...) are ignored.
func ParseBibTeX(r io.Reader) ([]Entry, error) {
	bib, err := bibtex.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBibliographyParse, err)
	}

	entries := make([]Entry, 0, len(bib.Entries))
	for _, be := range bib.Entries {
		entries = append(entries, bibtexEntry(be))
	}
	return entries, nil
}

func bibtexEntry(be *bibtex.BibEntry) Entry {
	raw := make(map[string]string, len(be.Fields))
	for name, v := range be.Fields {
		if v != nil {
			raw[strings.ToLower(name)] = strings.TrimSpace(v.String())
		}
	}

	// first returns the first non-empty field among names.
	first := func(names ...string) string {
		for _, name := range names {
			if v := raw[name]; v != "" {
				return v
			}
		}
		return ""
	}
	field := func(names ...string) string {
		return cleanBibValue(first(names...))
	}

	typ := strings.ToLower(be.Type)
	if mapped, ok := bibtexTypes[typ]; ok {
		typ = mapped
	}

	year := field("year")
	if year == "" {
		year = dateutil.Year(field("date"))
	}

	return Entry{
		Key:            strings.TrimSpace(be.CiteName),
		Type:           typ,
		Title:          field("title"),
		Authors:        parseBibNames(first("author", "editor")),
		Year:           year,
		ContainerTitle: field("journaltitle", "journal", "booktitle"),
		Publisher:      field("publisher", "institution", "organization"),
		URL:            field("url"),
		DOI:            field("doi"),
	}
}

// cleanBibValue drops TeX grouping braces and collapses whitespace.
func cleanBibValue(s string) string {
	s = strings.NewReplacer("{", "", "}", "").Replace(s)
	return strings.Join(strings.Fields(s), " ")
}

// parseBibNames splits "Smith, John and {ACME Corp} and Jane Doe".
func parseBibNames(raw string) []Name {
	if raw == "" {
		return nil
	}

	var names []Name
	for _, part := range nameSeparator.Split(raw, -1) {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if strings.HasPrefix(part, "{") && strings.HasSuffix(part, "}") {
			names = append(names, Name{Literal: cleanBibValue(part)})
			continue
		}

		part = cleanBibValue(part)
		if family, given, ok := strings.Cut(part, ","); ok {
			names = append(names, Name{Family: strings.TrimSpace(family), Given: strings.TrimSpace(given)})
			continue
		}
		fields := strings.Fields(part)
		if len(fields) == 1 {
			names = append(names, Name{Family: fields[0]})
			continue
		}
		names = append(names, Name{
			Family: fields[len(fields)-1],
			Given:  strings.Join(fields[:len(fields)-1], " "),
		})
	}
	return names
}

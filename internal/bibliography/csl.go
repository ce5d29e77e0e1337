package bibliography

import (
	"fmt"
	"strings"

	"github.com/alnah/go-notesite/internal/dateutil"
	"github.com/alnah/go-notesite/internal/yamlutil"
)

// MaxLibrarySize bounds CSL bibliography files. Exported Zotero libraries
// are far larger than configuration files.
const MaxLibrarySize = 64 << 20

// cslItem is a CSL-JSON item. JSON is valid YAML, so both encodings decode
// through the same struct.
type cslItem struct {
	ID             string    `yaml:"id"`
	Type           string    `yaml:"type"`
	Title          string    `yaml:"title"`
	Author         []cslName `yaml:"author"`
	Editor         []cslName `yaml:"editor"`
	Issued         any       `yaml:"issued"`
	ContainerTitle string    `yaml:"container-title"`
	Publisher      string    `yaml:"publisher"`
	URL            string    `yaml:"URL"`
	DOI            string    `yaml:"DOI"`
}

type cslName struct {
	Family  string `yaml:"family"`
	Given   string `yaml:"given"`
	Literal string `yaml:"literal"`
}

// cslDocument is the YAML front-matter layout: items under "references".
type cslDocument struct {
	References []cslItem `yaml:"references"`
}

// ParseCSL decodes CSL items given either as a top-level list or under a
// "references" key.
func ParseCSL(data []byte) ([]Entry, error) {
	var items []cslItem
	if err := yamlutil.UnmarshalLimit(data, &items, MaxLibrarySize); err != nil {
		var doc cslDocument
		if docErr := yamlutil.UnmarshalLimit(data, &doc, MaxLibrarySize); docErr != nil || doc.References == nil {
			return nil, fmt.Errorf("%w: %v", ErrBibliographyParse, err)
		}
		items = doc.References
	}

	entries := make([]Entry, 0, len(items))
	for _, it := range items {
		entries = append(entries, it.entry())
	}
	return entries, nil
}

func (it cslItem) entry() Entry {
	people := it.Author
	if len(people) == 0 {
		people = it.Editor
	}
	names := make([]Name, 0, len(people))
	for _, p := range people {
		names = append(names, Name{
			Family:  strings.TrimSpace(p.Family),
			Given:   strings.TrimSpace(p.Given),
			Literal: strings.TrimSpace(p.Literal),
		})
	}

	return Entry{
		Key:            strings.TrimSpace(it.ID),
		Type:           it.Type,
		Title:          strings.TrimSpace(it.Title),
		Authors:        names,
		Year:           cslYear(it.Issued),
		ContainerTitle: it.ContainerTitle,
		Publisher:      it.Publisher,
		URL:            it.URL,
		DOI:            it.DOI,
	}
}

// cslYear extracts the year from the forms "issued" takes in the wild:
// {date-parts: [[2020, 5]]}, {raw: "2020-05"}, {literal: "2020"}, "2020", 2020.
func cslYear(issued any) string {
	switch v := issued.(type) {
	case nil:
		return ""
	case string:
		return dateutil.Year(v)
	case map[string]any:
		if parts, ok := v["date-parts"].([]any); ok && len(parts) > 0 {
			if first, ok := parts[0].([]any); ok && len(first) > 0 {
				return dateutil.Year(fmt.Sprint(first[0]))
			}
		}
		for _, k := range []string{"raw", "literal"} {
			if raw, ok := v[k]; ok && raw != nil {
				return dateutil.Year(fmt.Sprint(raw))
			}
		}
		return ""
	default:
		return dateutil.Year(fmt.Sprint(v))
	}
}

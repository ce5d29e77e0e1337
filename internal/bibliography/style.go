package bibliography

import (
	"bytes"
	"embed"
	"fmt"
	"os"
	"strings"
	"text/template"

	"github.com/alnah/go-notesite/internal/yamlutil"
)

//go:embed styles/*.yaml
var builtinStyles embed.FS

// DefaultStyleName is the built-in APA-like style.
const DefaultStyleName = "apa"

// Style turns an entry into in-text citation text.
type Style struct {
	Name         string `yaml:"name"`
	Citation     string `yaml:"citation"`     // text/template over CitationData
	LocatorLabel string `yaml:"locatorLabel"` // "p."
	AndWord      string `yaml:"andWord"`      // joins two authors
	EtAl         string `yaml:"etAl"`
	EtAlMin      int    `yaml:"etAlMin"` // author count from which EtAl is used
	NoDate       string `yaml:"noDate"`  // year placeholder for undated entries

	tmpl *template.Template
}

// CitationData is the value the citation template executes on.
type CitationData struct {
	Key          string
	Authors      string // short author list: "Smith", "Smith & Doe", "Smith et al."
	Year         string
	Title        string
	Locator      string
	LocatorLabel string
	Entry        Entry
}

// DefaultStyle returns the built-in style.
func DefaultStyle() *Style {
	data, err := builtinStyles.ReadFile("styles/" + DefaultStyleName + ".yaml")
	if err != nil {
		panic(fmt.Sprintf("bibliography: built-in style missing: %v", err))
	}
	s, err := ParseStyle(data)
	if err != nil {
		panic(fmt.Sprintf("bibliography: built-in style invalid: %v", err))
	}
	return s
}

// LoadStyle reads a style definition. An empty path selects DefaultStyle.
func LoadStyle(path string) (*Style, error) {
	if path == "" {
		return DefaultStyle(), nil
	}

	data, err := os.ReadFile(path) // #nosec G304 -- style path is user-provided
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStyleParse, err)
	}
	s, err := ParseStyle(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// ParseStyle decodes and compiles a YAML style definition.
func ParseStyle(data []byte) (*Style, error) {
	var s Style
	if err := yamlutil.UnmarshalStrict(data, &s); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStyleParse, err)
	}
	if strings.TrimSpace(s.Citation) == "" {
		return nil, fmt.Errorf("%w: citation template is required", ErrStyleParse)
	}

	tmpl, err := template.New(s.Name).Option("missingkey=error").Parse(s.Citation)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStyleParse, err)
	}
	s.tmpl = tmpl
	return &s, nil
}

// Render formats entry with an optional page locator.
func (s *Style) Render(entry Entry, locator string) (string, error) {
	data := CitationData{
		Key:          entry.Key,
		Authors:      s.authors(entry.Authors),
		Year:         entry.Year,
		Title:        entry.Title,
		Locator:      locator,
		LocatorLabel: s.LocatorLabel,
		Entry:        entry,
	}
	if data.Year == "" {
		data.Year = s.NoDate
	}

	var buf bytes.Buffer
	if err := s.tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrStyleRender, entry.Key, err)
	}
	return buf.String(), nil
}

// authors builds the short author list.
func (s *Style) authors(names []Name) string {
	var short []string
	for _, n := range names {
		if v := n.Short(); v != "" {
			short = append(short, v)
		}
	}

	switch {
	case len(short) == 0:
		return ""
	case len(short) == 1:
		return short[0]
	case s.EtAlMin > 0 && len(short) >= s.EtAlMin:
		return short[0] + " " + s.EtAl
	case len(short) == 2:
		return short[0] + " " + s.AndWord + " " + short[1]
	}
	return strings.Join(short[:len(short)-1], ", ") + ", " + s.AndWord + " " + short[len(short)-1]
}

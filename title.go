package notesite

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/jdkato/prose/transform"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// TitlePolicy selects how a page title is derived from a note file name.
type TitlePolicy string

// Title policies.
const (
	// TitleCapitalize upper-cases the first letter and keeps the rest:
	// "reading list" -> "Reading list".
	TitleCapitalize TitlePolicy = "capitalize"
	// TitleCase upper-cases the first letter of every word:
	// "reading-list of books" -> "Reading List Of Books".
	TitleCase TitlePolicy = "title"
	// TitleAP applies AP style: "a tale of two cities" -> "A Tale of Two Cities".
	TitleAP TitlePolicy = "ap"
	// TitleChicago applies Chicago Manual of Style rules.
	TitleChicago TitlePolicy = "chicago"
	// TitleNone uses the file name stem unchanged.
	TitleNone TitlePolicy = "none"
)

// ParseTitlePolicy parses a policy name (case-insensitive). Empty selects
// TitleCapitalize.
func ParseTitlePolicy(name string) (TitlePolicy, error) {
	p := TitlePolicy(strings.ToLower(strings.TrimSpace(name)))
	switch p {
	case "":
		return TitleCapitalize, nil
	case TitleCapitalize, TitleCase, TitleAP, TitleChicago, TitleNone:
		return p, nil
	}
	return "", fmt.Errorf("%w: %q (must be capitalize, title, ap, chicago, or none)", ErrInvalidTitlePolicy, name)
}

// wordSeparators turns file name separators into spaces for word-based policies.
var wordSeparators = strings.NewReplacer("-", " ", "_", " ")

// titler derives page titles. It is not safe for concurrent use because
// cases.Caser keeps state.
type titler struct {
	policy    TitlePolicy
	upper     cases.Caser
	title     cases.Caser
	converter *transform.TitleConverter
}

// newTitler creates a titler for policy and a BCP 47 language tag.
func newTitler(policy TitlePolicy, lang string) (*titler, error) {
	policy, err := ParseTitlePolicy(string(policy))
	if err != nil {
		return nil, err
	}

	tag := language.English
	if lang != "" {
		if tag, err = language.Parse(lang); err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrInvalidLanguage, lang, err)
		}
	}

	t := &titler{
		policy: policy,
		upper:  cases.Upper(tag),
		title:  cases.Title(tag, cases.NoLower),
	}
	switch policy {
	case TitleAP:
		t.converter = transform.NewTitleConverter(transform.APStyle)
	case TitleChicago:
		t.converter = transform.NewTitleConverter(transform.ChicagoStyle)
	}
	return t, nil
}

// Title derives the title of a note from its file name stem.
func (t *titler) Title(stem string) string {
	switch t.policy {
	case TitleNone:
		return stem
	case TitleCase:
		return t.title.String(wordSeparators.Replace(stem))
	case TitleAP, TitleChicago:
		return t.converter.Title(wordSeparators.Replace(stem))
	default:
		return t.capitalize(stem)
	}
}

// capitalize upper-cases the first rune only.
func (t *titler) capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return t.upper.String(string(r)) + s[size:]
}

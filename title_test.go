package notesite

import (
	"errors"
	"testing"
)

func TestTitler_Title(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		policy TitlePolicy
		lang   string
		stem   string
		want   string
	}{
		{name: "capitalize keeps the rest", policy: TitleCapitalize, stem: "reading list", want: "Reading list"},
		{name: "capitalize keeps inner capitals", policy: TitleCapitalize, stem: "about GoLang", want: "About GoLang"},
		{name: "capitalize non-ASCII", policy: TitleCapitalize, stem: "élan vital", want: "Élan vital"},
		{name: "capitalize turkish", policy: TitleCapitalize, lang: "tr", stem: "istanbul", want: "İstanbul"},
		{name: "capitalize digits", policy: TitleCapitalize, stem: "2024 review", want: "2024 review"},
		{name: "capitalize empty", policy: TitleCapitalize, stem: "", want: ""},
		{name: "title case", policy: TitleCase, stem: "reading-list of books", want: "Reading List Of Books"},
		{name: "title case keeps acronyms", policy: TitleCase, stem: "my_HTML notes", want: "My HTML Notes"},
		{name: "ap style", policy: TitleAP, stem: "a tale of two cities", want: "A Tale of Two Cities"},
		{name: "chicago style", policy: TitleChicago, stem: "the-lord-of-the-rings", want: "The Lord of the Rings"},
		{name: "none", policy: TitleNone, stem: "about-me", want: "about-me"},
		{name: "empty policy defaults to capitalize", policy: "", stem: "home", want: "Home"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			titler, err := newTitler(tt.policy, tt.lang)
			if err != nil {
				t.Fatalf("newTitler() error = %v", err)
			}
			if got := titler.Title(tt.stem); got != tt.want {
				t.Errorf("Title(%q) = %q, want %q", tt.stem, got, tt.want)
			}
		})
	}
}

func TestNewTitler_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		policy  TitlePolicy
		lang    string
		wantErr error
	}{
		{name: "unknown policy", policy: "shout", wantErr: ErrInvalidTitlePolicy},
		{name: "bad language", policy: TitleCase, lang: "not a tag!", wantErr: ErrInvalidLanguage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if _, err := newTitler(tt.policy, tt.lang); !errors.Is(err, tt.wantErr) {
				t.Errorf("newTitler() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestParseTitlePolicy(t *testing.T) {
	t.Parallel()

	for input, want := range map[string]TitlePolicy{
		"":           TitleCapitalize,
		"Chicago":    TitleChicago,
		" title ":    TitleCase,
		"AP":         TitleAP,
		"none":       TitleNone,
		"capitaLize": TitleCapitalize,
	} {
		got, err := ParseTitlePolicy(input)
		if err != nil || got != want {
			t.Errorf("ParseTitlePolicy(%q) = %q, %v; want %q", input, got, err, want)
		}
	}
}

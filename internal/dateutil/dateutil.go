// Package dateutil resolves the date shown on generated pages and extracts
// years from bibliography dates.
//
// Formats use tokens (YYYY, YY, MMMM, MMM, MM, M, DD, D) or a preset name
// (iso, european, us, long). Text in brackets is copied literally.
package dateutil

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
)

// ErrInvalidDateFormat indicates an invalid date format string.
var ErrInvalidDateFormat = errors.New("invalid date format")

// MaxDateFormatLength limits format string length.
const MaxDateFormatLength = 50

// DefaultDateFormat is used by a bare keyword such as "auto".
const DefaultDateFormat = "YYYY-MM-DD"

// Keywords recognized by ResolveDate and ResolvePageDate.
const (
	KeywordAuto     = "auto"
	KeywordModified = "modified"
)

// tokens rewrites format tokens to Go layout components. Longer tokens come
// first so "MMMM" wins over "MM" at the same position.
var tokens = strings.NewReplacer(
	"YYYY", "2006",
	"MMMM", "January",
	"MMM", "Jan",
	"YY", "06",
	"MM", "01",
	"DD", "02",
	"M", "1",
	"D", "2",
)

// DatePresets provides named shortcuts for common date formats.
var DatePresets = map[string]string{
	"iso":      "YYYY-MM-DD",
	"european": "DD/MM/YYYY",
	"us":       "MM/DD/YYYY",
	"long":     "MMMM D, YYYY",
}

// ParseDateFormat converts a token format to a Go time layout.
// Bracketed text is kept literally: "[Date]: YYYY" gives "Date: 2006".
func ParseDateFormat(format string) (string, error) {
	if format == "" {
		return "", fmt.Errorf("%w: format cannot be empty", ErrInvalidDateFormat)
	}
	if len(format) > MaxDateFormatLength {
		return "", fmt.Errorf("%w: format exceeds %d characters", ErrInvalidDateFormat, MaxDateFormatLength)
	}

	var b strings.Builder
	rest := format
	for {
		before, after, found := strings.Cut(rest, "[")
		b.WriteString(tokens.Replace(before))
		if !found {
			return b.String(), nil
		}

		literal, tail, closed := strings.Cut(after, "]")
		if !closed {
			return "", fmt.Errorf("%w: unclosed bracket in %q", ErrInvalidDateFormat, format)
		}
		b.WriteString(literal)
		rest = tail
	}
}

// ResolveDate expands the "auto" keyword against t:
//   - "auto" gives t as YYYY-MM-DD
//   - "auto:FORMAT" or "auto:preset" uses that format
//   - anything else is a literal date and is returned unchanged
func ResolveDate(value string, t time.Time) (string, error) {
	if out, ok, err := expand(value, KeywordAuto, t); ok {
		return out, err
	}
	return value, nil
}

// ResolvePageDate adds the "modified" keyword to ResolveDate: it formats the
// note's modification time instead of now.
func ResolvePageDate(value string, now, modified time.Time) (string, error) {
	if out, ok, err := expand(value, KeywordModified, modified); ok {
		return out, err
	}
	return ResolveDate(value, now)
}

// expand formats t when value is keyword or keyword:FORMAT, matched
// case-insensitively. ok is false when value is not about keyword.
func expand(value, keyword string, t time.Time) (out string, ok bool, err error) {
	if len(value) < len(keyword) || !strings.EqualFold(value[:len(keyword)], keyword) {
		return "", false, nil
	}

	format := DefaultDateFormat
	if rest := value[len(keyword):]; rest != "" {
		custom, found := strings.CutPrefix(rest, ":")
		switch {
		case !found:
			return "", true, fmt.Errorf("%w: %q: use %q or %q",
				ErrInvalidDateFormat, value, keyword, keyword+":FORMAT")
		case custom == "":
			return "", true, fmt.Errorf("%w: empty format after %q", ErrInvalidDateFormat, keyword+":")
		}
		format = custom
		if preset, found := DatePresets[strings.ToLower(custom)]; found {
			format = preset
		}
	}

	layout, err := ParseDateFormat(format)
	if err != nil {
		return "", true, err
	}
	return t.Format(layout), true, nil
}

// yearPattern finds a four-digit year in free-form bibliography dates.
var yearPattern = regexp.MustCompile(`\b(\d{4})\b`)

// Year extracts the first four-digit year from values such as "2021",
// "2021-03-04" or "March 2021". It returns "" when there is none.
func Year(value string) string {
	if m := yearPattern.FindStringSubmatch(value); m != nil {
		return m[1]
	}
	return ""
}

package pipeline

import (
	"regexp"
	"strings"
)

// fencedCodeBlock matches a fenced code block delimiter (backticks or tildes).
var fencedCodeBlock = regexp.MustCompile("^(```|~~~)")

// span is a byte range [start, end) of a scanned text and its replacement.
type span struct {
	start       int
	end         int
	replacement string
}

// splice rewrites text by replacing every span in a single pass.
// Spans must be sorted by start offset and must not overlap.
func splice(text string, spans []span) string {
	if len(spans) == 0 {
		return text
	}

	var b strings.Builder
	b.Grow(len(text))

	last := 0
	for _, s := range spans {
		b.WriteString(text[last:s.start])
		b.WriteString(s.replacement)
		last = s.end
	}
	b.WriteString(text[last:])
	return b.String()
}

// region is a byte range [start, end) of text.
type region struct {
	start int
	end   int
}

// contains reports whether pos falls inside the region.
func (r region) contains(pos int) bool {
	return pos >= r.start && pos < r.end
}

// fencedRegions returns the byte ranges covered by fenced code blocks,
// delimiters included. An unclosed fence extends to the end of text.
func fencedRegions(text string) []region {
	var regions []region

	open := -1
	offset := 0
	for _, line := range strings.SplitAfter(text, "\n") {
		if fencedCodeBlock.MatchString(line) {
			if open == -1 {
				open = offset
			} else {
				regions = append(regions, region{start: open, end: offset + len(line)})
				open = -1
			}
		}
		offset += len(line)
	}
	if open != -1 {
		regions = append(regions, region{start: open, end: len(text)})
	}
	return regions
}

// codeRegions returns the byte ranges of fenced code blocks and inline code
// spans, in text order. Rewrite passes leave both as written.
func codeRegions(text string) []region {
	var regions []region
	last := 0
	for _, f := range fencedRegions(text) {
		regions = append(regions, inlineCodeRegions(text, last, f.start)...)
		regions = append(regions, f)
		last = f.end
	}
	return append(regions, inlineCodeRegions(text, last, len(text))...)
}

// inlineCodeRegions finds backtick code spans in text[from:to]. A span opens
// with a run of n backticks and closes at the next run of exactly n, within
// the same paragraph. An escaped or unmatched run is literal text.
func inlineCodeRegions(text string, from, to int) []region {
	var regions []region
	for pos := from; pos < to; {
		i := strings.IndexByte(text[pos:to], '`')
		if i < 0 {
			break
		}
		open := pos + i
		n := backtickRun(text, open, to)
		if open > from && text[open-1] == '\\' {
			pos = open + n
			continue
		}
		end := closingRun(text, open+n, to, n)
		if end < 0 {
			pos = open + n
			continue
		}
		regions = append(regions, region{start: open, end: end})
		pos = end
	}
	return regions
}

// backtickRun returns the length of the backtick run starting at at.
func backtickRun(text string, at, to int) int {
	n := 0
	for at+n < to && text[at+n] == '`' {
		n++
	}
	return n
}

// closingRun returns the offset just past the first run of exactly n
// backticks in text[from:to], or -1 when a blank line comes first.
func closingRun(text string, from, to, n int) int {
	for pos := from; pos < to; {
		switch text[pos] {
		case '`':
			run := backtickRun(text, pos, to)
			if run == n {
				return pos + run
			}
			pos += run
		case '\n':
			next, _, _ := strings.Cut(text[pos+1:to], "\n")
			if strings.TrimSpace(next) == "" {
				return -1
			}
			pos++
		default:
			pos++
		}
	}
	return -1
}

// inRegions reports whether pos falls inside any of the regions.
func inRegions(pos int, regions []region) bool {
	for _, r := range regions {
		if r.contains(pos) {
			return true
		}
	}
	return false
}

// lineAt returns the 1-based line number of the byte offset pos.
func lineAt(text string, pos int) int {
	return strings.Count(text[:pos], "\n") + 1
}

package pipeline

import (
	"strconv"

	"github.com/gosimple/slug"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
)

// fallbackHeadingID names headings whose text has no sluggable characters.
const fallbackHeadingID = "heading"

// HeadingID returns the anchor of a heading text. Wiki-link sections and
// rendered headings both go through it, so [[Note#Q & A]] targets the id of
// "## Q & A".
func HeadingID(text string) string {
	return slug.Make(text)
}

// headingIDs implements parser.IDs for one document. Repeated headings get
// "-1", "-2"... suffixes, like goldmark's own generator.
type headingIDs struct {
	used map[string]struct{}
}

var _ parser.IDs = (*headingIDs)(nil)

func newHeadingIDs() *headingIDs {
	return &headingIDs{used: make(map[string]struct{})}
}

// Generate returns a unique id for a heading text.
func (h *headingIDs) Generate(value []byte, _ ast.NodeKind) []byte {
	id := HeadingID(string(value))
	if id == "" {
		id = fallbackHeadingID
	}
	if _, taken := h.used[id]; !taken {
		h.used[id] = struct{}{}
		return []byte(id)
	}
	for i := 1; ; i++ {
		candidate := id + "-" + strconv.Itoa(i)
		if _, taken := h.used[candidate]; !taken {
			h.used[candidate] = struct{}{}
			return []byte(candidate)
		}
	}
}

// Put reserves an id set explicitly in the document.
func (h *headingIDs) Put(value []byte) {
	h.used[string(value)] = struct{}{}
}

package feed

import (
	"regexp"
	"strings"
)

var tagRe = regexp.MustCompile(`<[^>]*>`)

// entities are decoded in this order, each pass over the whole text
var entities = []struct{ from, to string }{
	{"&amp;", "&"},
	{"&lt;", "<"},
	{"&gt;", ">"},
	{"&quot;", `"`},
	{"&#39;", "'"},
	{"&nbsp;", " "},
}

// Clean strips markup tags, decodes the five standard entities and &nbsp;, and trims the result.
// Text without tags or entities is returned trimmed and otherwise unchanged.
func Clean(text string) string {
	text = tagRe.ReplaceAllString(text, "")
	for _, e := range entities {
		text = strings.ReplaceAll(text, e.from, e.to)
	}
	return strings.TrimSpace(text)
}

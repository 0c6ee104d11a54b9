package core

import (
	"regexp"
	"strings"
)

// Rule is a single find/replace fix applied to a source file.
type Rule struct {
	Name        string
	Pattern     *regexp.Regexp
	Replacement string
}

// Apply replaces every non-overlapping match of the rule's pattern in content.
// The replacement is inserted verbatim; "$" carries no special meaning.
// It returns the rewritten content and the number of matches.
func (r Rule) Apply(content string) (string, int) {
	locs := r.Pattern.FindAllStringIndex(content, -1)
	if len(locs) == 0 {
		return content, 0
	}

	var b strings.Builder
	b.Grow(len(content) + len(locs)*len(r.Replacement))
	last := 0
	for _, loc := range locs {
		b.WriteString(content[last:loc[0]])
		b.WriteString(r.Replacement)
		last = loc[1]
	}
	b.WriteString(content[last:])
	return b.String(), len(locs)
}

const (
	// malformedApology is the chat fallback message as it was mistakenly written:
	// a single-quoted literal whose apostrophes carry a doubled backslash.
	malformedApology = `content: 'I\\'m sorry, I\\'m having trouble responding right now. This might be due to API limitations. Please try again in a moment.'`

	// fixedApology is the same message as a double-quoted literal.
	fixedApology = `content: "I'm sorry, I'm having trouble responding right now. This might be due to API limitations. Please try again in a moment."`
)

// ApologyQuoteRule rewrites the broken apology literal into a valid one.
var ApologyQuoteRule = Rule{
	Name:        "apology-quote",
	Pattern:     regexp.MustCompile(regexp.QuoteMeta(malformedApology)),
	Replacement: fixedApology,
}

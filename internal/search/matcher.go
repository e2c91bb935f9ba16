// Package search compiles user-supplied patterns into reusable matchers and
// marks matched spans in free text.
package search

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrBadPattern indicates the user's pattern is not a valid regular
// expression. Callers use it to tell an invalid filter apart from the
// empty-pattern "no filter" case.
var ErrBadPattern = errors.New("invalid search pattern")

// Matcher is a compiled search pattern over text.
type Matcher struct {
	re *regexp.Regexp
}

// Compile turns a pattern string into a Matcher. An empty pattern means "no
// filter" and yields a nil Matcher with no error. A malformed pattern yields
// an error wrapping ErrBadPattern.
func Compile(pattern string, caseInsensitive bool) (*Matcher, error) {
	if pattern == "" {
		return nil, nil
	}
	if caseInsensitive {
		pattern = "(?i)" + pattern
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadPattern, err)
	}
	return &Matcher{re: re}, nil
}

// MatchString reports whether text contains at least one match. A nil
// Matcher matches everything, mirroring the "no filter" meaning of an empty
// pattern.
func (m *Matcher) MatchString(text string) bool {
	if m == nil {
		return true
	}
	return m.re.MatchString(text)
}

// Spans returns the byte ranges of every non-overlapping match in text,
// located by repeated scanning from the end of the previous match. A nil
// Matcher has no spans.
func (m *Matcher) Spans(text string) [][2]int {
	if m == nil {
		return nil
	}
	raw := m.re.FindAllStringIndex(text, -1)
	spans := make([][2]int, 0, len(raw))
	for _, r := range raw {
		if r[0] == r[1] {
			// Zero-width matches would mark nothing visible.
			continue
		}
		spans = append(spans, [2]int{r[0], r[1]})
	}
	return spans
}

// Highlight wraps every match span in text with the open and close markers.
// A nil Matcher returns the text unchanged.
func (m *Matcher) Highlight(text, open, close string) string {
	spans := m.Spans(text)
	if len(spans) == 0 {
		return text
	}
	var b strings.Builder
	b.Grow(len(text) + len(spans)*(len(open)+len(close)))
	last := 0
	for _, s := range spans {
		b.WriteString(text[last:s[0]])
		b.WriteString(open)
		b.WriteString(text[s[0]:s[1]])
		b.WriteString(close)
		last = s[1]
	}
	b.WriteString(text[last:])
	return b.String()
}

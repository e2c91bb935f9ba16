package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompile(t *testing.T) {
	tests := []struct {
		name            string
		pattern         string
		caseInsensitive bool
		wantNil         bool
		wantErr         bool
	}{
		{
			name:    "empty pattern means no filter",
			pattern: "",
			wantNil: true,
		},
		{
			name:    "plain word",
			pattern: "coffee",
		},
		{
			name:    "alternation",
			pattern: "coffee|tea",
		},
		{
			name:    "unbalanced paren is an error, not a panic",
			pattern: "(",
			wantNil: true,
			wantErr: true,
		},
		{
			name:    "unclosed bracket",
			pattern: "[a-z",
			wantNil: true,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := Compile(tt.pattern, tt.caseInsensitive)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrBadPattern)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.wantNil, m == nil)
		})
	}
}

func TestMatcherMatchString(t *testing.T) {
	caseless, err := Compile("coffee", true)
	require.NoError(t, err)
	assert.True(t, caseless.MatchString("Morning COFFEE run"))

	strict, err := Compile("coffee", false)
	require.NoError(t, err)
	assert.False(t, strict.MatchString("Morning COFFEE run"))
	assert.True(t, strict.MatchString("morning coffee run"))

	// The nil matcher means "no filter": everything matches.
	var none *Matcher
	assert.True(t, none.MatchString("anything"))
}

func TestMatcherHighlight(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		text    string
		want    string
	}{
		{
			name:    "single match",
			pattern: "coffee",
			text:    "morning coffee",
			want:    "morning <coffee>",
		},
		{
			name:    "all occurrences marked",
			pattern: "na",
			text:    "banana",
			want:    "ba<na><na>",
		},
		{
			name:    "no match leaves text alone",
			pattern: "tea",
			text:    "morning coffee",
			want:    "morning coffee",
		},
		{
			name:    "case-insensitive match keeps original casing",
			pattern: "coffee",
			text:    "Morning Coffee",
			want:    "Morning <Coffee>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := Compile(tt.pattern, true)
			require.NoError(t, err)
			assert.Equal(t, tt.want, m.Highlight(tt.text, "<", ">"))
		})
	}
}

func TestNilMatcherHighlight(t *testing.T) {
	var none *Matcher
	assert.Equal(t, "unchanged", none.Highlight("unchanged", "<", ">"))
	assert.Nil(t, none.Spans("unchanged"))
}

func TestMatcherSpans(t *testing.T) {
	m, err := Compile("an", false)
	require.NoError(t, err)
	assert.Equal(t, [][2]int{{1, 3}, {3, 5}}, m.Spans("banana"))
}

func TestZeroWidthMatchesAreDropped(t *testing.T) {
	m, err := Compile("x*", false)
	require.NoError(t, err)
	// "x*" matches empty at every position; only the real "xx" span
	// survives, and Highlight terminates.
	assert.Equal(t, [][2]int{{1, 3}}, m.Spans("axxb"))
	assert.Equal(t, "a<xx>b", m.Highlight("axxb", "<", ">"))
}

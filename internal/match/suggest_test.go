package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSuggest(t *testing.T) {
	keys := []string{"caption", "hidden", "maxdepth", "numbered", "reversed", "titlesonly"}

	tests := []struct {
		name  string
		word  string
		known []string
		want  []string
	}{
		{name: "camel case spelling", word: "maxDepth", known: keys, want: []string{"maxdepth"}},
		{name: "snake case spelling", word: "titles_only", known: keys, want: []string{"titlesonly"}},
		{name: "typo", word: "captoin", known: keys, want: []string{"caption"}},
		{name: "no close name", word: "glob", known: keys, want: nil},
		{name: "format tag", word: "jb-books", known: []string{"jb-book", "jb-article"}, want: []string{"jb-book"}},
		{name: "empty known list", word: "anything", known: nil, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Suggest(tt.word, tt.known, DefaultSuggestThreshold))
		})
	}
}

func TestNormalizeIdent(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"maxdepth", "maxdepth"},
		{"maxDepth", "maxdepth"},
		{"max_depth", "maxdepth"},
		{"TOCTree", "toctree"},
		{"jb-book", "jbbook"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeIdent(tt.in))
		})
	}
}

func TestTokenizeCamelCase(t *testing.T) {
	assert.Equal(t, []string{"titles", "Only"}, tokenizeCamelCase("titlesOnly"))
	assert.Equal(t, []string{"TOC", "Tree"}, tokenizeCamelCase("TOCTree"))
	assert.Equal(t, []string{"jb", "book"}, tokenizeCamelCase("jb-book"))
	assert.Nil(t, tokenizeCamelCase(""))
}

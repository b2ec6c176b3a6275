package toc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNavEntry_Kind(t *testing.T) {
	assert.Equal(t, NavFile, NavEntry{Path: "a.md", Title: "A"}.Kind())
	assert.Equal(t, NavURL, NavEntry{URL: "https://a"}.Kind())
	assert.Equal(t, NavPattern, NavEntry{Pattern: "*"}.Kind())
	assert.Equal(t, NavGroup, NavEntry{Title: "Subtree 0"}.Kind())
	assert.Equal(t, "unknown", NavKind(0).String())
}

func TestLeavesAndCount(t *testing.T) {
	tree := []NavEntry{
		{Path: "index.md"},
		{Title: "Part", Children: []NavEntry{
			{Path: "a.md", Children: []NavEntry{{Pattern: "a/*"}}},
			{URL: "https://b"},
		}},
	}

	assert.Equal(t, []NavEntry{
		{Path: "index.md"},
		{Path: "a.md"},
		{Pattern: "a/*"},
		{URL: "https://b"},
	}, Leaves(tree))
	assert.Equal(t, 5, Count(tree))
	assert.Nil(t, Leaves(nil))
}

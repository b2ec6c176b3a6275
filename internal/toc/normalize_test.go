package toc

import (
	"bytes"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tocnorm/internal/logger"
)

var bookFixture = `
format: jb-book
root: index
parts:
  - caption: Basics
    chapters:
      - file: ch1
        sections:
          - file: ch1/s1
  - chapters:
      - url: https://example.com/api
        title: API
      - glob: appendix/*
`

var bookFiles = []string{"index.md", "ch1.md", "ch1/s1.ipynb"}

func TestNormalize_BookTwoLevels(t *testing.T) {
	r := newTestResolver(t, bookFiles...)

	got, err := Normalize(mustParse(t, bookFixture), testBaseDir, r)
	require.NoError(t, err)

	assert.Equal(t, []NavEntry{
		{Path: "index.md"},
		{Title: "Basics", Children: []NavEntry{
			{Path: "ch1.md", Children: []NavEntry{
				{Path: "ch1/s1.ipynb"},
			}},
		}},
		{Title: "Subtree 1", Children: []NavEntry{
			{URL: "https://example.com/api", Title: "API"},
			{Pattern: "appendix/*"},
		}},
	}, got)
}

func TestNormalize_Article(t *testing.T) {
	r := newTestResolver(t, "index.md", "methods.md", "results.md")

	got, err := Normalize(mustParse(t, `
format: jb-article
root: index
sections:
  - file: methods
  - file: results
`), testBaseDir, r)
	require.NoError(t, err)

	assert.Equal(t, []NavEntry{{Path: "index.md"}, {Path: "methods.md"}, {Path: "results.md"}}, got)
}

func TestNormalize_ConcreteScenario(t *testing.T) {
	r := newTestResolver(t, "index.md", "intro.md")

	got, err := Normalize(mustParse(t, `
root: index
entries:
  - file: intro
  - url: https://example.com
    title: Ext
`), testBaseDir, r)
	require.NoError(t, err)

	assert.Equal(t, []NavEntry{
		{Path: "index.md"},
		{Path: "intro.md"},
		{URL: "https://example.com", Title: "Ext"},
	}, got)
}

func TestNormalize_PreservesLeafOrder(t *testing.T) {
	tests := []struct {
		name  string
		files []string
		yaml  string
	}{
		{
			name:  "book",
			files: bookFiles,
			yaml:  bookFixture,
		},
		{
			name:  "article",
			files: []string{"index.md", "a.md", "a/b.md", "c.md"},
			yaml: `
format: jb-article
root: index
subtrees:
  - sections:
      - file: a
        subtrees:
          - sections: [{file: a/b}, {url: "https://x"}]
  - sections: [{glob: "g/*"}, {file: c}]
`,
		},
		{
			name:  "generic",
			files: []string{"index.md", "a.md", "b.md", "c.md"},
			yaml: `
root: index
entries:
  - file: a
    entries:
      - file: b
      - glob: "*.md"
  - file: c
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := mustParse(t, tt.yaml)

			doc, err := Validate(raw)
			require.NoError(t, err)

			got, err := Normalize(raw, testBaseDir, newTestResolver(t, tt.files...))
			require.NoError(t, err)

			assert.Equal(t, documentRefs(doc), navRefs(got))
		})
	}
}

func TestNormalize_ShorthandEquivalentToExplicit(t *testing.T) {
	r := newTestResolver(t, "index.md", "a.md", "b.md")

	shorthand, err := Normalize(mustParse(t, `{root: index, entries: [{file: a}, {file: b}]}`), testBaseDir, r)
	require.NoError(t, err)

	explicit, err := Normalize(mustParse(t, `{root: index, subtrees: [{entries: [{file: a}, {file: b}]}]}`),
		testBaseDir, r)
	require.NoError(t, err)

	require.Len(t, explicit, 2)
	assert.Equal(t, "Subtree 0", explicit[1].Title)
	assert.Equal(t, shorthand[1:], explicit[1].Children)
}

func TestNormalize_ValidationErrorUnchanged(t *testing.T) {
	raw := mustParse(t, `{format: jb-slides, root: index}`)

	_, want := Validate(raw)
	_, got := Normalize(raw, testBaseDir, newTestResolver(t, "index.md"))

	var verr *ValidationError
	require.ErrorAs(t, got, &verr)
	assert.Equal(t, want, got)
}

func TestNormalizer_ConcurrentUse(t *testing.T) {
	n := NewNormalizer(newTestResolver(t, bookFiles...))
	raw := mustParse(t, bookFixture)

	want, err := n.Normalize(raw, testBaseDir)
	require.NoError(t, err)

	var wg sync.WaitGroup

	results := make([][]NavEntry, 16)
	errs := make([]error, 16)

	for i := range results {
		wg.Add(1)

		go func() {
			defer wg.Done()

			results[i], errs[i] = n.Normalize(raw, testBaseDir)
		}()
	}

	wg.Wait()

	for i := range results {
		require.NoError(t, errs[i])
		assert.Equal(t, want, results[i])
	}
}

func TestNormalizer_LogsDialect(t *testing.T) {
	var buf bytes.Buffer

	log := logger.NewLogger(&logger.Config{Level: logger.DebugLevel, Output: &buf})
	n := NewNormalizer(newTestResolver(t, bookFiles...), WithLogger(log))

	_, err := n.Normalize(mustParse(t, bookFixture), testBaseDir)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "dialect=book")
	assert.Contains(t, out, "entries=7")
}

// documentRefs lists the leaf references of a validated document in
// document order, as kind:value strings.
func documentRefs(doc *Document) []string {
	out := []string{"file:" + doc.Root()}

	var entries func([]Entry)

	group := func(g *Group) {
		if g == nil {
			return
		}

		entries(g.Entries)

		for _, st := range g.Subtrees {
			entries(st.Entries)
		}
	}

	entries = func(list []Entry) {
		for _, e := range list {
			switch e.Kind {
			case RefFile:
				out = append(out, "file:"+e.File)
			case RefURL:
				out = append(out, "url:"+e.URL)
			case RefGlob:
				out = append(out, "pattern:"+e.Glob)
			}

			group(e.Children)
		}
	}

	switch doc.Format {
	case FormatBook:
		book := doc.Book.Children
		if book != nil {
			sectionEntries(book.Chapters, &out)

			for _, part := range book.Parts {
				sectionEntries(part.Chapters, &out)
			}
		}
	case FormatArticle:
		sectionGroup(doc.Article.Children, &out)
	default:
		group(doc.Generic.Children)
	}

	return out
}

func sectionGroup(g *SectionGroup, out *[]string) {
	if g == nil {
		return
	}

	sectionEntries(g.Sections, out)

	for _, st := range g.Subtrees {
		sectionEntries(st.Sections, out)
	}
}

func sectionEntries(list []SectionEntry, out *[]string) {
	for _, e := range list {
		switch e.Kind {
		case RefFile:
			*out = append(*out, "file:"+e.File)
		case RefURL:
			*out = append(*out, "url:"+e.URL)
		case RefGlob:
			*out = append(*out, "pattern:"+e.Glob)
		}

		sectionGroup(e.Children, out)
	}
}

// navRefs lists the leaves of a navigation tree as kind:value strings,
// with file extensions removed.
func navRefs(entries []NavEntry) []string {
	var out []string

	for _, leaf := range Leaves(entries) {
		switch leaf.Kind() {
		case NavFile:
			out = append(out, "file:"+strings.TrimSuffix(strings.TrimSuffix(leaf.Path, ".md"), ".ipynb"))
		case NavURL:
			out = append(out, "url:"+leaf.URL)
		case NavPattern:
			out = append(out, "pattern:"+leaf.Pattern)
		}
	}

	return out
}

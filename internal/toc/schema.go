package toc

import (
	"tocnorm/internal/common"
)

// Format is the dialect discriminant of a table of contents.
type Format string

const (
	// FormatGeneric is the dialect without a "format" key.
	FormatGeneric Format = ""
	FormatArticle Format = "jb-article"
	FormatBook    Format = "jb-book"
)

// KnownFormats lists the accepted values of the "format" key.
var KnownFormats = []Format{FormatBook, FormatArticle}

// String returns the dialect name.
func (f Format) String() string {
	switch f {
	case FormatGeneric:
		return "generic"
	case FormatArticle:
		return "article"
	case FormatBook:
		return "book"
	default:
		return common.UnknownStr
	}
}

// Declaration returns how a document selects this dialect.
func (f Format) Declaration() string {
	if f == FormatGeneric {
		return "no format key"
	}

	return "format: " + string(f)
}

// GroupForm tells how a child group was written.
type GroupForm int

const (
	_ GroupForm = iota // zero value is an invalid form

	// FormShorthand is a child list written directly on the parent.
	FormShorthand
	// FormExplicit is a list of subtree objects.
	FormExplicit
)

func (f GroupForm) String() string {
	switch f {
	case FormShorthand:
		return "shorthand"
	case FormExplicit:
		return "explicit"
	default:
		return common.UnknownStr
	}
}

// RefKind is the kind of a leaf reference.
type RefKind int

const (
	_ RefKind = iota // zero value is an invalid kind

	RefFile
	RefURL
	RefGlob
)

func (k RefKind) String() string {
	switch k {
	case RefFile:
		return "file"
	case RefURL:
		return "url"
	case RefGlob:
		return "glob"
	default:
		return common.UnknownStr
	}
}

// Ref is a leaf reference: a file, a URL, or a glob pattern.
type Ref struct {
	Kind  RefKind
	File  string
	URL   string
	Glob  string
	Title string
}

// Options are the toctree options of a subtree. Nil fields are unset.
type Options struct {
	Caption    *string `yaml:"caption,omitempty"`
	Hidden     *bool   `yaml:"hidden,omitempty"`
	MaxDepth   *int    `yaml:"maxdepth,omitempty"`
	Numbered   *bool   `yaml:"numbered,omitempty"`
	Reversed   *bool   `yaml:"reversed,omitempty"`
	TitlesOnly *bool   `yaml:"titlesonly,omitempty"`
}

// CaptionOr returns the caption, or fallback when none is set.
func (o *Options) CaptionOr(fallback string) string {
	if o == nil || o.Caption == nil {
		return fallback
	}

	return *o.Caption
}

// Clone returns a deep copy of o. Cloning nil returns nil.
func (o *Options) Clone() *Options {
	if o == nil {
		return nil
	}

	return &Options{
		Caption:    clonePtr(o.Caption),
		Hidden:     clonePtr(o.Hidden),
		MaxDepth:   clonePtr(o.MaxDepth),
		Numbered:   clonePtr(o.Numbered),
		Reversed:   clonePtr(o.Reversed),
		TitlesOnly: clonePtr(o.TitlesOnly),
	}
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}

	v := *p

	return &v
}

// --- generic dialect ---

// Entry is a generic-dialect entry. Only file entries have children.
type Entry struct {
	Ref
	Children *Group
}

// Group is a generic child group ("entries" or "subtrees").
type Group struct {
	Form GroupForm

	// Entries and Options are set for FormShorthand.
	Entries []Entry
	Options *Options

	// Subtrees is set for FormExplicit.
	Subtrees []Subtree
}

// Subtree is one element of an explicit "subtrees" list.
type Subtree struct {
	Options Options
	Entries []Entry
}

// GenericTOC is a document in the generic dialect.
type GenericTOC struct {
	Root     string
	Defaults *Options
	Children *Group
}

// --- section vocabulary (article, and the inner levels of a book) ---

// SectionEntry is an article entry, or a book chapter or section.
type SectionEntry struct {
	Ref
	Children *SectionGroup
}

// SectionGroup is a child group keyed by "sections" or "subtrees".
type SectionGroup struct {
	Form GroupForm

	Sections []SectionEntry
	Options  *Options

	Subtrees []SectionSubtree
}

// SectionSubtree is one element of a "subtrees" list of sections.
type SectionSubtree struct {
	Options  Options
	Sections []SectionEntry
}

// ArticleTOC is a document in the jb-article dialect.
type ArticleTOC struct {
	Root     string
	Defaults *Options
	Children *SectionGroup
}

// --- book outer level ---

// PartGroup is the top-level group of a book ("chapters" or "parts").
type PartGroup struct {
	Form GroupForm

	Chapters []SectionEntry
	Options  *Options

	Parts []Part
}

// Part is one element of a book's "parts" list.
type Part struct {
	Options  Options
	Chapters []SectionEntry
}

// BookTOC is a document in the jb-book dialect.
type BookTOC struct {
	Root     string
	Defaults *Options
	Children *PartGroup
}

// Document is a validated table of contents. Exactly one of Generic,
// Article and Book is set, as selected by Format.
type Document struct {
	Format  Format
	Generic *GenericTOC
	Article *ArticleTOC
	Book    *BookTOC
}

// Root returns the root file reference of the document.
func (d *Document) Root() string {
	switch d.Format {
	case FormatArticle:
		return d.Article.Root
	case FormatBook:
		return d.Book.Root
	default:
		return d.Generic.Root
	}
}

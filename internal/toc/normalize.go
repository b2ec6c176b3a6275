package toc

import (
	"tocnorm/internal/logger"
	"tocnorm/internal/resolve"
)

// Normalizer turns raw table-of-contents documents into navigation trees.
// It keeps no state between calls and is safe for concurrent use.
type Normalizer struct {
	resolver resolve.Resolver
	log      logger.Logger
}

// Option configures a Normalizer.
type Option func(*Normalizer)

// WithLogger sets the logger used for debug output.
func WithLogger(l logger.Logger) Option {
	return func(n *Normalizer) {
		n.log = l
	}
}

// NewNormalizer creates a normalizer resolving files through r.
func NewNormalizer(r resolve.Resolver, opts ...Option) *Normalizer {
	n := &Normalizer{resolver: r, log: logger.Nop()}
	for _, opt := range opts {
		opt(n)
	}

	return n
}

// Normalize validates raw, rewrites book and article documents into the
// generic dialect, and builds the navigation tree under baseDir.
// Validation errors are returned unchanged.
func (n *Normalizer) Normalize(raw any, baseDir string) ([]NavEntry, error) {
	doc, err := Validate(raw)
	if err != nil {
		return nil, err
	}

	return n.Build(doc, baseDir)
}

// Build rewrites a validated document into the generic dialect and
// builds its navigation tree under baseDir.
func (n *Normalizer) Build(doc *Document, baseDir string) ([]NavEntry, error) {
	generic := doc.ToGeneric()
	n.log.Debug("validated table of contents", "dialect", doc.Format.String(), "root", generic.Root)

	entries, err := Build(generic, baseDir, n.resolver)
	if err != nil {
		return nil, err
	}

	n.log.Debug("built navigation tree", "entries", Count(entries))

	return entries, nil
}

// Normalize runs a default Normalizer once.
func Normalize(raw any, baseDir string, r resolve.Resolver) ([]NavEntry, error) {
	return NewNormalizer(r).Normalize(raw, baseDir)
}

// ToGeneric returns the document in the generic dialect, rewriting book
// and article documents.
func (d *Document) ToGeneric() *GenericTOC {
	switch d.Format {
	case FormatBook:
		return BookToGeneric(d.Book)
	case FormatArticle:
		return ArticleToGeneric(d.Article)
	case FormatGeneric:
		return d.Generic
	default:
		unreachable("document has format %q", string(d.Format))
		return nil
	}
}

// Package toc validates Jupyter Book table-of-contents documents and
// normalizes them into the MyST navigation tree.
//
// Three dialects are accepted, selected by the optional "format" key:
//
//	# generic (no format key)
//	root: index
//	entries:
//	  - file: intro
//	  - url: https://example.com
//	    title: Ext
//
//	# article
//	format: jb-article
//	root: index
//	sections:
//	  - file: methods
//
//	# book
//	format: jb-book
//	root: index
//	parts:
//	  - caption: Part One
//	    chapters:
//	      - file: ch1
//	        sections:
//	          - file: ch1/s1
//
// # Shorthand and explicit subtrees
//
// A child group can be written as a shorthand (the child list and an
// optional "options" map directly on the parent) or as an explicit list of
// subtrees, each carrying its own options inline:
//
//	entries: [...]            # shorthand
//	options: {caption: Intro}
//	subtrees:                 # explicit
//	  - caption: Intro
//	    entries: [...]
//
// A node may use one form or the other, never both.
//
// # Pipeline
//
//  1. Validate matches the raw document against the dialect shapes, in a
//     fixed order, and returns a typed Document or a *ValidationError.
//  2. ArticleToGeneric and BookToGeneric rewrite the specialized dialects
//     into the generic one. Shorthand stays shorthand.
//  3. Build resolves every file against the base directory and produces
//     the []NavEntry tree. Explicit subtrees become wrapper entries titled
//     by their caption (or "Subtree N"); shorthand children are lifted
//     onto their parent.
//
// Normalizer runs the three steps.
package toc

package toc

import (
	"fmt"
	"path/filepath"

	"tocnorm/internal/common"
	"tocnorm/internal/resolve"
)

// Build converts a generic document into the navigation tree. The root
// comes first, followed by the children of the document's own group.
//
// File references are resolved under baseDir through r and reported
// relative to it. The first reference that cannot be resolved aborts the
// build with a *ResolutionError.
func Build(doc *GenericTOC, baseDir string, r resolve.Resolver) ([]NavEntry, error) {
	b := &builder{baseDir: baseDir, resolver: r}

	root, err := b.file(doc.Root, "root")
	if err != nil {
		return nil, err
	}

	entries := []NavEntry{root}

	if doc.Children != nil {
		children, err := b.group(doc.Children, "")
		if err != nil {
			return nil, err
		}

		entries = append(entries, children...)
	}

	return entries, nil
}

type builder struct {
	baseDir  string
	resolver resolve.Resolver
}

func (b *builder) file(ref, path string) (NavEntry, error) {
	resolved, err := b.resolver.Resolve(filepath.Join(b.baseDir, filepath.FromSlash(ref)))
	if err != nil {
		return NavEntry{}, &ResolutionError{FieldPath: path, File: ref, Err: err}
	}

	rel, err := common.RelSlash(b.baseDir, resolved)
	if err != nil {
		return NavEntry{}, &ResolutionError{FieldPath: path, File: ref, Err: err}
	}

	return NavEntry{Path: rel}, nil
}

func (b *builder) entry(e Entry, path string) (NavEntry, error) {
	switch e.Kind {
	case RefURL:
		return NavEntry{URL: e.URL, Title: e.Title}, nil
	case RefGlob:
		if e.Children != nil {
			unreachable("glob entry at %s has children", path)
		}

		return NavEntry{Pattern: e.Glob}, nil
	case RefFile:
		out, err := b.file(e.File, path)
		if err != nil {
			return NavEntry{}, err
		}

		out.Title = e.Title

		if e.Children != nil {
			children, err := b.group(e.Children, path)
			if err != nil {
				return NavEntry{}, err
			}

			if len(children) > 0 {
				out.Children = children
			}
		}

		return out, nil
	default:
		unreachable("entry at %s matches none of file, url, glob (kind %s)", path, e.Kind)
		return NavEntry{}, nil
	}
}

// group builds the children of a node. Explicit subtrees keep one wrapper
// per subtree; a shorthand group is built as subtree 0 and its wrapper is
// dropped.
func (b *builder) group(g *Group, path string) ([]NavEntry, error) {
	switch g.Form {
	case FormExplicit:
		out := make([]NavEntry, 0, len(g.Subtrees))

		for i := range g.Subtrees {
			st := &g.Subtrees[i]

			wrapper, err := b.subtree(st.Entries, &st.Options, i, indexPath(joinPath(path, "subtrees"), i))
			if err != nil {
				return nil, err
			}

			out = append(out, wrapper)
		}

		return out, nil
	case FormShorthand:
		wrapper, err := b.subtree(g.Entries, g.Options, 0, path)
		if err != nil {
			return nil, err
		}

		return wrapper.Children, nil
	default:
		unreachable("group at %s has form %s", path, g.Form)
		return nil, nil
	}
}

// subtree builds the wrapper entry of one subtree. Its title is the
// caption, or "Subtree <index>" when there is none.
func (b *builder) subtree(entries []Entry, opts *Options, index int, path string) (NavEntry, error) {
	var children []NavEntry

	for i, e := range entries {
		child, err := b.entry(e, indexPath(joinPath(path, "entries"), i))
		if err != nil {
			return NavEntry{}, err
		}

		children = append(children, child)
	}

	return NavEntry{
		Title:    opts.CaptionOr(fmt.Sprintf("Subtree %d", index)),
		Children: children,
	}, nil
}

package toc

// BookToGeneric rewrites a jb-book document into the generic dialect.
//
// The outer level maps "parts" to "subtrees" and "chapters" to "entries",
// so each part becomes one generic subtree whose entries are its chapters.
// Inside a chapter, "sections" and "subtrees" map as in an article, which
// keeps a section nested below its chapter. Shorthand groups stay
// shorthand.
func BookToGeneric(doc *BookTOC) *GenericTOC {
	return &GenericTOC{
		Root:     doc.Root,
		Defaults: doc.Defaults.Clone(),
		Children: partGroupToGeneric(doc.Children),
	}
}

func partGroupToGeneric(g *PartGroup) *Group {
	if g == nil {
		return nil
	}

	out := &Group{Form: g.Form}

	switch g.Form {
	case FormShorthand:
		out.Entries = sectionsToEntries(g.Chapters)
		out.Options = g.Options.Clone()
	case FormExplicit:
		out.Subtrees = make([]Subtree, 0, len(g.Parts))
		for _, part := range g.Parts {
			out.Subtrees = append(out.Subtrees, Subtree{
				Options: *part.Options.Clone(),
				Entries: sectionsToEntries(part.Chapters),
			})
		}
	default:
		unreachable("part group has form %s", g.Form)
	}

	return out
}

package toc

// ArticleToGeneric rewrites a jb-article document into the generic
// dialect: "sections" becomes "entries" at every level and "subtrees"
// stays "subtrees". Shorthand groups stay shorthand. The input is not
// modified and shares no memory with the result.
func ArticleToGeneric(doc *ArticleTOC) *GenericTOC {
	return &GenericTOC{
		Root:     doc.Root,
		Defaults: doc.Defaults.Clone(),
		Children: sectionGroupToGeneric(doc.Children),
	}
}

func sectionGroupToGeneric(g *SectionGroup) *Group {
	if g == nil {
		return nil
	}

	out := &Group{Form: g.Form}

	switch g.Form {
	case FormShorthand:
		out.Entries = sectionsToEntries(g.Sections)
		out.Options = g.Options.Clone()
	case FormExplicit:
		out.Subtrees = make([]Subtree, 0, len(g.Subtrees))
		for _, st := range g.Subtrees {
			out.Subtrees = append(out.Subtrees, Subtree{
				Options: *st.Options.Clone(),
				Entries: sectionsToEntries(st.Sections),
			})
		}
	default:
		unreachable("section group has form %s", g.Form)
	}

	return out
}

// sectionsToEntries rewrites section entries into generic entries. Leaf
// references are copied as they are.
func sectionsToEntries(sections []SectionEntry) []Entry {
	entries := make([]Entry, 0, len(sections))
	for _, s := range sections {
		entries = append(entries, Entry{
			Ref:      s.Ref,
			Children: sectionGroupToGeneric(s.Children),
		})
	}

	return entries
}

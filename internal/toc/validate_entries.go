package toc

import (
	"fmt"
	"slices"
	"strings"

	"tocnorm/internal/common"
	"tocnorm/internal/diagnostic"
)

type entryMatcher[E any] func(raw any, path string) (E, *diagnostic.Diagnostics)

// groupParts is a matched child group before it is given its dialect type.
type groupParts[E any] struct {
	form     GroupForm
	entries  []E
	options  *Options
	subtrees []subtreeParts[E]
}

type subtreeParts[E any] struct {
	options Options
	entries []E
}

var refKeys = []string{"file", "url", "glob"}

func (v *validator) genericEntry(raw any, path string) (Entry, *diagnostic.Diagnostics) {
	return matchEntry(v, raw, path, genericVocab, func(ref Ref, g *groupParts[Entry]) Entry {
		return Entry{Ref: ref, Children: toGroup(g)}
	}, v.genericEntry)
}

func (v *validator) sectionEntry(raw any, path string) (SectionEntry, *diagnostic.Diagnostics) {
	return matchEntry(v, raw, path, sectionVocab, func(ref Ref, g *groupParts[SectionEntry]) SectionEntry {
		return SectionEntry{Ref: ref, Children: toSectionGroup(g)}
	}, v.sectionEntry)
}

// matchEntry matches one entry against, in order: file with a shorthand
// group, file with explicit subtrees, bare file, url, glob.
func matchEntry[E any](
	v *validator,
	raw any,
	path string,
	voc vocabulary,
	build func(Ref, *groupParts[E]) E,
	self entryMatcher[E],
) (E, *diagnostic.Diagnostics) {
	var zero E

	diags := &diagnostic.Diagnostics{}

	obj, ok := toObject(raw)
	if !ok {
		diags.AddError("not_a_mapping", fmt.Sprintf("entry must be a mapping, got %s", describe(raw)), "entry", path)
		return zero, diags
	}

	if !checkReference(obj, path, diags) || !checkGroupForm(obj, path, "entry", voc, diags) {
		return zero, diags
	}

	shapes := []shape[E]{
		{
			name:     "entry/file+" + voc.childKey,
			requires: []string{"file", voc.childKey},
			match: func(f *fields) E {
				f.closed("file", "title", voc.childKey, "options")
				return build(f.fileRef(), shorthandGroup(f, voc, self))
			},
		},
		{
			name:     "entry/file+" + voc.subtreesKey,
			requires: []string{"file", voc.subtreesKey},
			match: func(f *fields) E {
				f.closed("file", "title", voc.subtreesKey)
				return build(f.fileRef(), explicitGroup(f, voc, self))
			},
		},
		{
			name:     "entry/file",
			requires: []string{"file"},
			excludes: []string{voc.childKey, voc.subtreesKey},
			match: func(f *fields) E {
				f.closed("file", "title")
				return build(f.fileRef(), nil)
			},
		},
		{
			name:     "entry/url",
			requires: []string{"url"},
			match: func(f *fields) E {
				f.closed("url", "title")
				return build(Ref{Kind: RefURL, URL: f.str("url"), Title: deref(f.optionalStr("title"))}, nil)
			},
		},
		{
			name:     "entry/glob",
			requires: []string{"glob"},
			match: func(f *fields) E {
				for _, key := range []string{"title", voc.childKey, voc.subtreesKey, "options"} {
					if present(f.obj, key) {
						f.diags.AddError("unknown_field",
							fmt.Sprintf("glob entries take no %q: every matched file is listed as it is", key), "", f.path)
					}
				}

				f.closed("glob", "title", voc.childKey, voc.subtreesKey, "options")

				return build(Ref{Kind: RefGlob, Glob: f.str("glob")}, nil)
			},
		},
	}

	return firstMatch(v, obj, path, shapes)
}

func (f *fields) fileRef() Ref {
	return Ref{Kind: RefFile, File: f.str("file"), Title: deref(f.optionalStr("title"))}
}

// checkReference requires exactly one of file, url and glob.
func checkReference(obj object, path string, diags *diagnostic.Diagnostics) bool {
	var found []string

	for _, k := range refKeys {
		if present(obj, k) {
			found = append(found, k)
		}
	}

	switch {
	case common.IsSingle(found):
		return true
	case common.IsEmpty(found):
		diags.AddError("missing_reference", `entry needs one of "file", "url" or "glob"`, "entry", path)
	default:
		diags.AddError("ambiguous_reference",
			fmt.Sprintf("entry has more than one of %s", strings.Join(quoteAll(found), ", ")), "entry", path)
	}

	return false
}

// checkGroupForm rejects a node using the shorthand and the explicit
// subtree form at once.
func checkGroupForm(obj object, path, shapeName string, voc vocabulary, diags *diagnostic.Diagnostics) bool {
	if present(obj, voc.childKey) && present(obj, voc.subtreesKey) {
		diags.AddError("ambiguous_subtree",
			fmt.Sprintf("%q and %q cannot be used together: use %q (with \"options\") for one subtree or %q for several",
				voc.childKey, voc.subtreesKey, voc.childKey, voc.subtreesKey),
			shapeName, path)

		return false
	}

	return true
}

func entryList[E any](f *fields, key string, entry entryMatcher[E]) []E {
	items := f.list(key)
	out := make([]E, 0, len(items))

	for i, item := range items {
		e, diags := entry(item, indexPath(f.at(key), i))
		f.diags.Merge(*diags)
		out = append(out, e)
	}

	return out
}

func shorthandGroup[E any](f *fields, voc vocabulary, entry entryMatcher[E]) *groupParts[E] {
	return &groupParts[E]{
		form:    FormShorthand,
		entries: entryList(f, voc.childKey, entry),
		options: f.options("options"),
	}
}

func explicitGroup[E any](f *fields, voc vocabulary, entry entryMatcher[E]) *groupParts[E] {
	items := f.list(voc.subtreesKey)
	g := &groupParts[E]{form: FormExplicit, subtrees: make([]subtreeParts[E], 0, len(items))}

	for i, item := range items {
		sub := f.child(item, indexPath(f.at(voc.subtreesKey), i))
		if sub == nil {
			continue
		}

		sub.closed(append(slices.Clone(optionKeys), voc.childKey)...)
		g.subtrees = append(g.subtrees, subtreeParts[E]{
			options: sub.inlineOptions(),
			entries: entryList(sub, voc.childKey, entry),
		})
	}

	return g
}

func toGroup(g *groupParts[Entry]) *Group {
	if g == nil {
		return nil
	}

	out := &Group{Form: g.form, Entries: g.entries, Options: g.options}
	for _, st := range g.subtrees {
		out.Subtrees = append(out.Subtrees, Subtree{Options: st.options, Entries: st.entries})
	}

	if g.form == FormExplicit && out.Subtrees == nil {
		out.Subtrees = []Subtree{}
	}

	return out
}

func toSectionGroup(g *groupParts[SectionEntry]) *SectionGroup {
	if g == nil {
		return nil
	}

	out := &SectionGroup{Form: g.form, Sections: g.entries, Options: g.options}
	for _, st := range g.subtrees {
		out.Subtrees = append(out.Subtrees, SectionSubtree{Options: st.options, Sections: st.entries})
	}

	if g.form == FormExplicit && out.Subtrees == nil {
		out.Subtrees = []SectionSubtree{}
	}

	return out
}

func toPartGroup(g *groupParts[SectionEntry]) *PartGroup {
	if g == nil {
		return nil
	}

	out := &PartGroup{Form: g.form, Chapters: g.entries, Options: g.options}
	for _, st := range g.subtrees {
		out.Parts = append(out.Parts, Part{Options: st.options, Chapters: st.entries})
	}

	if g.form == FormExplicit && out.Parts == nil {
		out.Parts = []Part{}
	}

	return out
}

func deref(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}

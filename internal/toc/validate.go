package toc

import (
	"fmt"
	"slices"
	"strings"

	"tocnorm/internal/diagnostic"
	"tocnorm/internal/match"
)

// Validate matches raw against the dialect shapes and returns the typed
// document. Every failure is reported as a *ValidationError; Validate
// never panics on malformed input.
//
// The dialect comes from the "format" key. For each dialect the root is
// matched as shorthand, explicit, then bare, and the first shape that
// matches wins. Unknown keys are rejected everywhere.
func Validate(raw any) (*Document, error) {
	doc, diags := validateDocument(raw)
	if !diags.IsValid() {
		return nil, &ValidationError{Diagnostics: *diags}
	}

	return doc, nil
}

func validateDocument(raw any) (*Document, *diagnostic.Diagnostics) {
	diags := &diagnostic.Diagnostics{}

	obj, ok := toObject(raw)
	if !ok {
		diags.AddError("not_a_mapping",
			fmt.Sprintf("table of contents must be a mapping, got %s", describe(raw)), "", "")

		return nil, diags
	}

	format, ok := readFormat(obj, diags)
	if !ok {
		return nil, diags
	}

	if !present(obj, "root") {
		diags.AddError("missing_root", `missing required key "root"`, format.String(), "")
		return nil, diags
	}

	v := &validator{format: format}

	switch format {
	case FormatArticle:
		if !checkGroupForm(obj, "", format.String(), articleVocab, diags) {
			return nil, diags
		}

		article, d := matchRoot(v, obj, articleVocab, v.sectionEntry,
			func(root string, defaults *Options, g *groupParts[SectionEntry]) *ArticleTOC {
				return &ArticleTOC{Root: root, Defaults: defaults, Children: toSectionGroup(g)}
			})
		if !d.IsValid() {
			return nil, d
		}

		return &Document{Format: format, Article: article}, d

	case FormatBook:
		if !checkGroupForm(obj, "", format.String(), bookVocab, diags) {
			return nil, diags
		}

		book, d := matchRoot(v, obj, bookVocab, v.sectionEntry,
			func(root string, defaults *Options, g *groupParts[SectionEntry]) *BookTOC {
				return &BookTOC{Root: root, Defaults: defaults, Children: toPartGroup(g)}
			})
		if !d.IsValid() {
			return nil, d
		}

		return &Document{Format: format, Book: book}, d

	default:
		if !checkGroupForm(obj, "", format.String(), genericVocab, diags) {
			return nil, diags
		}

		generic, d := matchRoot(v, obj, genericVocab, v.genericEntry,
			func(root string, defaults *Options, g *groupParts[Entry]) *GenericTOC {
				return &GenericTOC{Root: root, Defaults: defaults, Children: toGroup(g)}
			})
		if !d.IsValid() {
			return nil, d
		}

		return &Document{Format: format, Generic: generic}, d
	}
}

// readFormat selects the dialect. A missing (or null) format key selects
// the generic dialect; any value other than a known tag is an error.
func readFormat(obj object, diags *diagnostic.Diagnostics) (Format, bool) {
	raw, ok := lookup(obj, "format")
	if !ok {
		return FormatGeneric, true
	}

	s, ok := raw.(string)
	if !ok {
		diags.AddError("invalid_type", fmt.Sprintf(`"format" must be a string, got %s`, describe(raw)), "", "format")
		return "", false
	}

	known := make([]string, 0, len(KnownFormats))
	for _, f := range KnownFormats {
		if Format(s) == f {
			return f, true
		}

		known = append(known, string(f))
	}

	diags.AddError("unknown_format",
		fmt.Sprintf("unknown format %q: expected %s, or no format key for the generic dialect",
			s, strings.Join(quoteAll(known), " or ")),
		"", "format",
		quoteAll(match.Suggest(s, known, match.DefaultSuggestThreshold))...)

	return "", false
}

// matchRoot matches the document root of one dialect.
func matchRoot[E any, T any](
	v *validator,
	obj object,
	voc vocabulary,
	entry entryMatcher[E],
	build func(root string, defaults *Options, g *groupParts[E]) T,
) (T, *diagnostic.Diagnostics) {
	base := []string{"root", "defaults"}
	if v.format != FormatGeneric {
		base = append(base, "format")
	}

	with := func(keys ...string) []string {
		return append(slices.Clone(base), keys...)
	}

	shapes := []shape[T]{
		{
			name:     voc.name + "/shorthand",
			requires: []string{voc.childKey},
			match: func(f *fields) T {
				f.closed(with(voc.childKey, "options")...)
				return build(f.str("root"), f.options("defaults"), shorthandGroup(f, voc, entry))
			},
		},
		{
			name:     voc.name + "/explicit",
			requires: []string{voc.subtreesKey},
			match: func(f *fields) T {
				f.closed(with(voc.subtreesKey)...)
				return build(f.str("root"), f.options("defaults"), explicitGroup(f, voc, entry))
			},
		},
		{
			name:     voc.name + "/bare",
			excludes: []string{voc.childKey, voc.subtreesKey},
			match: func(f *fields) T {
				f.closed(with()...)
				return build(f.str("root"), f.options("defaults"), nil)
			},
		},
	}

	return firstMatch(v, obj, "", shapes)
}

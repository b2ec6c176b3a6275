package toc

// optionKeys are the toctree option keys, in their YAML spelling.
var optionKeys = []string{"caption", "hidden", "maxdepth", "numbered", "reversed", "titlesonly"}

// inlineOptions reads toctree options written directly on the mapping,
// as explicit subtrees do.
func (f *fields) inlineOptions() Options {
	return Options{
		Caption:    f.optionalStr("caption"),
		Hidden:     f.boolean("hidden"),
		MaxDepth:   f.integer("maxdepth", -1),
		Numbered:   f.boolean("numbered"),
		Reversed:   f.boolean("reversed"),
		TitlesOnly: f.boolean("titlesonly"),
	}
}

// options reads an optional nested options mapping ("options" on a
// shorthand group, "defaults" on the document root).
func (f *fields) options(key string) *Options {
	raw, ok := f.get(key)
	if !ok {
		return nil
	}

	sub := f.child(raw, f.at(key))
	if sub == nil {
		return nil
	}

	sub.closed(optionKeys...)
	o := sub.inlineOptions()

	return &o
}

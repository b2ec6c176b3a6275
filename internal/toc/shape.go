package toc

import (
	"fmt"
	"math"
	"slices"
	"sort"
	"strconv"
	"strings"

	"tocnorm/internal/diagnostic"
	"tocnorm/internal/match"
	"tocnorm/utils"
)

// object is a decoded YAML/JSON mapping.
type object = map[string]any

// vocabulary names the keys a dialect level uses for its child groups.
type vocabulary struct {
	name        string
	childKey    string
	subtreesKey string
}

var (
	genericVocab = vocabulary{name: "generic", childKey: "entries", subtreesKey: "subtrees"}
	articleVocab = vocabulary{name: "article", childKey: "sections", subtreesKey: "subtrees"}
	bookVocab    = vocabulary{name: "book", childKey: "chapters", subtreesKey: "parts"}
	sectionVocab = vocabulary{name: "section", childKey: "sections", subtreesKey: "subtrees"}
)

// dialectKeys lists the dialects owning each group key, for suggestions.
var dialectKeys = map[string][]Format{
	"entries":  {FormatGeneric},
	"sections": {FormatArticle, FormatBook},
	"chapters": {FormatBook},
	"parts":    {FormatBook},
}

// validator carries the dialect being matched.
type validator struct {
	format Format
}

// shape is one alternative of a union. A shape is attempted only when all
// of its requires keys are present and none of its excludes keys are.
type shape[T any] struct {
	name     string
	requires []string
	excludes []string
	match    func(f *fields) T
}

func (s shape[T]) applies(obj object) bool {
	for _, k := range s.requires {
		if !present(obj, k) {
			return false
		}
	}

	for _, k := range s.excludes {
		if present(obj, k) {
			return false
		}
	}

	return true
}

// firstMatch tries shapes in order and returns the first one that matches
// without errors. Otherwise it returns the errors of every attempted shape.
func firstMatch[T any](v *validator, obj object, path string, shapes []shape[T]) (T, *diagnostic.Diagnostics) {
	var (
		zero      T
		attempted int
	)

	failed := &diagnostic.Diagnostics{}

	for _, s := range shapes {
		if !s.applies(obj) {
			continue
		}

		attempted++

		f := v.fields(obj, path)
		out := s.match(f)
		f.diags.Attribute(s.name)

		if f.diags.IsValid() {
			return out, f.diags
		}

		failed.Merge(*f.diags)
	}

	if attempted == 0 {
		names := make([]string, 0, len(shapes))
		for _, s := range shapes {
			names = append(names, s.name)
		}

		failed.AddError("no_matching_shape",
			fmt.Sprintf("matches none of the shapes %s", strings.Join(names, ", ")), "", path)
	}

	return zero, failed
}

// fields reads typed values out of one mapping and records what is wrong
// with them.
type fields struct {
	v     *validator
	obj   object
	path  string
	diags *diagnostic.Diagnostics
}

func (v *validator) fields(obj object, path string) *fields {
	return &fields{v: v, obj: obj, path: path, diags: &diagnostic.Diagnostics{}}
}

// child returns a reader for a nested mapping sharing f's diagnostics, or
// nil when raw is not a mapping.
func (f *fields) child(raw any, path string) *fields {
	obj, ok := toObject(raw)
	if !ok {
		f.diags.AddError("not_a_mapping", fmt.Sprintf("expected a mapping, got %s", describe(raw)), "", path)
		return nil
	}

	return &fields{v: f.v, obj: obj, path: path, diags: f.diags}
}

func (f *fields) at(key string) string {
	return joinPath(f.path, key)
}

// get returns the value of key. A null value counts as absent.
func (f *fields) get(key string) (any, bool) {
	return lookup(f.obj, key)
}

// closed reports every key outside allowed.
func (f *fields) closed(allowed ...string) {
	for _, key := range sortedKeys(f.obj) {
		if !present(f.obj, key) || slices.Contains(allowed, key) {
			continue
		}

		f.diags.AddError("unknown_field", fmt.Sprintf("unknown key %q", key), "", f.path,
			f.v.suggestKey(key, allowed)...)
	}
}

func (f *fields) missing(key string) {
	f.diags.AddError("missing_key", fmt.Sprintf("missing required key %q", key), "", f.path)
}

func (f *fields) invalidType(key, want string, got any) {
	f.diags.AddError("invalid_type",
		fmt.Sprintf("%q must be %s, got %s", key, want, describe(got)), "", f.at(key))
}

// str reads a required non-empty string.
func (f *fields) str(key string) string {
	val, ok := f.get(key)
	if !ok {
		f.missing(key)
		return ""
	}

	s, ok := val.(string)
	if !ok {
		f.invalidType(key, "a string", val)
		return ""
	}

	if s == "" {
		f.diags.AddError("empty_value", fmt.Sprintf("%q must not be empty", key), "", f.at(key))
	}

	return s
}

func (f *fields) optionalStr(key string) *string {
	val, ok := f.get(key)
	if !ok {
		return nil
	}

	s, ok := val.(string)
	if !ok {
		f.invalidType(key, "a string", val)
		return nil
	}

	return &s
}

func (f *fields) boolean(key string) *bool {
	val, ok := f.get(key)
	if !ok {
		return nil
	}

	b, ok := val.(bool)
	if !ok {
		f.invalidType(key, "a boolean", val)
		return nil
	}

	return &b
}

func (f *fields) integer(key string, minimum int) *int {
	val, ok := f.get(key)
	if !ok {
		return nil
	}

	n, ok := toInt(val)
	if !ok && isWhole(val) {
		f.diags.AddError("out_of_range", fmt.Sprintf("%q is too large, got %v", key, val), "", f.at(key))
		return nil
	}

	if !ok {
		f.invalidType(key, "an integer", val)
		return nil
	}

	if n < minimum {
		f.diags.AddError("out_of_range",
			fmt.Sprintf("%q must be at least %d, got %d", key, minimum, n), "", f.at(key))

		return nil
	}

	return &n
}

// list reads a required sequence.
func (f *fields) list(key string) []any {
	val, ok := f.get(key)
	if !ok {
		f.missing(key)
		return nil
	}

	items, ok := val.([]any)
	if !ok {
		f.invalidType(key, "a list", val)
		return nil
	}

	return items
}

func (v *validator) suggestKey(key string, allowed []string) []string {
	if owners, ok := dialectKeys[key]; ok && !slices.Contains(owners, v.format) {
		hints := make([]string, 0, len(owners))
		for _, o := range owners {
			hints = append(hints, o.Declaration())
		}

		return hints
	}

	return quoteAll(match.Suggest(key, allowed, match.DefaultSuggestThreshold))
}

// --- helpers ---

func toObject(raw any) (object, bool) {
	switch m := raw.(type) {
	case map[string]any:
		return m, true
	case map[any]any:
		out := make(object, len(m))
		for k, v := range m {
			out[fmt.Sprint(k)] = v
		}

		return out, true
	default:
		return nil, false
	}
}

func lookup(obj object, key string) (any, bool) {
	val, ok := obj[key]
	return val, ok && val != nil
}

func present(obj object, key string) bool {
	_, ok := lookup(obj, key)
	return ok
}

func sortedKeys(obj object) []string {
	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	return keys
}

func toInt(val any) (int, bool) {
	switch n := val.(type) {
	case int:
		return n, true
	case int8:
		return int(n), true
	case int16:
		return int(n), true
	case int32:
		return int(n), true
	case int64:
		return int(n), utils.IsInRange(math.MinInt, n, math.MaxInt)
	case uint:
		return int(n), n <= math.MaxInt
	case uint8:
		return int(n), true
	case uint16:
		return int(n), true
	case uint32:
		return int(n), uint64(n) <= math.MaxInt
	case uint64:
		return int(n), n <= math.MaxInt
	case float64:
		// float64(math.MinInt) is exact; its negation is the first value
		// past math.MaxInt.
		lo := float64(math.MinInt)
		if n != math.Trunc(n) || n < lo || n >= -lo {
			return 0, false
		}

		return int(n), true
	default:
		return 0, false
	}
}

// isWhole reports whether val is an integer, or a finite float64 without
// a fractional part, whatever its magnitude.
func isWhole(val any) bool {
	switch n := val.(type) {
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return true
	case float64:
		return !math.IsInf(n, 0) && n == math.Trunc(n)
	default:
		return false
	}
}

func describe(val any) string {
	switch val.(type) {
	case nil:
		return "null"
	case string:
		return "a string"
	case bool:
		return "a boolean"
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return "an integer"
	case float32, float64:
		return "a number"
	case []any:
		return "a list"
	case map[string]any, map[any]any:
		return "a mapping"
	default:
		return fmt.Sprintf("%T", val)
	}
}

func joinPath(path, key string) string {
	if path == "" {
		return key
	}

	return path + "." + key
}

func indexPath(path string, i int) string {
	return path + "[" + strconv.Itoa(i) + "]"
}

func quoteAll(words []string) []string {
	if len(words) == 0 {
		return nil
	}

	out := make([]string, len(words))
	for i, w := range words {
		out[i] = strconv.Quote(w)
	}

	return out
}

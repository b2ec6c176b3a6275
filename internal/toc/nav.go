package toc

import "tocnorm/internal/common"

// NavEntry is one node of the canonical navigation tree.
//
// Exactly one of Path, URL and Pattern is set on a leaf reference. A
// subtree wrapper sets none of them and carries a Title and Children.
type NavEntry struct {
	// Path is the resolved file, relative to the base directory, with
	// forward slashes.
	Path     string     `json:"file,omitempty" yaml:"file,omitempty"`
	URL      string     `json:"url,omitempty" yaml:"url,omitempty"`
	Pattern  string     `json:"pattern,omitempty" yaml:"pattern,omitempty"`
	Title    string     `json:"title,omitempty" yaml:"title,omitempty"`
	Children []NavEntry `json:"children,omitempty" yaml:"children,omitempty"`
}

// NavKind classifies a NavEntry.
type NavKind int

const (
	_ NavKind = iota

	NavFile
	NavURL
	NavPattern
	// NavGroup is a subtree wrapper without a reference of its own.
	NavGroup
)

func (k NavKind) String() string {
	switch k {
	case NavFile:
		return "file"
	case NavURL:
		return "url"
	case NavPattern:
		return "pattern"
	case NavGroup:
		return "group"
	default:
		return common.UnknownStr
	}
}

// Kind reports which variant the entry is.
func (e NavEntry) Kind() NavKind {
	switch {
	case e.Path != "":
		return NavFile
	case e.URL != "":
		return NavURL
	case e.Pattern != "":
		return NavPattern
	default:
		return NavGroup
	}
}

// Leaves returns the file, URL and pattern entries of a tree in document
// order, without their children.
func Leaves(entries []NavEntry) []NavEntry {
	var out []NavEntry

	var walk func([]NavEntry)
	walk = func(list []NavEntry) {
		for _, e := range list {
			if e.Kind() != NavGroup {
				leaf := e
				leaf.Children = nil
				out = append(out, leaf)
			}

			walk(e.Children)
		}
	}
	walk(entries)

	return out
}

// Count returns the number of entries in the tree, wrappers included.
func Count(entries []NavEntry) int {
	n := len(entries)
	for _, e := range entries {
		n += Count(e.Children)
	}

	return n
}

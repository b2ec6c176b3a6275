// Package discover finds table of contents files below a directory.
package discover

import (
	"errors"
	"fmt"
	"path"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/afero"
)

// ErrInvalidPattern is returned for malformed, absolute or escaping patterns.
var ErrInvalidPattern = errors.New("invalid pattern")

// Sources returns the files below root matching at least one include
// pattern and no exclude pattern. Patterns use doublestar syntax with
// forward slashes and are relative to root. An exclude pattern also
// matches against the bare file name.
//
// The result holds paths joined with root, sorted lexically, without
// duplicates.
func Sources(fsys afero.Fs, root string, include, exclude []string) ([]string, error) {
	for _, p := range slices.Concat(include, exclude) {
		if err := validatePattern(p); err != nil {
			return nil, err
		}
	}

	iofs := afero.NewIOFS(afero.NewBasePathFs(fsys, root))
	seen := make(map[string]bool)

	for _, pattern := range include {
		matches, err := doublestar.Glob(iofs, pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("failed to glob %q under %s: %w", pattern, root, err)
		}

		for _, m := range matches {
			if !excluded(m, exclude) {
				seen[m] = true
			}
		}
	}

	rels := make([]string, 0, len(seen))
	for m := range seen {
		rels = append(rels, m)
	}

	slices.Sort(rels)

	out := make([]string, 0, len(rels))
	for _, rel := range rels {
		out = append(out, filepath.Join(root, filepath.FromSlash(rel)))
	}

	return out, nil
}

func validatePattern(pattern string) error {
	if !doublestar.ValidatePattern(pattern) {
		return fmt.Errorf("%w: %q is malformed", ErrInvalidPattern, pattern)
	}

	if path.IsAbs(pattern) || filepath.IsAbs(pattern) {
		return fmt.Errorf("%w: %q is absolute", ErrInvalidPattern, pattern)
	}

	if slices.Contains(strings.Split(path.Clean(pattern), "/"), "..") {
		return fmt.Errorf("%w: %q leaves the root directory", ErrInvalidPattern, pattern)
	}

	return nil
}

// excluded reports whether rel, a slash-separated path, matches one of
// the patterns either in full or by its base name.
func excluded(rel string, patterns []string) bool {
	base := path.Base(rel)

	for _, p := range patterns {
		if ok, _ := doublestar.Match(p, rel); ok {
			return true
		}

		if ok, _ := doublestar.Match(p, base); ok {
			return true
		}
	}

	return false
}

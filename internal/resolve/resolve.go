// Package resolve finds content files referenced by a table of contents
// when the reference omits the file extension.
package resolve

import (
	"errors"
	"fmt"

	"github.com/spf13/afero"
)

// ErrNotFound is returned when no file matches a candidate path.
var ErrNotFound = errors.New("file not found")

// DefaultExtensions are the content file extensions tried, in order,
// after the bare candidate path.
var DefaultExtensions = []string{".md", ".ipynb", ".tex", ".myst.json"}

// Resolver maps a candidate path, possibly missing its extension, onto an
// existing file.
type Resolver interface {
	Resolve(candidate string) (string, error)
}

// ResolverFunc adapts a function to the Resolver interface.
type ResolverFunc func(candidate string) (string, error)

func (f ResolverFunc) Resolve(candidate string) (string, error) {
	return f(candidate)
}

// ExtensionResolver resolves candidates against a filesystem by trying
// the candidate itself and then the candidate with each extension.
type ExtensionResolver struct {
	fs         afero.Fs
	extensions []string
}

// NewExtensionResolver creates a resolver over fs. An empty extension
// list selects DefaultExtensions.
func NewExtensionResolver(fs afero.Fs, extensions ...string) *ExtensionResolver {
	if len(extensions) == 0 {
		extensions = DefaultExtensions
	}

	return &ExtensionResolver{fs: fs, extensions: extensions}
}

// NewOsResolver creates a resolver over the operating system filesystem.
func NewOsResolver(extensions ...string) *ExtensionResolver {
	return NewExtensionResolver(afero.NewOsFs(), extensions...)
}

// Resolve returns the first existing regular file among the candidate and
// the candidate with each configured extension appended.
func (r *ExtensionResolver) Resolve(candidate string) (string, error) {
	if candidate == "" {
		return "", fmt.Errorf("empty path: %w", ErrNotFound)
	}

	ok, err := r.isFile(candidate)
	if err != nil {
		return "", err
	}

	if ok {
		return candidate, nil
	}

	for _, ext := range r.extensions {
		path := candidate + ext

		ok, err := r.isFile(path)
		if err != nil {
			return "", err
		}

		if ok {
			return path, nil
		}
	}

	return "", fmt.Errorf("%s (tried extensions %v): %w", candidate, r.extensions, ErrNotFound)
}

func (r *ExtensionResolver) isFile(path string) (bool, error) {
	info, err := r.fs.Stat(path)
	if err != nil {
		if errors.Is(err, afero.ErrFileNotFound) || isNotExist(err) {
			return false, nil
		}

		return false, fmt.Errorf("failed to stat %s: %w", path, err)
	}

	return info.Mode().IsRegular(), nil
}

package toc

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"

	"tocnorm/internal/resolve"
)

const testBaseDir = "/book"

// newTestResolver creates a resolver over an in-memory tree holding files
// (relative to testBaseDir).
func newTestResolver(t *testing.T, files ...string) resolve.Resolver {
	t.Helper()

	fs := afero.NewMemMapFs()
	for _, f := range files {
		require.NoError(t, afero.WriteFile(fs, filepath.Join(testBaseDir, f), []byte("# "+f), 0o644))
	}

	return resolve.NewExtensionResolver(fs)
}

func mustParse(t *testing.T, yaml string) any {
	t.Helper()

	raw, err := Parse([]byte(yaml))
	require.NoError(t, err)

	return raw
}

func mustValidate(t *testing.T, yaml string) *Document {
	t.Helper()

	doc, err := Validate(mustParse(t, yaml))
	require.NoError(t, err)

	return doc
}

// validationErrors parses and validates yaml, expecting a failure.
func validationErrors(t *testing.T, yaml string) *ValidationError {
	t.Helper()

	_, err := Validate(mustParse(t, yaml))
	require.Error(t, err)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr), "expected *ValidationError, got %T", err)

	return verr
}

func ptr[T any](v T) *T {
	return &v
}

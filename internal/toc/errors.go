package toc

import (
	"errors"
	"fmt"

	"tocnorm/internal/diagnostic"
)

// ErrUnreachable marks a broken contract between the validator and the
// builder. It is raised with panic, never returned.
var ErrUnreachable = errors.New("unreachable")

// ValidationError reports a document that matches none of the dialect
// shapes. Diagnostics names each attempted shape and why it failed.
type ValidationError struct {
	Diagnostics diagnostic.Diagnostics
}

func (e *ValidationError) Error() string {
	if err := e.Diagnostics.Error(); err != nil {
		return "invalid table of contents: " + err.Error()
	}

	return "invalid table of contents"
}

// ResolutionError reports a file reference that does not exist under the
// base directory.
type ResolutionError struct {
	// FieldPath locates the reference in the generic form of the document.
	FieldPath string
	// File is the reference as written.
	File string
	Err  error
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("cannot resolve %q at %s: %v", e.File, e.FieldPath, e.Err)
}

func (e *ResolutionError) Unwrap() error {
	return e.Err
}

func unreachable(format string, args ...any) {
	panic(fmt.Errorf("%w: "+format, append([]any{ErrUnreachable}, args...)...))
}

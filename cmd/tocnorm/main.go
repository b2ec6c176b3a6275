// Package main provides the CLI entrypoint for tocnorm.
//
// tocnorm upgrades Jupyter Book tables of contents (_toc.yml, in the
// jb-book, jb-article or format-less dialect) into the MyST toc form:
//   - validate checks every table of contents found under a directory
//   - upgrade normalizes them and prints or writes myst.toc.yml
package main

import (
	"fmt"
	"os"

	"github.com/spf13/afero"
)

func main() {
	if err := newRootCmd(afero.NewOsFs()).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

package main

import (
	"errors"
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"tocnorm/internal/toc"
	"tocnorm/internal/upgrade"
)

func newValidateCmd(fs afero.Fs) *cobra.Command {
	var dump bool

	cmd := &cobra.Command{
		Use:   "validate [root]",
		Short: "Check every table of contents under root",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := setup(cmd, fs, args)
			if err != nil {
				return err
			}

			results, err := upgrade.NewRunner(fs, upgrade.Options{Concurrency: s.cfg.Concurrency}).
				Check(s.ctx, s.sources)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			cs := spew.ConfigState{Indent: "  ", DisablePointerAddresses: true, SortKeys: true}

			for _, res := range results {
				var verr *toc.ValidationError

				switch {
				case errors.As(res.Err, &verr):
					fmt.Fprintf(out, "FAIL %s\n", res.Source)

					for _, d := range verr.Diagnostics.Errors {
						fmt.Fprintf(out, "  %s\n", d.String())
					}
				case res.Err != nil:
					fmt.Fprintf(out, "FAIL %s\n  %v\n", res.Source, res.Err)
				default:
					fmt.Fprintf(out, "ok   %s (%s)\n", res.Source, res.Document.Format)

					if dump {
						cs.Fdump(out, res.Document)
					}
				}
			}

			return failure(results)
		},
	}

	cmd.Flags().BoolVar(&dump, "dump", false, "print the validated document")

	return cmd
}

package main

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"tocnorm/internal/upgrade"
)

func newUpgradeCmd(fs afero.Fs) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "upgrade [root]",
		Short: "Convert every table of contents under root into MyST toc entries",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := setup(cmd, fs, args)
			if err != nil {
				return err
			}

			r := upgrade.NewRunner(fs, upgrade.Options{
				Concurrency: s.cfg.Concurrency,
				Format:      upgrade.Format(s.cfg.Output),
				Write:       s.cfg.Write,
				Extensions:  s.cfg.Extensions,
			})

			results, err := r.Run(s.ctx, s.sources)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()

			for _, res := range results {
				switch {
				case res.Err != nil:
					fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", res.Source, res.Err)
				case res.Written != "":
					fmt.Fprintf(out, "%s -> %s\n", res.Source, res.Written)
				default:
					if upgrade.Format(s.cfg.Output) == upgrade.FormatYAML {
						fmt.Fprintf(out, "# %s\n", res.Source)
					}

					_, _ = out.Write(res.Output)
				}
			}

			return failure(results)
		},
	}

	cmd.Flags().StringSlice("extensions", nil, "extensions tried on file references without one")
	cmd.Flags().StringP("output", "o", "", "output format: yaml or json")
	cmd.Flags().BoolP("write", "w", false, "write myst.toc.yml next to each source")

	return cmd
}

func failure(results []upgrade.Result) error {
	if n := upgrade.Failed(results); n > 0 {
		return fmt.Errorf("%d of %d tables of contents failed", n, len(results))
	}

	return nil
}

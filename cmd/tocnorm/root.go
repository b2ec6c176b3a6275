package main

import (
	"context"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"tocnorm/internal/common"
	"tocnorm/internal/config"
	"tocnorm/internal/discover"
	"tocnorm/internal/logger"
)

// flagKeys maps command line flags onto configuration keys.
var flagKeys = map[string]string{
	"log-level":   "log.level",
	"log-json":    "log.json",
	"include":     "include",
	"exclude":     "exclude",
	"extensions":  "extensions",
	"concurrency": "concurrency",
	"output":      "output",
	"write":       "write",
}

func newRootCmd(fs afero.Fs) *cobra.Command {
	root := &cobra.Command{
		Use:           "tocnorm",
		Short:         "Upgrade Jupyter Book tables of contents to MyST",
		Long:          "tocnorm validates _toc.yml files in any of the Jupyter Book dialects and converts them into MyST toc entries.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().String("log-level", "", "log level: debug, info, warn, error or disabled")
	root.PersistentFlags().Bool("log-json", false, "log as JSON")
	root.PersistentFlags().StringSlice("include", nil, "doublestar patterns selecting table of contents files")
	root.PersistentFlags().StringSlice("exclude", nil, "doublestar patterns of files to skip")
	root.PersistentFlags().IntP("concurrency", "j", 0, "number of files processed at once")

	root.AddCommand(
		newUpgradeCmd(fs),
		newValidateCmd(fs),
	)

	return root
}

// session is the state shared by every subcommand run.
type session struct {
	cfg     *config.Config
	ctx     context.Context
	sources []string
}

// setup loads the configuration from the environment and the flags that
// were set, creates the logger and discovers the source files. An
// optional positional argument overrides the root directory.
func setup(cmd *cobra.Command, fs afero.Fs, args []string) (*session, error) {
	overrides := make(map[string]any)

	cmd.Flags().Visit(func(f *pflag.Flag) {
		key, ok := flagKeys[f.Name]
		if !ok {
			return
		}

		if sv, ok := f.Value.(pflag.SliceValue); ok {
			overrides[key] = sv.GetSlice()
			return
		}

		overrides[key] = f.Value.String()
	})

	if root, ok := common.First(args); ok {
		overrides["root"] = root
	}

	cfg, err := config.Load(overrides)
	if err != nil {
		return nil, err
	}

	lc := cfg.Logger()
	lc.Output = cmd.ErrOrStderr()
	log := logger.NewLogger(lc)

	sources, err := discover.Sources(fs, cfg.Root, cfg.Include, cfg.Exclude)
	if err != nil {
		return nil, err
	}

	log.Debug("discovered table of contents files", "root", cfg.Root, "count", len(sources))

	return &session{
		cfg:     cfg,
		ctx:     logger.ContextWithLogger(cmd.Context(), log),
		sources: sources,
	}, nil
}

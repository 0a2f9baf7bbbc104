package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/ricciflow/ricci"
)

func newRootCmd() *cobra.Command {
	var verbose bool
	root := &cobra.Command{
		Use:           "ricciflow",
		Short:         "Conformal parameterization of triangle meshes by discrete Ricci flow",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			level := slog.LevelWarn
			if verbose {
				level = slog.LevelDebug
			}
			h := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})
			ricci.SetLogger(slog.New(h))
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log solver progress to stderr")

	root.AddCommand(newRunCmd(), newSettingsCmd())
	return root
}

package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/ricciflow/ricci"
)

func newSettingsCmd() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Print the default solver settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return ricci.EncodeSettings(cmd.OutOrStdout(), ricci.Format(format), ricci.DefaultSettings())
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", string(ricci.FormatYAML), "output format: yaml or toml")
	return cmd
}

package main

import (
	"github.com/spf13/cobra"
)

func newTrackCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "track <tracking-number>",
		Short: "Show tracking details for a package",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := a.client.Track(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), result)
		},
	}
}

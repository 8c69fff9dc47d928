package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/handiism/lobbygen/internal/generate"
)

func newScanCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "scan",
		Short: "List lobby tracks and their resolved titles without writing files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := ctx.ensureSettings()
			if err != nil {
				return err
			}

			out := newPrinter(cmd.ErrOrStderr(), ctx.verbose)
			manager := generate.NewManager(settings, out.event)

			if err := manager.Initialize(cmd.Context()); err != nil {
				return err
			}
			tracks, err := manager.Preview(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), renderTrackTable(tracks, settings.VirtualPrefix))
			return nil
		},
	}
}

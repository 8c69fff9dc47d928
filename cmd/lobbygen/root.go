package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/handiism/lobbygen/internal/generate"
)

func newRootCommand() *cobra.Command {
	ctx := &commandContext{}

	rootCmd := &cobra.Command{
		Use:           "lobbygen",
		Short:         "Generate lobby music prototypes from Resources/Audio/Lobby",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Annotations["skipConfigLoad"] == "true" {
				return nil
			}
			_, err := ctx.ensureSettings()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, ctx)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&ctx.configFlag, "config", "c", "", "Configuration file path (default "+defaultConfigPath+")")
	rootCmd.PersistentFlags().StringVar(&ctx.rootFlag, "root", "", "Game checkout root (overrides root_dir)")
	rootCmd.PersistentFlags().BoolVarP(&ctx.verbose, "verbose", "v", false, "Show verbose output")
	rootCmd.Flags().BoolVar(&ctx.dryRun, "dry-run", false, "Scan and resolve titles without writing files")

	rootCmd.AddCommand(newScanCommand(ctx))
	rootCmd.AddCommand(newConfigCommand(ctx))

	return rootCmd
}

func runGenerate(cmd *cobra.Command, ctx *commandContext) error {
	settings, err := ctx.ensureSettings()
	if err != nil {
		return err
	}

	out := newPrinter(cmd.OutOrStdout(), ctx.verbose)
	manager := generate.NewManager(settings, out.event)

	out.header("Lobby music generator")

	if err := manager.Initialize(cmd.Context()); err != nil {
		return err
	}

	if ctx.dryRun {
		tracks, err := manager.Preview(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), renderTrackTable(tracks, settings.VirtualPrefix))
		fmt.Fprintln(cmd.OutOrStdout(), "[Dry run - no files written]")
		return nil
	}

	return manager.Generate(cmd.Context())
}

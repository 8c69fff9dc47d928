package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/handiism/lobbygen/internal/config"
)

func newConfigCommand(ctx *commandContext) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration utilities",
	}

	configCmd.AddCommand(newConfigInitCommand(ctx))
	configCmd.AddCommand(newConfigValidateCommand(ctx))

	return configCmd
}

func newConfigInitCommand(ctx *commandContext) *cobra.Command {
	var overwrite bool

	cmd := &cobra.Command{
		Use:         "init",
		Short:       "Write the default configuration file",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			target := ctx.configPath()

			if !overwrite {
				if _, err := os.Stat(target); err == nil {
					return fmt.Errorf("config file already exists at %s (use --overwrite to replace it)", target)
				} else if !os.IsNotExist(err) {
					return fmt.Errorf("check config path: %w", err)
				}
			}

			settings := config.DefaultSettings()
			if root := strings.TrimSpace(ctx.rootFlag); root != "" {
				settings.RootDir = root
			}
			if err := settings.SaveContext(cmd.Context(), target); err != nil {
				return fmt.Errorf("write config: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Wrote default configuration to %s\n", target)
			return nil
		},
	}

	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "Overwrite existing configuration if present")
	return cmd
}

func newConfigValidateCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate the configuration file and resource layout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := ctx.ensureSettings()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Config path: %s\n", ctx.configPath())
			if _, err := os.Stat(ctx.configPath()); os.IsNotExist(err) {
				fmt.Fprintln(out, "Config file did not exist; defaults were used")
			}

			dir := settings.ResolvedAudioDir()
			info, err := os.Stat(dir)
			if err != nil {
				return fmt.Errorf("audio directory: %w", err)
			}
			if !info.IsDir() {
				return fmt.Errorf("audio directory %s is not a directory", dir)
			}

			fmt.Fprintf(out, "Audio directory: %s\n", dir)
			fmt.Fprintf(out, "Sound collection: %s\n", settings.ResolvedCollectionPath())
			fmt.Fprintf(out, "Jukebox catalog: %s\n", settings.ResolvedJukeboxPath())
			fmt.Fprintln(out, "Configuration valid")
			return nil
		},
	}
}

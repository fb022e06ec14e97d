package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/maxgfr/benford-law/internal/config"
)

func newConfigCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage benford configuration",
		Long: `Manage benford configuration files and settings.

Configuration hierarchy (highest to lowest priority):
  1. CLI flags
  2. Environment variables (BENFORD_*)
  3. Config file ($XDG_CONFIG_HOME/benford/config.yaml)
  4. Defaults`,
	}

	cmd.AddCommand(newConfigShowCmd(a))
	cmd.AddCommand(newConfigInitCmd(a))

	return cmd
}

func newConfigShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if a.cfgUsed != "" {
				fmt.Fprintf(cmd.ErrOrStderr(), "Configuration file: %s\n\n", a.cfgUsed)
			} else {
				fmt.Fprintf(cmd.ErrOrStderr(), "No configuration file found (using defaults)\n\n")
			}

			data, err := config.Marshal(a.cfg)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}

func newConfigInitCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write the default configuration file",
		Long: `Write the built-in defaults to the config file (--config, or
$XDG_CONFIG_HOME/benford/config.yaml). An existing file is never overwritten.`,
		Args: cobra.NoArgs,
		// The file may not exist yet, so skip loading it.
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			path := a.cfgFile
			if path == "" {
				path = config.DefaultConfigPath()
			}

			if err := config.WriteFile(path, config.Default()); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "✓ Created default configuration: %s\n", path)
			fmt.Fprintf(out, "\nTo view the configuration:\n")
			fmt.Fprintf(out, "  benford config show\n")
			return nil
		},
	}
}

package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/chazuruo/histclean/internal/config"
)

// NewConfigCommand creates the config command and its subcommands.
func NewConfigCommand(g *GlobalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the histclean configuration file",
	}

	cmd.AddCommand(newConfigInitCommand(g))
	cmd.AddCommand(newConfigShowCommand(g))

	return cmd
}

// ConfigInitOptions contains the options for the config init command.
type ConfigInitOptions struct {
	Force bool
}

func newConfigInitCommand(g *GlobalOptions) *cobra.Command {
	opts := &ConfigInitOptions{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config file with the default settings",
		Long: `Write a config file containing every setting at its default value.

The file is written to --config when given, otherwise to
$XDG_CONFIG_HOME/histclean/config.toml (~/.config/histclean/config.toml).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigInit(cmd, g, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.Force, "force", false, "overwrite an existing config file")

	return cmd
}

func runConfigInit(cmd *cobra.Command, g *GlobalOptions, opts *ConfigInitOptions) error {
	path := g.ConfigPath
	if path == "" {
		var err error
		if path, err = config.DefaultConfigPath(); err != nil {
			return err
		}
	}
	path = config.ExpandHome(path)

	if _, err := os.Stat(path); err == nil && !opts.Force {
		return fmt.Errorf("config file already exists at %s (use --force to overwrite)", path)
	}

	if err := config.Write(path, config.DefaultConfig()); err != nil {
		return err
	}

	writeln(cmd.OutOrStdout(), "Wrote default config to %s", path)
	return nil
}

func newConfigShowCommand(g *GlobalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Long: `Print the configuration histclean would run with, after applying the
config file and HISTCLEAN_<SECTION>_<FIELD> environment overrides.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := g.loadConfig()
			if err != nil {
				return err
			}
			return config.Encode(cmd.OutOrStdout(), cfg)
		},
	}
}

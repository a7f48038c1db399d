package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewRootCommand creates the histclean root command. Run without a
// subcommand it cleans the history, taking the same flags as clean.
func NewRootCommand(info VersionInfo) *cobra.Command {
	g := &GlobalOptions{}
	opts := &CleanOptions{}

	rootCmd := &cobra.Command{
		Use:   "histclean",
		Short: "Sanitize zsh shell history",
		Long: `histclean writes a copy of your zsh history with junk, trivial commands,
duplicates, secrets and personal paths removed.

` + cleanLong,
		Version:       fmt.Sprintf("%s (commit: %s, built: %s)", info.Version, info.Commit, info.Date),
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runClean(cmd, g, opts)
		},
	}

	AddGlobalFlags(rootCmd, g)
	AddCleanFlags(rootCmd, opts)

	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(NewCleanCommand(g))
	rootCmd.AddCommand(NewConfigCommand(g))
	rootCmd.AddCommand(NewRulesCommand(g))
	rootCmd.AddCommand(NewVersionCommand(info))

	return rootCmd
}

package cli

import (
	"github.com/spf13/cobra"

	"github.com/chazuruo/histclean/internal/cleaner"
	hcerrors "github.com/chazuruo/histclean/internal/errors"
	"github.com/chazuruo/histclean/internal/report"
)

// NewRulesCommand creates the rules command.
func NewRulesCommand(g *GlobalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "List the cleaning rules in evaluation order",
		Long: `List the cleaning rules in the order they are evaluated, with the
settings each one currently uses. The first matching rule decides why a line
is removed; lines matching none are kept.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRules(cmd, g)
		},
	}
}

func runRules(cmd *cobra.Command, g *GlobalOptions) error {
	cfg, err := g.loadConfig()
	if err != nil {
		return err
	}

	opts, err := cleaner.NewOptions(cfg)
	if err != nil {
		return &hcerrors.ConfigError{Path: g.ConfigPath, Err: hcerrors.Join(hcerrors.ErrInvalid, err)}
	}

	report.NewPrinter(cmd.OutOrStdout(), printerOptions(g, cfg)).Rules(cleaner.New(opts))
	return nil
}

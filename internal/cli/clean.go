package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/chazuruo/histclean/internal/cleaner"
	"github.com/chazuruo/histclean/internal/config"
	hcerrors "github.com/chazuruo/histclean/internal/errors"
	"github.com/chazuruo/histclean/internal/history"
	"github.com/chazuruo/histclean/internal/logging"
	"github.com/chazuruo/histclean/internal/report"
)

// CleanOptions contains the options for the clean command.
type CleanOptions struct {
	Input   string
	Output  string
	Format  string
	DryRun  bool
	Promote bool
	Yes     bool

	// confirm asks before the history file is replaced. Nil uses an
	// interactive prompt on a terminal.
	confirm confirmFunc
}

// AddCleanFlags adds the clean flags to cmd. The root command runs a clean
// when invoked without a subcommand, so both share these flags.
func AddCleanFlags(cmd *cobra.Command, opts *CleanOptions) {
	cmd.Flags().StringVarP(&opts.Input, "input", "i", "", "history file to clean (default $ZDOTDIR/.zsh_history or ~/.zsh_history)")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "cleaned output file (default <input>_cleaned)")
	cmd.Flags().StringVar(&opts.Format, "format", "", "summary format: table, json or yaml")
	cmd.Flags().BoolVar(&opts.DryRun, "dry-run", false, "classify and report without writing the output file")
	cmd.Flags().BoolVar(&opts.Promote, "promote", false, "replace the history file with the cleaned one, keeping a .bak backup")
	cmd.Flags().BoolVarP(&opts.Yes, "yes", "y", false, "promote without asking for confirmation")
}

// NewCleanCommand creates the clean command.
func NewCleanCommand(g *GlobalOptions) *cobra.Command {
	opts := &CleanOptions{}

	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Write a sanitized copy of the zsh history",
		Long:  cleanLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runClean(cmd, g, opts)
		},
	}

	AddCleanFlags(cmd, opts)

	return cmd
}

const cleanLong = `Read the zsh extended history file and write a sanitized copy next to it.

Each line is tested against the rule chain in order and the first matching
rule removes it. Kept lines are written unchanged. Run "histclean rules" to
see the chain with the active settings.

The original file is never modified unless --promote is given.`

func runClean(cmd *cobra.Command, g *GlobalOptions, opts *CleanOptions) error {
	stdout, stderr := cmd.OutOrStdout(), cmd.ErrOrStderr()

	cfg, err := g.loadConfig()
	if err != nil {
		return err
	}

	format, err := resolveFormat(opts.Format, cfg)
	if err != nil {
		return err
	}
	if opts.Promote && opts.DryRun {
		return fmt.Errorf("--promote cannot be combined with --dry-run: %w", hcerrors.ErrInvalid)
	}

	logger := logging.Init(stderr, format.Machine(), g.logLevel(cfg))

	src, dst, err := resolvePaths(opts, cfg)
	if err != nil {
		return err
	}

	cleanerOpts, err := cleaner.NewOptions(cfg)
	if err != nil {
		return &hcerrors.ConfigError{Path: g.ConfigPath, Err: hcerrors.Join(hcerrors.ErrInvalid, err)}
	}
	c := cleaner.New(cleanerOpts, cleaner.WithLogger(logger))

	// Machine readable output owns stdout; progress goes to stderr.
	out := stdout
	if format.Machine() {
		out = stderr
	}
	p := report.NewPrinter(out, printerOptions(g, cfg))

	p.Start(src)
	result, err := c.Run(src, dst, p, cleaner.RunOptions{DryRun: opts.DryRun})
	if result != nil {
		p.Summary(result.Summary)
	}
	if err != nil {
		return err
	}

	doc := report.Document{
		Input:   src,
		Output:  dst,
		DryRun:  opts.DryRun,
		Summary: result.Summary,
	}

	switch {
	case opts.DryRun:
		p.DryRun(dst)
	case opts.Promote:
		p.Written(dst)
		backup, err := promote(cmd, opts, src, dst)
		if err != nil {
			return err
		}
		if backup == "" {
			p.Hint(src, dst)
			break
		}
		doc.Promoted = true
		doc.Backup = backup
		p.Promoted(src, backup)
	default:
		p.Written(dst)
		p.Hint(src, dst)
	}

	if format.Machine() {
		return report.Encode(stdout, format, doc)
	}
	return nil
}

// promote replaces src with dst after confirmation. It returns an empty
// backup path when the user declines.
func promote(cmd *cobra.Command, opts *CleanOptions, src, dst string) (string, error) {
	if !opts.Yes {
		confirm := opts.confirm
		if confirm == nil {
			confirm = terminalConfirm(cmd.InOrStdin())
		}
		ok, err := confirm(fmt.Sprintf("Replace %s with the cleaned history?", src))
		if err != nil {
			return "", err
		}
		if !ok {
			return "", nil
		}
	}

	return cleaner.Promote(src, dst)
}

func resolveFormat(flag string, cfg *config.Config) (report.Format, error) {
	format := report.Format(cfg.Report.Format)
	if flag != "" {
		format = report.Format(flag)
	}

	switch format {
	case report.FormatTable, report.FormatJSON, report.FormatYAML:
		return format, nil
	default:
		return "", fmt.Errorf("invalid format %q (must be table, json or yaml): %w", format, hcerrors.ErrInvalid)
	}
}

// resolvePaths picks the source and destination from flags, then config,
// then the zsh defaults.
func resolvePaths(opts *CleanOptions, cfg *config.Config) (src, dst string, err error) {
	src = firstNonEmpty(opts.Input, cfg.Paths.HistoryFile)
	if src == "" {
		if src, err = history.DetectPath(); err != nil {
			return "", "", err
		}
	}
	src = config.ExpandHome(src)

	dst = firstNonEmpty(opts.Output, cfg.Paths.OutputFile)
	if dst == "" {
		dst = history.OutputPath(src)
	}
	dst = config.ExpandHome(dst)

	if src == dst {
		return "", "", fmt.Errorf("output path must differ from the history file %s: %w", src, hcerrors.ErrInvalid)
	}
	return src, dst, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// writeln is used by commands that print plain lines to the command output.
func writeln(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, format+"\n", args...)
}

// Package cli provides Cobra command definitions for histclean.
package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/chazuruo/histclean/internal/config"
	"github.com/chazuruo/histclean/internal/logging"
	"github.com/chazuruo/histclean/internal/report"
)

// GlobalOptions holds the persistent flags shared by every command.
type GlobalOptions struct {
	// ConfigPath overrides config file detection.
	ConfigPath string

	// LogLevel overrides [log].level when set.
	LogLevel string

	// NoColor disables styled output regardless of [report].color.
	NoColor bool
}

// AddGlobalFlags adds global flags to a command.
func AddGlobalFlags(cmd *cobra.Command, g *GlobalOptions) {
	cmd.PersistentFlags().StringVar(&g.ConfigPath, "config", "",
		"config file path (default $HISTCLEAN_CONFIG or ~/.config/histclean/config.toml)")
	cmd.PersistentFlags().StringVar(&g.LogLevel, "log-level", "",
		"diagnostic log level: debug, info, warn or error")
	cmd.PersistentFlags().BoolVar(&g.NoColor, "no-color", false,
		"disable colored output")
}

func (g *GlobalOptions) loadConfig() (*config.Config, error) {
	return config.LoadWithDefaults(g.ConfigPath)
}

func (g *GlobalOptions) logLevel(cfg *config.Config) slog.Level {
	level := cfg.Log.Level
	if g.LogLevel != "" {
		level = g.LogLevel
	}
	return logging.ParseLevel(level)
}

func (g *GlobalOptions) colorMode(cfg *config.Config) report.ColorMode {
	if g.NoColor {
		return report.ColorNever
	}
	return report.ColorMode(cfg.Report.Color)
}

func printerOptions(g *GlobalOptions, cfg *config.Config) report.Options {
	return report.Options{
		PreviewLength:    cfg.Report.PreviewLength,
		MaxCommandLength: cfg.Limits.MaxCommandLength,
		Color:            g.colorMode(cfg),
	}
}

// Package config provides configuration management for histclean.
//
// The configuration is stored in TOML format and supports validation
// and default values for all fields.
package config

import (
	"fmt"
	"regexp"
	"strings"
)

// Config is the top-level configuration struct for histclean.
type Config struct {
	Paths   PathsConfig   `toml:"paths"`
	Filters FiltersConfig `toml:"filters"`
	Secrets SecretsConfig `toml:"secrets"`
	PII     PIIConfig     `toml:"pii"`
	Limits  LimitsConfig  `toml:"limits"`
	Report  ReportConfig  `toml:"report"`
	Log     LogConfig     `toml:"log"`
}

// PathsConfig contains input and output file locations.
type PathsConfig struct {
	// HistoryFile is the zsh history file to clean.
	// Empty means $ZDOTDIR/.zsh_history, or ~/.zsh_history.
	HistoryFile string `toml:"history_file"`

	// OutputFile is where the cleaned copy is written.
	// Empty means the history file path with a "_cleaned" suffix.
	OutputFile string `toml:"output_file"`
}

// FiltersConfig lists commands that are dropped as noise.
type FiltersConfig struct {
	// Trivial holds navigation, listing and shell builtin commands.
	// A command is trivial only if it equals an entry exactly after trimming.
	Trivial []string `toml:"trivial"`

	// Aliases holds personal aliases treated the same as Trivial.
	Aliases []string `toml:"aliases"`

	// DropCD removes "cd <dir>" commands.
	DropCD bool `toml:"drop_cd"`
}

// SecretsConfig controls detection of credentials in commands.
type SecretsConfig struct {
	// Prefixes are regular expressions for issuer-specific token formats.
	Prefixes []string `toml:"prefixes"`

	// Keywords are secret-bearing words matched anywhere in the command.
	Keywords []string `toml:"keywords"`

	// MinEntropyRun is the length of an alphanumeric/base64 run that is
	// treated as an embedded secret. Zero disables the check.
	MinEntropyRun int `toml:"min_entropy_run"`

	// ExtraPatterns are additional regular expressions to treat as secrets.
	ExtraPatterns []string `toml:"extra_patterns"`
}

// PIIConfig controls detection of personal filesystem paths.
type PIIConfig struct {
	// Patterns are regular expressions for user-home style paths.
	Patterns []string `toml:"patterns"`
}

// LimitsConfig contains size limits.
type LimitsConfig struct {
	// MaxCommandLength is the longest command kept, in characters.
	MaxCommandLength int `toml:"max_command_length"`
}

// ReportConfig contains console output settings.
type ReportConfig struct {
	// PreviewLength is how many characters of a removed command are shown.
	PreviewLength int `toml:"preview_length"`

	// Format is the summary format.
	// Valid values: "table", "json", "yaml".
	Format string `toml:"format"`

	// Color controls styled output.
	// Valid values: "auto", "always", "never".
	Color string `toml:"color"`
}

// LogConfig contains diagnostic logging settings.
type LogConfig struct {
	// Level is the slog level: "debug", "info", "warn", "error".
	Level string `toml:"level"`
}

// Default filter values.
var (
	DefaultTrivial = []string{
		"ls", "ll", "la", "l",
		"cd", "cd ..", "..",
		"pwd", "clear", "exit", "history",
		"bg", "fg", "true",
	}

	DefaultAliases = []string{"pni", "npk", "groh", "gst", "gvw", "pnab"}

	DefaultPrefixes = []string{
		`(ghp|ghs|ghr|glpat-)[a-zA-Z0-9_-]{20,}`,                             // GitHub, GitLab
		`(sk_live|pk_live|rk_live|sk_test|pk_test|rk_test)_[a-zA-Z0-9]{20,}`, // Stripe
		`(xoxp|xoxb|xapp-)[a-zA-Z0-9-]{20,}`,                                 // Slack
	}

	DefaultKeywords = []string{"key", "token", "secret", "password", "passwd"}

	DefaultPIIPatterns = []string{`/home/`, `/Users/`}
)

const (
	DefaultMinEntropyRun    = 40
	DefaultMaxCommandLength = 250
	DefaultPreviewLength    = 70
)

// DefaultConfig returns a Config with all default values set.
func DefaultConfig() *Config {
	return &Config{
		Paths: PathsConfig{},
		Filters: FiltersConfig{
			Trivial: clone(DefaultTrivial),
			Aliases: clone(DefaultAliases),
			DropCD:  true,
		},
		Secrets: SecretsConfig{
			Prefixes:      clone(DefaultPrefixes),
			Keywords:      clone(DefaultKeywords),
			MinEntropyRun: DefaultMinEntropyRun,
		},
		PII: PIIConfig{
			Patterns: clone(DefaultPIIPatterns),
		},
		Limits: LimitsConfig{
			MaxCommandLength: DefaultMaxCommandLength,
		},
		Report: ReportConfig{
			PreviewLength: DefaultPreviewLength,
			Format:        "table",
			Color:         "auto",
		},
		Log: LogConfig{
			Level: "warn",
		},
	}
}

// Validate checks the configuration for valid values.
// Returns a nil error if the config is valid, or an error describing the problem.
func (c *Config) Validate() error {
	if c.Paths.HistoryFile != "" && c.Paths.HistoryFile == c.Paths.OutputFile {
		return fmt.Errorf("paths.output_file must differ from paths.history_file")
	}

	for _, cmd := range c.Filters.Trivial {
		if strings.TrimSpace(cmd) == "" {
			return fmt.Errorf("filters.trivial cannot contain empty commands")
		}
	}
	for _, cmd := range c.Filters.Aliases {
		if strings.TrimSpace(cmd) == "" {
			return fmt.Errorf("filters.aliases cannot contain empty commands")
		}
	}

	if err := validatePatterns("secrets.prefixes", c.Secrets.Prefixes); err != nil {
		return err
	}
	if err := validatePatterns("secrets.extra_patterns", c.Secrets.ExtraPatterns); err != nil {
		return err
	}
	if err := validatePatterns("pii.patterns", c.PII.Patterns); err != nil {
		return err
	}
	for _, kw := range c.Secrets.Keywords {
		if kw == "" {
			return fmt.Errorf("secrets.keywords cannot contain empty keywords")
		}
	}
	// RE2 caps repetition counts at 1000.
	if c.Secrets.MinEntropyRun < 0 || c.Secrets.MinEntropyRun > 1000 {
		return fmt.Errorf("secrets.min_entropy_run must be between 0 and 1000; got %d", c.Secrets.MinEntropyRun)
	}

	if c.Limits.MaxCommandLength < 1 {
		return fmt.Errorf("limits.max_command_length must be >= 1; got %d", c.Limits.MaxCommandLength)
	}

	if c.Report.PreviewLength < 1 {
		return fmt.Errorf("report.preview_length must be >= 1; got %d", c.Report.PreviewLength)
	}
	validFormats := map[string]bool{
		"table": true,
		"json":  true,
		"yaml":  true,
	}
	if !validFormats[c.Report.Format] {
		return fmt.Errorf("report.format must be one of: table, json, yaml; got %q", c.Report.Format)
	}
	validColors := map[string]bool{
		"auto":   true,
		"always": true,
		"never":  true,
	}
	if !validColors[c.Report.Color] {
		return fmt.Errorf("report.color must be one of: auto, always, never; got %q", c.Report.Color)
	}

	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[strings.ToLower(c.Log.Level)] {
		return fmt.Errorf("log.level must be one of: debug, info, warn, error; got %q", c.Log.Level)
	}

	return nil
}

func validatePatterns(field string, patterns []string) error {
	for _, p := range patterns {
		if p == "" {
			return fmt.Errorf("%s cannot contain empty patterns", field)
		}
		if _, err := regexp.Compile(p); err != nil {
			return fmt.Errorf("%s: invalid pattern %q: %w", field, p, err)
		}
	}
	return nil
}

func clone(s []string) []string {
	return append([]string(nil), s...)
}

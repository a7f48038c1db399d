package cleaner

import (
	"fmt"
	"regexp"

	"github.com/chazuruo/histclean/internal/config"
)

// entropyCharset is the alphabet of a high-entropy run.
const entropyCharset = `[a-zA-Z0-9/+=]`

// Options is the compiled rule configuration for a Cleaner.
type Options struct {
	// Trivial is the set of commands removed as noise, compared after trimming.
	Trivial map[string]struct{}

	// DropCD enables removal of "cd <dir>" commands.
	DropCD bool

	// SecretPatterns match credentials, secret keywords and high-entropy runs.
	SecretPatterns []*regexp.Regexp

	// PIIPatterns match personal filesystem paths.
	PIIPatterns []*regexp.Regexp

	// MaxCommandLength is the longest trimmed command kept, in runes.
	MaxCommandLength int
}

// NewOptions compiles the rule configuration from cfg.
func NewOptions(cfg *config.Config) (Options, error) {
	opts := Options{
		Trivial:          make(map[string]struct{}, len(cfg.Filters.Trivial)+len(cfg.Filters.Aliases)),
		DropCD:           cfg.Filters.DropCD,
		MaxCommandLength: cfg.Limits.MaxCommandLength,
	}

	for _, cmd := range cfg.Filters.Trivial {
		opts.Trivial[cmd] = struct{}{}
	}
	for _, cmd := range cfg.Filters.Aliases {
		opts.Trivial[cmd] = struct{}{}
	}

	secrets, err := SecretPatterns(cfg.Secrets)
	if err != nil {
		return Options{}, err
	}
	opts.SecretPatterns = secrets

	for _, p := range cfg.PII.Patterns {
		re, err := regexp.Compile(p)
		if err != nil {
			return Options{}, fmt.Errorf("invalid pii pattern %q: %w", p, err)
		}
		opts.PIIPatterns = append(opts.PIIPatterns, re)
	}

	return opts, nil
}

// DefaultOptions returns the options compiled from config.DefaultConfig.
func DefaultOptions() Options {
	opts, err := NewOptions(config.DefaultConfig())
	if err != nil {
		panic(fmt.Sprintf("default cleaner options: %v", err))
	}
	return opts
}

// SecretPatterns compiles the case-insensitive secret detectors: token
// prefixes, extra patterns, keywords, and the high-entropy run.
func SecretPatterns(cfg config.SecretsConfig) ([]*regexp.Regexp, error) {
	var patterns []*regexp.Regexp

	add := func(expr string) error {
		re, err := regexp.Compile("(?i)" + expr)
		if err != nil {
			return fmt.Errorf("invalid secret pattern %q: %w", expr, err)
		}
		patterns = append(patterns, re)
		return nil
	}

	for _, p := range cfg.Prefixes {
		if err := add(p); err != nil {
			return nil, err
		}
	}
	for _, p := range cfg.ExtraPatterns {
		if err := add(p); err != nil {
			return nil, err
		}
	}
	for _, kw := range cfg.Keywords {
		if err := add(regexp.QuoteMeta(kw)); err != nil {
			return nil, err
		}
	}
	if cfg.MinEntropyRun > 0 {
		if err := add(fmt.Sprintf("%s{%d,}", entropyCharset, cfg.MinEntropyRun)); err != nil {
			return nil, err
		}
	}

	return patterns, nil
}

// Package config provides configuration management for histclean.
//
// This file contains config loading functionality including:
// - XDG config path detection
// - TOML file parsing
// - Environment variable overrides
// - Validation
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	hcerrors "github.com/chazuruo/histclean/internal/errors"
)

// EnvConfigPath names the environment variable that points at a config file.
const EnvConfigPath = "HISTCLEAN_CONFIG"

// DefaultConfigPath returns ~/.config/histclean/config.toml, honoring
// $XDG_CONFIG_HOME when it is set.
func DefaultConfigPath() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "histclean", "config.toml"), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", "histclean", "config.toml"), nil
}

// DetectConfigPath searches for a config file.
// Returns the first config file found, or empty string if none exists.
//
// Search order:
// 1. $HISTCLEAN_CONFIG
// 2. $XDG_CONFIG_HOME/histclean/config.toml or ~/.config/histclean/config.toml
func DetectConfigPath() string {
	if path := os.Getenv(EnvConfigPath); path != "" {
		return path
	}

	configPath, err := DefaultConfigPath()
	if err != nil {
		return ""
	}
	if _, err := os.Stat(configPath); err == nil {
		return configPath
	}

	return ""
}

// Load loads a config from the specified path.
// If the file doesn't exist, returns an error.
// After loading, applies environment variable overrides and validates.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, &hcerrors.ConfigError{Path: path, Err: hcerrors.ErrNotFound}
	}
	if err != nil {
		return nil, &hcerrors.ConfigError{Path: path, Err: hcerrors.Join(hcerrors.ErrIO, err)}
	}

	// Start with defaults
	cfg := DefaultConfig()

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, &hcerrors.ConfigError{Path: path, Err: hcerrors.Join(hcerrors.ErrInvalid, err)}
	}

	applyEnvOverrides(cfg)
	expandPaths(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, &hcerrors.ConfigError{Path: path, Err: hcerrors.Join(hcerrors.ErrInvalid, err)}
	}

	return cfg, nil
}

// LoadWithDefaults loads the config at path, or the detected config file when
// path is empty. If no config file is found, returns a config with all
// default values plus environment overrides.
func LoadWithDefaults(path string) (*Config, error) {
	if path != "" {
		return Load(path)
	}

	configPath := DetectConfigPath()
	if configPath == "" {
		cfg := DefaultConfig()
		applyEnvOverrides(cfg)
		expandPaths(cfg)
		if err := cfg.Validate(); err != nil {
			return nil, &hcerrors.ConfigError{Err: hcerrors.Join(hcerrors.ErrInvalid, err)}
		}
		return cfg, nil
	}

	return Load(configPath)
}

// applyEnvOverrides applies environment variable overrides to the config.
// Environment variables follow the pattern: HISTCLEAN_<SECTION>_<FIELD>
//
// Examples:
// - HISTCLEAN_PATHS_HISTORY_FILE overrides [paths].history_file
// - HISTCLEAN_LIMITS_MAX_COMMAND_LENGTH overrides [limits].max_command_length
// - HISTCLEAN_FILTERS_ALIASES overrides [filters].aliases
//
// Boolean fields: use "true"/"false" strings
// Array fields: comma-separated values
func applyEnvOverrides(c *Config) {
	applyString := func(key string, target *string) {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			*target = val
		}
	}

	applyBool := func(key string, target *bool) {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			switch strings.ToLower(val) {
			case "true", "1", "yes", "on":
				*target = true
			case "false", "0", "no", "off":
				*target = false
			}
		}
	}

	applyInt := func(key string, target *int) {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			var i int
			if _, err := fmt.Sscanf(val, "%d", &i); err == nil {
				*target = i
			}
		}
	}

	applyList := func(key string, target *[]string) {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			var items []string
			for _, item := range strings.Split(val, ",") {
				if item = strings.TrimSpace(item); item != "" {
					items = append(items, item)
				}
			}
			*target = items
		}
	}

	// Paths section
	applyString("HISTCLEAN_PATHS_HISTORY_FILE", &c.Paths.HistoryFile)
	applyString("HISTCLEAN_PATHS_OUTPUT_FILE", &c.Paths.OutputFile)

	// Filters section
	applyList("HISTCLEAN_FILTERS_TRIVIAL", &c.Filters.Trivial)
	applyList("HISTCLEAN_FILTERS_ALIASES", &c.Filters.Aliases)
	applyBool("HISTCLEAN_FILTERS_DROP_CD", &c.Filters.DropCD)

	// Secrets section
	applyList("HISTCLEAN_SECRETS_PREFIXES", &c.Secrets.Prefixes)
	applyList("HISTCLEAN_SECRETS_KEYWORDS", &c.Secrets.Keywords)
	applyInt("HISTCLEAN_SECRETS_MIN_ENTROPY_RUN", &c.Secrets.MinEntropyRun)
	applyList("HISTCLEAN_SECRETS_EXTRA_PATTERNS", &c.Secrets.ExtraPatterns)

	// PII section
	applyList("HISTCLEAN_PII_PATTERNS", &c.PII.Patterns)

	// Limits section
	applyInt("HISTCLEAN_LIMITS_MAX_COMMAND_LENGTH", &c.Limits.MaxCommandLength)

	// Report section
	applyInt("HISTCLEAN_REPORT_PREVIEW_LENGTH", &c.Report.PreviewLength)
	applyString("HISTCLEAN_REPORT_FORMAT", &c.Report.Format)
	applyString("HISTCLEAN_REPORT_COLOR", &c.Report.Color)

	// Log section
	applyString("HISTCLEAN_LOG_LEVEL", &c.Log.Level)
}

// expandPaths expands ~ to the home directory in file paths.
func expandPaths(c *Config) {
	c.Paths.HistoryFile = ExpandHome(c.Paths.HistoryFile)
	c.Paths.OutputFile = ExpandHome(c.Paths.OutputFile)
}

// ExpandHome replaces a leading "~" or "~/" with the user's home directory.
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(homeDir, strings.TrimPrefix(path, "~"))
}

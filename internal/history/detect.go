package history

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	// HistoryFileName is the zsh history file name inside the zsh config dir.
	HistoryFileName = ".zsh_history"

	// CleanedSuffix is appended to the history path to name the cleaned copy.
	CleanedSuffix = "_cleaned"
)

// ConfigDir returns the directory zsh keeps its dotfiles in: $ZDOTDIR when
// set, otherwise the user's home directory.
func ConfigDir() (string, error) {
	if dir := os.Getenv("ZDOTDIR"); dir != "" {
		return dir, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return home, nil
}

// DetectPath returns the default path to the zsh history file.
// The file is not required to exist.
func DetectPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, HistoryFileName), nil
}

// OutputPath returns the default cleaned output path for a history file.
func OutputPath(historyPath string) string {
	return historyPath + CleanedSuffix
}

// Package testutil provides helper functions for testing.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// Line formats a zsh extended history line for cmd, with a trailing newline.
func Line(ts int64, cmd string) string {
	return fmt.Sprintf(": %d:0;%s\n", ts, cmd)
}

// Lines formats cmds as consecutive history lines starting at timestamp 1700000000.
func Lines(cmds ...string) []string {
	lines := make([]string, len(cmds))
	for i, cmd := range cmds {
		lines[i] = Line(int64(1700000000+i), cmd)
	}
	return lines
}

// WriteHistory writes lines to a .zsh_history file in a temporary directory
// and returns its path. The directory is removed when the test completes.
func WriteHistory(t *testing.T, lines ...string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), ".zsh_history")
	if err := os.WriteFile(path, []byte(strings.Join(lines, "")), 0600); err != nil {
		t.Fatalf("failed to write history file: %v", err)
	}

	return path
}

// ReadFile returns the contents of path, failing the test on error.
func ReadFile(t *testing.T, path string) string {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read %s: %v", path, err)
	}
	return string(data)
}

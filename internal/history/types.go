// Package history provides parsing for zsh extended history files.
package history

import (
	"strings"
	"time"
)

// Entry represents a single well-formed line from a zsh extended history file.
type Entry struct {
	// Raw is the original line, including its trailing newline if present.
	Raw string

	// Prefix is the ": <start>:<elapsed>;" metadata, kept verbatim.
	Prefix string

	// Timestamp is the command start time decoded from the prefix.
	Timestamp time.Time

	// Elapsed is the recorded command duration in seconds.
	Elapsed int64

	// Command is the command text that follows the prefix, untrimmed.
	Command string
}

// Trimmed returns the command with surrounding whitespace removed.
func (e Entry) Trimmed() string {
	return strings.TrimSpace(e.Command)
}

package history

import (
	"bufio"
	"io"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Zsh extended history format: ": <start>:<elapsed>;<command>"
//
// Example:
//
//	: 1616420000:0;ls -la
//	: 1616420100:3;git status
//
// Multi-line commands continue on lines without the prefix:
//
//	: 1616420200:0;echo "multi\
//	line"
var entryRegex = regexp.MustCompile(`^(: (\d+):(\d+);)(.*)$`)

// ParseLine parses a single raw history line. It reports false when the line
// does not match the extended history format, which includes continuation
// lines of multi-line entries and partially written records.
//
// Surrounding whitespace, including the newline, is stripped before matching,
// so a leading space after the ';' stays part of the command.
func ParseLine(raw string) (Entry, bool) {
	matches := entryRegex.FindStringSubmatch(strings.TrimSpace(raw))
	if matches == nil {
		return Entry{}, false
	}

	entry := Entry{
		Raw:     raw,
		Prefix:  matches[1],
		Command: matches[4],
	}
	if ts, err := strconv.ParseInt(matches[2], 10, 64); err == nil {
		entry.Timestamp = time.Unix(ts, 0)
	}
	if elapsed, err := strconv.ParseInt(matches[3], 10, 64); err == nil {
		entry.Elapsed = elapsed
	}

	return entry, true
}

// ReadLines reads r to the end and splits it into lines, keeping each line's
// terminating "\n". A final line without a newline is returned as is.
func ReadLines(r io.Reader) ([]string, error) {
	var lines []string
	reader := bufio.NewReader(r)

	for {
		line, err := reader.ReadString('\n')
		if line != "" {
			lines = append(lines, line)
		}
		if err == io.EOF {
			return lines, nil
		}
		if err != nil {
			return nil, err
		}
	}
}

package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/chazuruo/histclean/internal/cleaner"
	"github.com/chazuruo/histclean/internal/history"
	"github.com/chazuruo/histclean/internal/testutil"
)

func newTestPrinter(buf *bytes.Buffer) *Printer {
	return NewPrinter(buf, Options{
		PreviewLength:    10,
		MaxCommandLength: 250,
		Color:            ColorNever,
	})
}

func decision(t *testing.T, cmd string, reason cleaner.Reason) cleaner.Decision {
	t.Helper()
	raw := testutil.Line(1, cmd)
	e, ok := history.ParseLine(raw)
	require.True(t, ok)
	return cleaner.Decision{Line: 1, Raw: raw, Entry: e, Reason: reason}
}

func sampleSummary() cleaner.Summary {
	s := cleaner.NewSummary()
	s.Total = 12
	s.Kept = 3
	s.Removed = 9
	s.Reasons[cleaner.Junk] = 2
	s.Reasons[cleaner.Multiline] = 1
	s.Reasons[cleaner.Duplicate] = 4
	s.Reasons[cleaner.TooLong] = 2
	return s
}

func TestPreview(t *testing.T) {
	tests := []struct {
		name string
		cmd  string
		n    int
		want string
	}{
		{"short", "ls", 10, "ls..."},
		{"exact", "0123456789", 10, "0123456789..."},
		{"truncated", "0123456789abc", 10, "0123456789..."},
		{"runes", "ééééé", 3, "ééé..."},
		{"no limit", "abc", 0, "abc..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Preview(tt.cmd, tt.n))
		})
	}
}

func TestObserve_Previews(t *testing.T) {
	var buf bytes.Buffer
	p := newTestPrinter(&buf)

	p.Observe(decision(t, "export PASSWORD=hunter2", cleaner.Secret))
	p.Observe(decision(t, "vim /home/alice/x", cleaner.PII))
	p.Observe(decision(t, "echo 0123456789abcdef", cleaner.TooLong))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "    - Removing potential secret: export PAS...", lines[0])
	assert.Equal(t, "    - Removing potential PII (user path): vim /home/...", lines[1])
	assert.Equal(t, "    - Removing long command (21 chars): echo 01234...", lines[2])
}

func TestObserve_SilentForOtherReasons(t *testing.T) {
	var buf bytes.Buffer
	p := newTestPrinter(&buf)

	for _, r := range []cleaner.Reason{cleaner.Kept, cleaner.Junk, cleaner.Trivial, cleaner.CDCommand,
		cleaner.Hidden, cleaner.Multiline, cleaner.Duplicate} {
		p.Observe(decision(t, "make", r))
	}

	assert.Empty(t, buf.String())
}

func TestBreakdown(t *testing.T) {
	rows := Breakdown(sampleSummary(), 250)

	require.Len(t, rows, 8)
	assert.Equal(t, Row{"Duplicates", 4}, rows[0])
	assert.Equal(t, Row{"Multi-line/Junk", 3}, rows[1])
	assert.Equal(t, Row{"Too Long (>250 chars)", 2}, rows[7])
}

func TestSummary(t *testing.T) {
	var buf bytes.Buffer
	p := newTestPrinter(&buf)

	p.Summary(sampleSummary())

	out := buf.String()
	assert.Contains(t, out, "✅ Cleanup complete.")
	assert.Contains(t, out, "    - Read:              12 lines")
	assert.Contains(t, out, "    - Kept:               3 lines")
	assert.Contains(t, out, "    - Removed:            9 lines")
	assert.Contains(t, out, "Multi-line/Junk")
	assert.Contains(t, out, "Too Long (>250 chars)")
	assert.NotContains(t, out, "\x1b[", "ColorNever must not emit escape codes")
}

func TestWritten(t *testing.T) {
	var buf bytes.Buffer
	p := newTestPrinter(&buf)

	p.Written("/h/.zsh_history_cleaned")
	p.Hint("/h/.zsh_history", "/h/.zsh_history_cleaned")

	out := buf.String()
	assert.Contains(t, out, "Successfully wrote cleaned history to: /h/.zsh_history_cleaned")
	assert.Contains(t, out, "less /h/.zsh_history_cleaned")
	assert.Contains(t, out, "mv /h/.zsh_history_cleaned /h/.zsh_history")
}

func TestRules(t *testing.T) {
	var buf bytes.Buffer
	p := newTestPrinter(&buf)

	p.Rules(cleaner.New(cleaner.DefaultOptions()))

	out := buf.String()
	for _, r := range cleaner.Reasons {
		assert.Contains(t, out, string(r))
	}
	assert.Contains(t, out, `"cd .."`)
	assert.Contains(t, out, "> 250 chars")
	assert.Contains(t, out, "/Users/")
}

func TestEncode_JSON(t *testing.T) {
	var buf bytes.Buffer
	doc := Document{Input: "/h/in", Output: "/h/out", Summary: sampleSummary()}

	require.NoError(t, Encode(&buf, FormatJSON, doc))

	var got struct {
		Input   string `json:"input"`
		Summary struct {
			Total   int            `json:"total"`
			Reasons map[string]int `json:"reasons"`
		} `json:"summary"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "/h/in", got.Input)
	assert.Equal(t, 12, got.Summary.Total)
	assert.Equal(t, 4, got.Summary.Reasons["duplicate"])
	assert.Len(t, got.Summary.Reasons, len(cleaner.Reasons))
}

func TestEncode_YAML(t *testing.T) {
	var buf bytes.Buffer
	doc := Document{Input: "/h/in", Output: "/h/out", DryRun: true, Summary: sampleSummary()}

	require.NoError(t, Encode(&buf, FormatYAML, doc))

	var got map[string]interface{}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, true, got["dry_run"])
	summary, ok := got["summary"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, 9, summary["removed"])
}

func TestEncode_Unsupported(t *testing.T) {
	assert.Error(t, Encode(&bytes.Buffer{}, FormatTable, Document{}))
}

func TestFormat_Machine(t *testing.T) {
	assert.False(t, FormatTable.Machine())
	assert.True(t, FormatJSON.Machine())
	assert.True(t, FormatYAML.Machine())
}

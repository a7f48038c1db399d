package report

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/chazuruo/histclean/internal/cleaner"
)

// Format is the summary output format.
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

// Machine reports whether f is meant for programs rather than people.
func (f Format) Machine() bool {
	return f == FormatJSON || f == FormatYAML
}

// Document is the machine readable result of a run.
type Document struct {
	Input    string          `json:"input" yaml:"input"`
	Output   string          `json:"output" yaml:"output"`
	DryRun   bool            `json:"dry_run" yaml:"dry_run"`
	Promoted bool            `json:"promoted" yaml:"promoted"`
	Backup   string          `json:"backup,omitempty" yaml:"backup,omitempty"`
	Summary  cleaner.Summary `json:"summary" yaml:"summary"`
}

// Encode writes doc to w in format f.
func Encode(w io.Writer, f Format, doc Document) error {
	switch f {
	case FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(doc); err != nil {
			return fmt.Errorf("failed to encode JSON: %w", err)
		}
		return nil
	case FormatYAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(doc); err != nil {
			return fmt.Errorf("failed to encode YAML: %w", err)
		}
		return encoder.Close()
	default:
		return fmt.Errorf("unsupported format: %s", f)
	}
}

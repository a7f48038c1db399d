// Package report renders the console output of a cleaning run.
package report

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// ColorMode determines when to use colored output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Auto-detect based on TTY
	ColorAlways ColorMode = "always" // Always use colors
	ColorNever  ColorMode = "never"  // Never use colors
)

// styles holds the lipgloss styles used by a Printer.
type styles struct {
	header  lipgloss.Style
	success lipgloss.Style
	warning lipgloss.Style
	err     lipgloss.Style
	muted   lipgloss.Style
	count   lipgloss.Style
}

// newRenderer returns a lipgloss renderer for w honoring mode.
func newRenderer(w io.Writer, mode ColorMode) *lipgloss.Renderer {
	r := lipgloss.NewRenderer(w)
	switch mode {
	case ColorAlways:
		r.SetColorProfile(termenv.ANSI256)
	case ColorNever:
		r.SetColorProfile(termenv.Ascii)
	}
	return r
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		header: r.NewStyle().
			Foreground(lipgloss.Color("86")).
			Bold(true),
		success: r.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true),
		warning: r.NewStyle().
			Foreground(lipgloss.Color("226")),
		err: r.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true),
		muted: r.NewStyle().
			Foreground(lipgloss.Color("241")),
		count: r.NewStyle().
			Foreground(lipgloss.Color("229")),
	}
}

// formatter adapts a style to the rodaine/table formatter signature.
func formatter(s lipgloss.Style) func(string, ...interface{}) string {
	return func(format string, vals ...interface{}) string {
		return s.Render(fmt.Sprintf(format, vals...))
	}
}

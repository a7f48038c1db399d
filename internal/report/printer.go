package report

import (
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/rodaine/table"

	"github.com/chazuruo/histclean/internal/cleaner"
)

// Options configures a Printer.
type Options struct {
	// PreviewLength is the number of characters of a removed command shown.
	PreviewLength int

	// MaxCommandLength is shown in the too-long summary label.
	MaxCommandLength int

	// Color selects styled output.
	Color ColorMode
}

// Printer writes progress lines, removal previews and the run summary.
// It implements cleaner.Observer.
type Printer struct {
	w      io.Writer
	opts   Options
	styles styles
}

// NewPrinter creates a Printer writing to w.
func NewPrinter(w io.Writer, opts Options) *Printer {
	if opts.Color == "" {
		opts.Color = ColorAuto
	}
	return &Printer{
		w:      w,
		opts:   opts,
		styles: newStyles(newRenderer(w, opts.Color)),
	}
}

// Start prints the progress line shown before a pass begins.
func (p *Printer) Start(src string) {
	fmt.Fprintln(p.w, p.styles.header.Render(fmt.Sprintf("🧹 Starting cleanup of %s...", src)))
}

// Observe implements cleaner.Observer. Removals that may expose sensitive or
// oversized content get a one-line truncated preview.
func (p *Printer) Observe(d cleaner.Decision) {
	if !d.Reason.Previewed() {
		return
	}

	cmd := d.Entry.Command
	preview := Preview(cmd, p.opts.PreviewLength)

	var msg string
	switch d.Reason {
	case cleaner.Secret:
		msg = fmt.Sprintf("    - Removing potential secret: %s", preview)
	case cleaner.PII:
		msg = fmt.Sprintf("    - Removing potential PII (user path): %s", preview)
	case cleaner.TooLong:
		msg = fmt.Sprintf("    - Removing long command (%d chars): %s", utf8.RuneCountInString(d.Entry.Trimmed()), preview)
	}
	fmt.Fprintln(p.w, p.styles.warning.Render(msg))
}

// Summary prints the read/kept/removed counts and the per-reason breakdown.
func (p *Printer) Summary(s cleaner.Summary) {
	fmt.Fprintln(p.w)
	fmt.Fprintln(p.w, p.styles.success.Render("✅ Cleanup complete."))
	fmt.Fprintf(p.w, "    - Read:        %s lines\n", p.styles.count.Render(fmt.Sprintf("%8d", s.Total)))
	fmt.Fprintf(p.w, "    - Kept:        %s lines\n", p.styles.count.Render(fmt.Sprintf("%8d", s.Kept)))
	fmt.Fprintf(p.w, "    - Removed:     %s lines\n", p.styles.count.Render(fmt.Sprintf("%8d", s.Removed)))
	fmt.Fprintln(p.w)

	tbl := table.New("Reason", "Lines").
		WithWriter(p.w).
		WithPadding(4).
		WithHeaderFormatter(formatter(p.styles.header)).
		WithFirstColumnFormatter(formatter(p.styles.muted))

	for _, row := range Breakdown(s, p.opts.MaxCommandLength) {
		tbl.AddRow(row.Label, row.Count)
	}
	tbl.Print()
}

// Written prints where the cleaned history went.
func (p *Printer) Written(dst string) {
	fmt.Fprintln(p.w)
	fmt.Fprintln(p.w, p.styles.success.Render(fmt.Sprintf("💾 Successfully wrote cleaned history to: %s", dst)))
}

// Hint prints how to review the cleaned file and adopt it manually.
func (p *Printer) Hint(src, dst string) {
	fmt.Fprintln(p.w)
	fmt.Fprintln(p.w, "👉 To use it, first inspect the file, then run:")
	fmt.Fprintln(p.w, p.styles.muted.Render(fmt.Sprintf("    less %s", dst)))
	fmt.Fprintln(p.w, p.styles.muted.Render(fmt.Sprintf("    mv %s %s", dst, src)))
}

// DryRun notes that no file was written.
func (p *Printer) DryRun(dst string) {
	fmt.Fprintln(p.w)
	fmt.Fprintln(p.w, p.styles.muted.Render(fmt.Sprintf("Dry run: %s was not written.", dst)))
}

// Promoted reports that the cleaned file replaced the history.
func (p *Printer) Promoted(src, backup string) {
	fmt.Fprintln(p.w)
	fmt.Fprintln(p.w, p.styles.success.Render(fmt.Sprintf("🔁 Replaced %s with the cleaned history.", src)))
	fmt.Fprintln(p.w, p.styles.muted.Render(fmt.Sprintf("    previous history saved as %s", backup)))
}

// Error prints err in the error style.
func (p *Printer) Error(err error) {
	fmt.Fprintln(p.w, p.styles.err.Render(fmt.Sprintf("❌ Error: %v", err)))
}

// Row is one line of the summary breakdown.
type Row struct {
	Label string
	Count int
}

// Breakdown returns the per-reason summary rows. Junk and multiline removals
// share a row, since both come from multi-line entries.
func Breakdown(s cleaner.Summary, maxCommandLength int) []Row {
	return []Row{
		{cleaner.Duplicate.Label(), s.Count(cleaner.Duplicate)},
		{"Multi-line/Junk", s.Count(cleaner.Junk) + s.Count(cleaner.Multiline)},
		{cleaner.Trivial.Label(), s.Count(cleaner.Trivial)},
		{cleaner.CDCommand.Label(), s.Count(cleaner.CDCommand)},
		{cleaner.Secret.Label(), s.Count(cleaner.Secret)},
		{cleaner.PII.Label(), s.Count(cleaner.PII)},
		{cleaner.Hidden.Label(), s.Count(cleaner.Hidden)},
		{fmt.Sprintf("%s (>%d chars)", cleaner.TooLong.Label(), maxCommandLength), s.Count(cleaner.TooLong)},
	}
}

// Preview truncates cmd to n runes and marks it as a preview.
func Preview(cmd string, n int) string {
	if n > 0 && utf8.RuneCountInString(cmd) > n {
		cmd = string([]rune(cmd)[:n])
	}
	return cmd + "..."
}

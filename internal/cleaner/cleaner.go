package cleaner

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"

	hcerrors "github.com/chazuruo/histclean/internal/errors"
	"github.com/chazuruo/histclean/internal/history"
)

// Observer receives every decision of a pass, in input order.
type Observer interface {
	Observe(d Decision)
}

// ObserverFunc adapts a function to an Observer.
type ObserverFunc func(d Decision)

// Observe implements Observer.
func (f ObserverFunc) Observe(d Decision) { f(d) }

// Result is the outcome of a cleaning pass.
type Result struct {
	// Kept holds the surviving lines, unmodified and in input order.
	Kept []string

	// Summary counts lines by outcome.
	Summary Summary
}

// Text returns the kept lines joined as they will be written.
func (r *Result) Text() string {
	return strings.Join(r.Kept, "")
}

// Cleaner classifies history lines with a fixed rule chain.
// A Cleaner holds no per-pass state and may be reused.
type Cleaner struct {
	opts   Options
	rules  []Rule
	logger *slog.Logger
}

// Option configures a Cleaner.
type Option func(*Cleaner)

// WithLogger sets the logger used for per-line debug output.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Cleaner) {
		c.logger = logger
	}
}

// New creates a Cleaner for opts.
func New(opts Options, options ...Option) *Cleaner {
	c := &Cleaner{
		opts:   opts,
		rules:  NewRules(opts),
		logger: slog.Default(),
	}
	for _, o := range options {
		o(c)
	}
	return c
}

// Options returns the compiled rule configuration.
func (c *Cleaner) Options() Options {
	return c.opts
}

// Rules returns the rule chain in evaluation order.
func (c *Cleaner) Rules() []Rule {
	return c.rules
}

// Classify decides the fate of one raw line. The first matching rule wins.
// It does not update s; Clean records the decision.
func (c *Cleaner) Classify(s *State, raw string) (history.Entry, Reason) {
	entry, ok := history.ParseLine(raw)
	if !ok {
		return history.Entry{}, Junk
	}

	for _, rule := range c.rules {
		if rule.Match(s, entry) {
			return entry, rule.Reason
		}
	}
	return entry, Kept
}

// Clean reads all lines from r and classifies them in a fresh pass.
// Invalid UTF-8 sequences in the input are dropped. obs may be nil.
func (c *Cleaner) Clean(r io.Reader, obs Observer) (*Result, error) {
	lines, err := history.ReadLines(transform.NewReader(r, dropInvalidUTF8()))
	if err != nil {
		return nil, err
	}

	state := NewState()
	result := &Result{}

	for i, raw := range lines {
		entry, reason := c.Classify(state, raw)
		d := Decision{
			Line:   i + 1,
			Raw:    raw,
			Entry:  entry,
			Reason: reason,
		}
		state.record(d)

		if reason == Kept {
			result.Kept = append(result.Kept, raw)
		}

		c.logger.Debug("classified history line", "line", d.Line, "reason", reason.String())
		if obs != nil {
			obs.Observe(d)
		}
	}

	result.Summary = state.Summary()
	return result, nil
}

// RunOptions controls Run.
type RunOptions struct {
	// DryRun classifies the input without writing the output file.
	DryRun bool
}

// Run cleans the history file at src and writes the kept lines to dst.
//
// If src cannot be read, nothing is written and the error is a
// *errors.HistoryError with Op "read". A write failure is a
// *errors.HistoryError with Op "write"; the destination may be left partial.
func (c *Cleaner) Run(src, dst string, obs Observer, opts RunOptions) (*Result, error) {
	f, err := os.Open(src)
	if err != nil {
		kind := hcerrors.ErrIO
		if os.IsNotExist(err) {
			kind = hcerrors.ErrNotFound
		}
		return nil, &hcerrors.HistoryError{Op: hcerrors.OpRead, Path: src, Err: hcerrors.Join(kind, err)}
	}
	defer func() { _ = f.Close() }()

	result, err := c.Clean(f, obs)
	if err != nil {
		return nil, &hcerrors.HistoryError{Op: hcerrors.OpRead, Path: src, Err: hcerrors.Join(hcerrors.ErrIO, err)}
	}

	if opts.DryRun {
		return result, nil
	}

	if err := os.WriteFile(dst, []byte(result.Text()), 0600); err != nil {
		return result, &hcerrors.HistoryError{Op: hcerrors.OpWrite, Path: dst, Err: hcerrors.Join(hcerrors.ErrIO, err)}
	}

	c.logger.Info("wrote cleaned history", "path", dst, "kept", result.Summary.Kept)
	return result, nil
}

// dropInvalidUTF8 removes ill-formed byte sequences, so a corrupted history
// file is read with the damaged bytes skipped.
func dropInvalidUTF8() transform.Transformer {
	return runes.Remove(runes.Predicate(func(r rune) bool {
		return r == utf8.RuneError
	}))
}

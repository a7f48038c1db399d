package cleaner

import "github.com/chazuruo/histclean/internal/history"

// Decision is the classification of a single input line.
type Decision struct {
	// Line is the 1-based line number in the input.
	Line int

	// Raw is the original line, including its newline.
	Raw string

	// Entry is the parsed entry; zero for junk lines.
	Entry history.Entry

	// Reason is Kept or the removal reason.
	Reason Reason
}

// Summary counts the outcome of one pass.
type Summary struct {
	Total   int            `json:"total" yaml:"total"`
	Kept    int            `json:"kept" yaml:"kept"`
	Removed int            `json:"removed" yaml:"removed"`
	Reasons map[Reason]int `json:"reasons" yaml:"reasons"`
}

// NewSummary returns a summary with a zero count for every reason.
func NewSummary() Summary {
	reasons := make(map[Reason]int, len(Reasons))
	for _, r := range Reasons {
		reasons[r] = 0
	}
	return Summary{Reasons: reasons}
}

// Count returns the number of lines removed for r, or the kept count for Kept.
func (s Summary) Count(r Reason) int {
	if r == Kept {
		return s.Kept
	}
	return s.Reasons[r]
}

// State is the mutable state of one cleaning pass: the set of kept commands
// and the running summary. A State must not be shared between passes.
type State struct {
	seen    map[string]struct{}
	summary Summary
}

// NewState returns a fresh pass state.
func NewState() *State {
	return &State{
		seen:    make(map[string]struct{}),
		summary: NewSummary(),
	}
}

// Seen reports whether cmd was already kept in this pass.
func (s *State) Seen(cmd string) bool {
	_, ok := s.seen[cmd]
	return ok
}

// Summary returns a copy of the counts so far.
func (s *State) Summary() Summary {
	out := s.summary
	out.Reasons = make(map[Reason]int, len(s.summary.Reasons))
	for r, n := range s.summary.Reasons {
		out.Reasons[r] = n
	}
	return out
}

// record applies d to the counters and, for kept lines, the seen set.
func (s *State) record(d Decision) {
	s.summary.Total++
	if d.Reason == Kept {
		s.summary.Kept++
		s.seen[d.Entry.Trimmed()] = struct{}{}
		return
	}
	s.summary.Removed++
	s.summary.Reasons[d.Reason]++
}

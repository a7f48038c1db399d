// Package cleaner classifies zsh history lines and writes a sanitized copy.
package cleaner

// Reason is the outcome of classifying one history line.
// The zero value, Kept, means the line survives.
type Reason string

// Classification outcomes, in rule evaluation order.
const (
	Kept      Reason = ""
	Junk      Reason = "junk"
	Trivial   Reason = "trivial"
	CDCommand Reason = "cd_commands"
	Hidden    Reason = "hidden"
	Secret    Reason = "secret"
	PII       Reason = "pii"
	TooLong   Reason = "too_long"
	Multiline Reason = "multiline"
	Duplicate Reason = "duplicate"
)

// Reasons lists every removal reason in rule evaluation order.
var Reasons = []Reason{
	Junk,
	Trivial,
	CDCommand,
	Hidden,
	Secret,
	PII,
	TooLong,
	Multiline,
	Duplicate,
}

// Removed reports whether r is a removal reason.
func (r Reason) Removed() bool {
	return r != Kept
}

// Previewed reports whether removals for r get a diagnostic preview of the
// offending command.
func (r Reason) Previewed() bool {
	switch r {
	case Secret, PII, TooLong:
		return true
	}
	return false
}

// Label returns a human readable name for the reason.
func (r Reason) Label() string {
	switch r {
	case Kept:
		return "Kept"
	case Junk:
		return "Junk"
	case Trivial:
		return "Trivial/Aliases"
	case CDCommand:
		return "'cd' commands"
	case Hidden:
		return "Hidden (Space)"
	case Secret:
		return "Secrets"
	case PII:
		return "PII (User Paths)"
	case TooLong:
		return "Too Long"
	case Multiline:
		return "Multi-line"
	case Duplicate:
		return "Duplicates"
	}
	return string(r)
}

// String implements fmt.Stringer.
func (r Reason) String() string {
	if r == Kept {
		return "kept"
	}
	return string(r)
}

package cleaner

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/chazuruo/histclean/internal/history"
)

// Rule is one check in the classification chain. Match runs against a parsed
// entry and must not modify the state.
type Rule struct {
	// Reason is reported when Match returns true.
	Reason Reason

	// Description explains what the rule removes.
	Description string

	// Match reports whether the entry should be removed.
	Match func(s *State, e history.Entry) bool
}

// NewRules builds the ordered rule chain for opts. Parse failures are handled
// before the chain runs, since every rule needs a parsed entry.
func NewRules(opts Options) []Rule {
	rules := []Rule{
		{
			Reason:      Trivial,
			Description: "command is a trivial command or personal alias",
			Match:       IsTrivial(opts.Trivial),
		},
	}

	if opts.DropCD {
		rules = append(rules, Rule{
			Reason:      CDCommand,
			Description: "command changes directory with an argument",
			Match:       IsCDWithArgument,
		})
	}

	rules = append(rules,
		Rule{
			Reason:      Hidden,
			Description: "command starts with a space",
			Match:       IsHidden,
		},
		Rule{
			Reason:      Secret,
			Description: "command contains a token, secret keyword or high-entropy run",
			Match:       MatchesAny(opts.SecretPatterns),
		},
		Rule{
			Reason:      PII,
			Description: "command references a personal path",
			Match:       MatchesAny(opts.PIIPatterns),
		},
		Rule{
			Reason:      TooLong,
			Description: "command is longer than the length limit",
			Match:       IsTooLong(opts.MaxCommandLength),
		},
		Rule{
			Reason:      Multiline,
			Description: "command ends with a line continuation",
			Match:       IsMultiline,
		},
		Rule{
			Reason:      Duplicate,
			Description: "command was already kept",
			Match:       IsDuplicate,
		},
	)

	return rules
}

// IsTrivial matches commands equal to an entry of set after trimming.
func IsTrivial(set map[string]struct{}) func(*State, history.Entry) bool {
	return func(_ *State, e history.Entry) bool {
		_, ok := set[e.Trimmed()]
		return ok
	}
}

// IsCDWithArgument matches "cd <dir>". Bare "cd" is left to the trivial set.
func IsCDWithArgument(_ *State, e history.Entry) bool {
	return strings.HasPrefix(e.Trimmed(), "cd ")
}

// IsHidden matches commands recorded with a leading space, which zsh's
// HIST_IGNORE_SPACE treats as not meant for history.
func IsHidden(_ *State, e history.Entry) bool {
	return strings.HasPrefix(e.Command, " ")
}

// MatchesAny matches commands containing any of patterns.
func MatchesAny(patterns []*regexp.Regexp) func(*State, history.Entry) bool {
	return func(_ *State, e history.Entry) bool {
		for _, re := range patterns {
			if re.MatchString(e.Command) {
				return true
			}
		}
		return false
	}
}

// IsTooLong matches trimmed commands longer than limit runes.
func IsTooLong(limit int) func(*State, history.Entry) bool {
	return func(_ *State, e history.Entry) bool {
		return utf8.RuneCountInString(e.Trimmed()) > limit
	}
}

// IsMultiline matches commands ending with a backslash continuation.
func IsMultiline(_ *State, e history.Entry) bool {
	return strings.HasSuffix(strings.TrimRightFunc(e.Command, unicode.IsSpace), `\`)
}

// IsDuplicate matches commands already kept earlier in the pass.
func IsDuplicate(s *State, e history.Entry) bool {
	return s.Seen(e.Trimmed())
}

package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/rodaine/table"

	"github.com/chazuruo/histclean/internal/cleaner"
)

// Rules prints the rule chain in evaluation order with the settings each
// rule uses.
func (p *Printer) Rules(c *cleaner.Cleaner) {
	opts := c.Options()

	tbl := table.New("#", "Reason", "Removes", "Settings").
		WithWriter(p.w).
		WithPadding(2).
		WithHeaderFormatter(formatter(p.styles.header)).
		WithFirstColumnFormatter(formatter(p.styles.muted))

	tbl.AddRow(1, cleaner.Junk, "line is not a \": <start>:<elapsed>;<command>\" entry", "")
	for i, rule := range c.Rules() {
		tbl.AddRow(i+2, rule.Reason, rule.Description, ruleSettings(rule.Reason, opts))
	}
	tbl.Print()
}

func ruleSettings(r cleaner.Reason, opts cleaner.Options) string {
	switch r {
	case cleaner.Trivial:
		cmds := make([]string, 0, len(opts.Trivial))
		for cmd := range opts.Trivial {
			cmds = append(cmds, fmt.Sprintf("%q", cmd))
		}
		sort.Strings(cmds)
		return strings.Join(cmds, " ")
	case cleaner.Secret:
		return fmt.Sprintf("%d patterns", len(opts.SecretPatterns))
	case cleaner.PII:
		patterns := make([]string, len(opts.PIIPatterns))
		for i, re := range opts.PIIPatterns {
			patterns[i] = re.String()
		}
		return strings.Join(patterns, " ")
	case cleaner.TooLong:
		return fmt.Sprintf("> %d chars", opts.MaxCommandLength)
	}
	return ""
}

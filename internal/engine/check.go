// Package engine runs the enabled rules over text and applies their
// fixes until the text stabilizes.
package engine

import (
	"github.com/daxida/grs/internal/lint"
	"github.com/daxida/grs/internal/rule"
	"github.com/daxida/grs/internal/rules"
)

// Checker runs one enabled rule set over text snapshots. It is stateless
// across calls apart from the evaluator table, so a single Checker can be
// reused for any number of texts.
type Checker struct {
	registry *rules.Registry

	// Number of times Check tokenized its input, for tests.
	tokenizations int
}

// NewChecker builds a Checker for the given rules.
func NewChecker(enabled []rule.Rule) *Checker {
	return &Checker{registry: rules.New(enabled)}
}

// Check reports every diagnostic the enabled rules produce for text. Raw
// rules run first against the text itself; when no enabled rule needs a
// tokenized document, the tokenizer never runs.
func (c *Checker) Check(text string) []lint.Diagnostic {
	var diags []lint.Diagnostic

	for _, raw := range c.registry.Raw {
		raw(text, &diags)
	}

	if !c.registry.RequiresTokenizing() {
		return diags
	}

	c.tokenizations++
	doc := lint.Tokenize(text)
	for i := 0; i < doc.Len(); i++ {
		tok := doc.Get(i)
		switch {
		case tok.IsGreekWord():
			for _, fn := range c.registry.Greek {
				fn(tok, doc, &diags)
			}
		case tok.IsWord():
			for _, fn := range c.registry.Word {
				fn(tok, doc, &diags)
			}
		}
	}
	return diags
}

// Count tallies diagnostics per rule.
func Count(diags []lint.Diagnostic) map[rule.Rule]int {
	counts := make(map[rule.Rule]int)
	for _, d := range diags {
		counts[d.Kind]++
	}
	return counts
}

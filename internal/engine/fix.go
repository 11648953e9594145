package engine

import (
	"fmt"
	"sort"
	"strings"

	"github.com/daxida/grs/internal/lint"
	"github.com/daxida/grs/internal/log"
	"github.com/daxida/grs/internal/rule"
)

// maxIterations caps the fixing loop. A well-behaved rule set converges
// in a handful of passes; hitting the cap means two rules keep rewriting
// each other's output.
const maxIterations = 100

// FixResult is the outcome of one convergent fixing run.
type FixResult struct {
	// Text is the stabilized text.
	Text string
	// Counts tallies applied fixes per rule. Discarded fixes and
	// diagnostics without fixes are not counted.
	Counts map[rule.Rule]int
	// Iterations is the number of passes that applied at least one fix.
	Iterations int
	// Aborted is set when the loop hit maxIterations before converging.
	// The returned text is still a valid partial correction.
	Aborted bool
}

// Fixer repeatedly checks and rewrites text until no fixable diagnostic
// remains. Rules without fixes cannot change the text, so they are
// dropped when the Fixer is built.
type Fixer struct {
	checker *Checker
	log     *log.Logger
}

// NewFixer builds a Fixer for the fixable subset of the given rules.
func NewFixer(enabled []rule.Rule, logger *log.Logger) *Fixer {
	if logger == nil {
		logger = &log.Logger{}
	}
	fixable := make([]rule.Rule, 0, len(enabled))
	for _, r := range enabled {
		if r.HasFix() {
			fixable = append(fixable, r)
		}
	}
	return &Fixer{checker: NewChecker(fixable), log: logger}
}

type pendingFix struct {
	kind rule.Rule
	fix  *lint.Fix
}

// sortFixes orders fixes for application: DuplicatedWord fixes first,
// then ascending start position. The sort is stable so equal-start fixes
// keep their reporting order.
func sortFixes(fixes []pendingFix) {
	sort.SliceStable(fixes, func(i, j int) bool {
		di := fixes[i].kind == rule.DuplicatedWord
		dj := fixes[j].kind == rule.DuplicatedWord
		if di != dj {
			return di
		}
		return fixes[i].fix.Range.Start() < fixes[j].fix.Range.Start()
	})
}

// Fix applies fixes to text until it stabilizes.
//
// Each pass checks the working text, applies the surviving fixes left to
// right, and loops. A fix starting before the end of the previously
// applied one is discarded; the rule reports it again on the next pass if
// it still holds. Ranges always refer to the snapshot they were produced
// from, never to partially rewritten text.
//
// The prefix before the earliest pending fix of a pass held no fixable
// errors; it is moved to a settled accumulator so later passes do not
// re-tokenize it. This assumes a fix never affects earlier tokens, which
// is possible but rare since there is little dependency across tokens.
func (f *Fixer) Fix(text string) FixResult {
	res := FixResult{Counts: make(map[rule.Rule]int)}

	var settled strings.Builder
	settled.Grow(len(text))
	working := text

	for {
		diags := f.checker.Check(working)
		var fixes []pendingFix
		for i := range diags {
			if diags[i].Fix != nil {
				fixes = append(fixes, pendingFix{kind: diags[i].Kind, fix: diags[i].Fix})
			}
		}
		if len(fixes) == 0 {
			break
		}
		sortFixes(fixes)

		minStart := len(working)
		for _, pf := range fixes {
			if s := pf.fix.Range.Start(); s < minStart {
				minStart = s
			}
		}
		settled.WriteString(working[:minStart])

		var out strings.Builder
		out.Grow(len(working))
		lastPos := minStart
		for _, pf := range fixes {
			r := pf.fix.Range
			if r.End() > len(working) {
				panic(fmt.Sprintf("engine: fix range %s beyond text of length %d", r, len(working)))
			}
			if r.Start() < lastPos {
				f.log.Printf("discarding overlapping %s fix at %s", pf.kind, r)
				continue
			}
			out.WriteString(working[lastPos:r.Start()])
			out.WriteString(pf.fix.Replacement)
			res.Counts[pf.kind]++
			lastPos = r.End()
		}
		out.WriteString(working[lastPos:])
		working = out.String()

		res.Iterations++
		if res.Iterations == maxIterations {
			f.log.Printf("warning: exceeded %d iterations without converging", maxIterations)
			res.Aborted = true
			break
		}
	}

	settled.WriteString(working)
	res.Text = settled.String()
	return res
}

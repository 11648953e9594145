package rules

import (
	"strings"

	"github.com/daxida/grs/internal/lint"
	"github.com/daxida/grs/internal/rule"
)

// Lookalikes that should never appear in Greek text, with their Greek
// replacement. The micro sign is by far the most common offender.
var ambiguousPairs = [][2]string{
	{"µ", "μ"},
}

// AmbiguousChar reports the first occurrence of each ambiguous character.
// Later occurrences surface on subsequent fixing passes.
func AmbiguousChar(text string, diags *[]lint.Diagnostic) {
	for _, pair := range ambiguousPairs {
		target, replacement := pair[0], pair[1]
		start := strings.Index(text, target)
		if start < 0 {
			continue
		}
		r := lint.NewRange(start, start+len(target))
		*diags = append(*diags, lint.Diagnostic{
			Kind:  rule.AmbiguousChar,
			Range: r,
			Fix: &lint.Fix{
				Replacement: replacement,
				Range:       r,
			},
		})
	}
}

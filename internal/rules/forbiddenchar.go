package rules

import (
	"github.com/daxida/grs/internal/greek"
	"github.com/daxida/grs/internal/lint"
	"github.com/daxida/grs/internal/rule"
)

// ForbiddenChar reports a final sigma in non-final position, i.e. a ς
// followed by another Greek letter.
//
// There is no fix since the error could be caused by either:
// * a simple confusion of ς and σ: πιςτεύοντας
// * a missing space: πιστεύονταςτην
func ForbiddenChar(text string, diags *[]lint.Diagnostic) {
	prev := rune(0)
	prevIdx := -1
	for idx, c := range text {
		if prev == 'ς' && greek.IsGreekLetter(c) {
			*diags = append(*diags, lint.Diagnostic{
				Kind:  rule.ForbiddenChar,
				Range: lint.NewRange(prevIdx, idx),
				Fix:   nil,
			})
		}
		prev = c
		prevIdx = idx
	}
}

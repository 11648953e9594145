package rules

import (
	"strings"

	"github.com/daxida/grs/internal/greek"
	"github.com/daxida/grs/internal/lint"
	"github.com/daxida/grs/internal/rule"
)

var latinToGreek = map[rune]rune{
	'A': 'Α',
	'Á': 'Ά',
	'B': 'Β',
	'E': 'Ε',
	'É': 'Έ',
	'H': 'Η',
	'I': 'Ι',
	'Í': 'Ί',
	'K': 'Κ',
	'M': 'Μ',
	'N': 'Ν',
	'O': 'Ο',
	'Ó': 'Ό',
	'P': 'Ρ',
	'T': 'Τ',
	'X': 'Χ',
	'Y': 'Υ',
	'o': 'ο',
	'ó': 'ό',
	'u': 'υ',
	'v': 'ν',
}

// MixedScripts reports words mixing Greek letters with lookalike Latin
// ones, and proposes the all-Greek spelling. Ex. νέo with a Latin o.
func MixedScripts(tok *lint.Token, _ *lint.Doc, diags *[]lint.Diagnostic) {
	hasLatin := false
	hasGreek := false
	for _, r := range tok.Text() {
		if greek.IsGreekLetter(r) {
			hasGreek = true
		} else if _, ok := latinToGreek[r]; ok {
			hasLatin = true
		}
	}
	if !hasLatin || !hasGreek {
		return
	}

	var fixed strings.Builder
	for _, r := range tok.Text() {
		if g, ok := latinToGreek[r]; ok {
			fixed.WriteRune(g)
		} else {
			fixed.WriteRune(r)
		}
	}
	*diags = append(*diags, lint.Diagnostic{
		Kind:  rule.MixedScripts,
		Range: tok.Range(),
		Fix: &lint.Fix{
			Replacement: fixed.String(),
			Range:       tok.Range(),
		},
	})
}

package rules

import (
	"github.com/daxida/grs/internal/greek"
	"github.com/daxida/grs/internal/lint"
	"github.com/daxida/grs/internal/rule"
)

// MissingAccentCapital reports the French-style convention, frequent in
// newspapers, where the first word of a sentence loses its accent when
// the accent falls on its first letter. Ex. Ηταν μόλις 31…
func MissingAccentCapital(tok *lint.Token, doc *lint.Doc, diags *[]lint.Diagnostic) {
	text := tok.Text()
	if !greek.IsCapitalized(text) {
		return
	}
	// Checking every diacritic rather than just the acute avoids false
	// positives on polytonic text.
	if greek.HasAnyDiacritic(text) {
		return
	}
	first, ok := firstRune(text)
	if !ok || !greek.IsVowel(first) || doc.IsAbbreviationOrEndsWithDot(tok) {
		return
	}
	n := tok.NumSyllables()
	if n <= 1 {
		return
	}
	*diags = append(*diags, lint.Diagnostic{
		Kind:  rule.MissingAccentCapital,
		Range: tok.Range(),
		Fix: &lint.Fix{
			Replacement: greek.AddAcuteAt(text, n),
			Range:       tok.Range(),
		},
	})
}

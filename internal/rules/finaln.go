package rules

import (
	"strings"

	"github.com/samber/lo"

	"github.com/daxida/grs/internal/greek"
	"github.com/daxida/grs/internal/lint"
	"github.com/daxida/grs/internal/rule"
)

var plosiveClusters = []string{
	"κ", "π", "τ", "μπ", "ντ", "γκ", "ξ", "ψ",
	"Κ", "Π", "Τ", "Μπ", "Ντ", "Γκ", "Ξ", "Ψ",
}

// Notes:
// - αυτή αυτήν requires some extra work
// - μη and δε are also probably not safe to add
var candidatesRemove = []string{"την", "στην", "Την", "Στην"}
var candidatesAdd = []string{"τη", "στη", "Τη", "Στη"}

func startsWithVowelOrPlosive(tok *lint.Token) bool {
	first, ok := firstRune(tok.Text())
	if !ok {
		return false
	}
	return greek.IsVowel(first) || lo.SomeBy(plosiveClusters, func(p string) bool {
		return strings.HasPrefix(tok.Text(), p)
	})
}

// RemoveFinalN reports την/στην before a word starting with neither a
// vowel nor a plosive cluster.
func RemoveFinalN(tok *lint.Token, doc *lint.Doc, diags *[]lint.Diagnostic) {
	if !lo.Contains(candidatesRemove, tok.Text()) {
		return
	}
	// Treat the archaic construction "εις την" as valid.
	if tok.Text() == "την" {
		if prev := doc.PrevNotWhitespace(tok); prev != nil && prev.Text() == "εις" {
			return
		}
	}
	next := doc.NextNotWhitespace(tok)
	if next == nil || !next.IsGreekWord() || startsWithVowelOrPlosive(next) {
		return
	}
	text := tok.Text()
	*diags = append(*diags, lint.Diagnostic{
		Kind:  rule.RemoveFinalN,
		Range: tok.Range(),
		Fix: &lint.Fix{
			Replacement: strings.TrimSuffix(text, "ν"),
			Range:       tok.Range(),
		},
	})
}

// AddFinalN reports τη/στη before a word starting with a vowel or a
// plosive cluster.
func AddFinalN(tok *lint.Token, doc *lint.Doc, diags *[]lint.Diagnostic) {
	if !lo.Contains(candidatesAdd, tok.Text()) {
		return
	}
	// Treat the archaic construction "εν τη" as valid.
	if tok.Text() == "τη" {
		if prev := doc.PrevNotWhitespace(tok); prev != nil && prev.Text() == "εν" {
			return
		}
	}
	next := doc.NextNotWhitespace(tok)
	if next == nil || !startsWithVowelOrPlosive(next) {
		return
	}
	// Avoid false positives with formal dative expressions (επί τη
	// εμφανίσει, πρώτος τη τάξει): skip when the next word ends in ει.
	// This causes false negatives, which are preferable anyway.
	if strings.HasSuffix(next.Text(), "ει") {
		return
	}
	*diags = append(*diags, lint.Diagnostic{
		Kind:  rule.AddFinalN,
		Range: tok.Range(),
		Fix: &lint.Fix{
			Replacement: tok.Text() + "ν",
			Range:       tok.Range(),
		},
	})
}

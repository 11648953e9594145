package rules

import (
	"strings"

	"github.com/samber/lo"

	"github.com/daxida/grs/internal/greek"
	"github.com/daxida/grs/internal/lint"
	"github.com/daxida/grs/internal/rule"
)

var punctStartingStrings = []string{"ν", "μ", "σ", "τ", "ουδ", "κ"}

// Punctuation reports elisions with no space after the apostrophe:
// μ'αυτό, ν'αγαπάς.
//
// It may false positive when the apostrophe omits a vowel inside a word,
// but that is relatively rare.
func Punctuation(tok *lint.Token, _ *lint.Doc, diags *[]lint.Diagnostic) {
	text := tok.Text()
	for _, apostrophe := range greek.Apostrophes {
		fst, snd, found := strings.Cut(text, string(apostrophe))
		if !found || snd == "" {
			continue
		}
		// This discards most tokens, so the lowercasing right after
		// stays cheap.
		if !lo.Contains(punctStartingStrings, strings.ToLower(fst)) {
			return
		}
		*diags = append(*diags, lint.Diagnostic{
			Kind:  rule.Punctuation,
			Range: tok.Range(),
			Fix: &lint.Fix{
				Replacement: fst + string(apostrophe) + " " + snd,
				Range:       tok.Range(),
			},
		})
		return
	}
}

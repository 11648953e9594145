package rules

import (
	"strings"
	"unicode"

	"github.com/samber/lo"

	"github.com/daxida/grs/internal/greek"
	"github.com/daxida/grs/internal/lint"
	"github.com/daxida/grs/internal/rule"
)

// The extra list deals with the ποιός variants: while τί is caught by the
// syllable count, ποιός escapes it by not being a monosyllable once it has
// the accent. ποιόν and ποιού are excluded since they are ambiguous and
// can come from the noun ποιόν.
var extraMonosyllables = greek.WithCapitalized([]string{
	"ποιός", "ποιό", "ποιοί", "ποιών", "ποιούς", "ποιά", "ποιάς", "ποιές",
})

func isMonosyllableAccented(tok *lint.Token) bool {
	text := tok.Text()
	// Cheap length discard before the syllable count.
	return len(text) < 12 &&
		greek.HasDiacritic(text, greek.Acute) &&
		// πλάι is not an error.
		!greek.EndsWithDiphthong(text) &&
		tok.NumSyllables() == 1
}

// MonosyllableAccented reports wrongly accented monosyllables.
func MonosyllableAccented(tok *lint.Token, doc *lint.Doc, diags *[]lint.Diagnostic) {
	text := tok.Text()
	if lo.Contains(greek.MonosyllableAccentedWithPronouns, text) ||
		doc.IsAbbreviationOrEndsWithDot(tok) ||
		doc.PrevTokenIsNum(tok) {
		return
	}
	if lo.Contains(extraMonosyllables, text) || isMonosyllableAccented(tok) {
		*diags = append(*diags, lint.Diagnostic{
			Kind:  rule.MonosyllableAccented,
			Range: tok.Range(),
			Fix: &lint.Fix{
				Replacement: greek.RemoveDiacriticAt(text, 1, greek.Acute),
				Range:       tok.Range(),
			},
		})
	}
}

// Cannot appear in capitalized position, so no uppercase variants.
// https://el.wiktionary.org/wiki/τινά
var correctMultisyllableNotAccented = []string{
	"ποτε",
	"τινες", "τινα", "τινε", "τινος", "τινων", "τινοιν", "τινι", "τισι", "τινας",
	"τονε", "τηνε",
}

// Prefixed titles that stay unaccented before a hyphenated name.
// https://el.wiktionary.org/wiki/προτακτικό
var prostaktikoi = greek.WithCapitalized([]string{
	"αγια", "αγιο", "αϊ", "γερο", "γρια", "θεια",
	"κυρα", "μαστρο", "μπαρμπα", "παπα", "χατζη",
	"σιορ", "ψευτο",
})

func isMultisyllableNotAccented(tok *lint.Token) bool {
	text := tok.Text()
	// Forcing synizesis keeps δια and μιαν out; a missed κάποια-like word
	// is preferable to flagging a correct one.
	return !greek.HasDiacritic(text, greek.Acute) &&
		!greek.HasDiacritic(text, greek.Grave) &&
		!greek.HasDiacritic(text, greek.Circumflex) &&
		len(greek.SyllabifyMode(text, greek.MergeEvery)) > 1
}

func multisyllableNotAccentedSkip(tok *lint.Token, doc *lint.Doc) bool {
	text := tok.Text()
	if lo.Contains(correctMultisyllableNotAccented, text) ||
		lo.Contains(ancientUnaccented, text) ||
		doc.IsAbbreviationOrEndsWithDot(tok) ||
		doc.PrevTokenIsNum(tok) {
		return true
	}
	// All caps is fine. Ex. ΒΟΥΤΥΡΑ.
	if lo.EveryBy([]rune(text), unicode.IsUpper) {
		return true
	}
	// Acronyms and some other compounds. Ex. Α.Υ., Ο,ΤΙ ΝΑ 'ΝΑΙ
	if strings.ContainsAny(text, ".|:,/-(") {
		return true
	}
	if prev := doc.PrevNotWhitespace(tok); prev != nil && prev.IsPunctuation() {
		if first, ok := firstRune(prev.Text()); ok && greek.IsApostrophe(first) {
			return true
		}
	}
	if next := doc.NextNotWhitespace(tok); next != nil && next.IsPunctuation() {
		if first, ok := firstRune(next.Text()); ok {
			if greek.IsApostrophe(first) {
				return true
			}
			if first == '-' && lo.Contains(prostaktikoi, text) {
				return true
			}
		}
	}
	return false
}

// MultisyllableNotAccented reports multisyllables missing their accent.
// There is no fix: we cannot know where the accent was supposed to be.
func MultisyllableNotAccented(tok *lint.Token, doc *lint.Doc, diags *[]lint.Diagnostic) {
	if multisyllableNotAccentedSkip(tok, doc) {
		return
	}
	if isMultisyllableNotAccented(tok) {
		*diags = append(*diags, lint.Diagnostic{
			Kind:  rule.MultisyllableNotAccented,
			Range: tok.Range(),
			Fix:   nil,
		})
	}
}

func firstRune(s string) (rune, bool) {
	for _, r := range s {
		return r, true
	}
	return 0, false
}

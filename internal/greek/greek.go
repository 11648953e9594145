// Package greek provides the script-level primitives the rules are built on:
// Greek letter and word predicates, punctuation splitting, syllabification,
// and diacritic queries and edits.
package greek

import (
	"unicode"
	"unicode/utf8"
)

// Apostrophes is the set of characters treated as apostrophes: the ASCII
// apostrophe, the right single quotation mark, the modifier letter
// apostrophe, the Greek koronis and the Greek psili.
var Apostrophes = []rune{'\'', '’', 'ʼ', '᾽', '᾿'}

// IsApostrophe reports whether r belongs to the apostrophe class.
func IsApostrophe(r rune) bool {
	for _, a := range Apostrophes {
		if r == a {
			return true
		}
	}
	return false
}

// IsGreekLetter reports whether r is a letter of the Greek script,
// including the polytonic (Greek Extended) block.
func IsGreekLetter(r rune) bool {
	return unicode.IsLetter(r) && unicode.Is(unicode.Greek, r)
}

// IsGreekWord reports whether s reads as a Greek word: at least one Greek
// letter, and nothing but Greek letters and apostrophes. Apostrophes are
// allowed so that elisions like σ'αυτόν stay a single word.
func IsGreekWord(s string) bool {
	hasLetter := false
	for _, r := range s {
		switch {
		case IsGreekLetter(r):
			hasLetter = true
		case IsApostrophe(r):
		default:
			return false
		}
	}
	return hasLetter
}

// IsVowel reports whether r is a Greek vowel, in any case and with any
// diacritics.
func IsVowel(r rune) bool {
	switch unicode.ToLower(baseLetter(r)) {
	case 'α', 'ε', 'η', 'ι', 'ο', 'υ', 'ω':
		return true
	}
	return false
}

// IsCapitalized reports whether the first character of s is uppercase and
// all the remaining ones are lowercase.
func IsCapitalized(s string) bool {
	first := true
	for _, r := range s {
		if first {
			if !unicode.IsUpper(r) {
				return false
			}
			first = false
			continue
		}
		if !unicode.IsLower(r) {
			return false
		}
	}
	return !first
}

// MonosyllableAccentedWithPronouns lists the monosyllables that
// legitimately carry an acute accent: the disjunctive ή, the
// interrogatives πού and πώς, the archaic numerals είς and έν, and the
// weak pronouns when accented for disambiguation.
var MonosyllableAccentedWithPronouns = []string{
	"ή", "Ή",
	"πού", "Πού",
	"πώς", "Πώς",
	"είς", "Είς", "έν", "Έν",
	"μού", "σού", "τού", "τής", "τόν", "τήν", "τό",
	"μάς", "σάς", "τούς", "τίς", "τά", "τών",
}

// SplitPunctuation splits a run of non-whitespace text into a leading
// non-letter prefix, a central span from the first to the last letter, and
// a trailing non-letter suffix. The central span may itself contain
// non-letter characters (an internal apostrophe or hyphen). Digits are not
// letters, so "2ος" splits into "2" and "ος". A run with no letter at all
// comes back entirely as the prefix.
func SplitPunctuation(s string) (lpunct, word, rpunct string) {
	first := -1
	last := -1
	for i, r := range s {
		if unicode.IsLetter(r) {
			if first < 0 {
				first = i
			}
			last = i + utf8.RuneLen(r)
		}
	}
	if first < 0 {
		return s, "", ""
	}
	return s[:first], s[first:last], s[last:]
}

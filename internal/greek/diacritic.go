package greek

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Combining marks for the diacritics the rules care about. All queries and
// edits work on the NFD decomposition, so the monotonic tonos and the
// polytonic oxia (canonically equivalent) are both seen as Acute.
const (
	Acute      = '́' // tonos / oxia
	Grave      = '̀' // varia
	Circumflex = '͂' // perispomeni
	Diaeresis  = '̈' // dialytika
	Smooth     = '̓' // psili
	Rough      = '̔' // dasia
	IotaSub    = 'ͅ' // ypogegrammeni
)

var allDiacritics = []rune{Acute, Grave, Circumflex, Diaeresis, Smooth, Rough, IotaSub}

// HasDiacritic reports whether any character of s carries the given
// combining mark.
func HasDiacritic(s string, d rune) bool {
	return strings.ContainsRune(norm.NFD.String(s), d)
}

// HasAnyDiacritic reports whether any character of s carries any Greek
// diacritic at all.
func HasAnyDiacritic(s string) bool {
	decomposed := norm.NFD.String(s)
	for _, d := range allDiacritics {
		if strings.ContainsRune(decomposed, d) {
			return true
		}
	}
	return false
}

// baseLetter strips every combining mark from r, returning the plain
// letter. Non-letters come back unchanged.
func baseLetter(r rune) rune {
	decomposed := norm.NFD.String(string(r))
	for _, b := range decomposed {
		return b
	}
	return r
}

// runeHasMark reports whether the precomposed rune r carries the given
// combining mark.
func runeHasMark(r, d rune) bool {
	return strings.ContainsRune(norm.NFD.String(string(r)), d)
}

// DiacriticPos returns the 1-based positions, counted from the end of the
// word, of the syllables carrying the given diacritic. A word accented
// only on the antepenultimate yields [3].
func DiacriticPos(word string, d rune) []int {
	return diacriticPos(Syllabify(word), d)
}

// DiacriticPosMode is DiacriticPos over a specific syllabification mode.
func DiacriticPosMode(word string, d rune, mode Merge) []int {
	return diacriticPos(SyllabifyMode(word, mode), d)
}

func diacriticPos(syllables []string, d rune) []int {
	var pos []int
	n := len(syllables)
	for i := n - 1; i >= 0; i-- {
		if HasDiacritic(syllables[i], d) {
			pos = append(pos, n-i)
		}
	}
	return pos
}

// AddAcuteAt returns word with an acute accent added on the n-th syllable
// counted from the end (1 is the last syllable). The accent lands on the
// last vowel of that syllable, which places it on the second letter of a
// digraph (αι becomes αί). Out-of-range positions return word unchanged.
func AddAcuteAt(word string, n int) string {
	return editSyllable(word, n, func(syllable string) string {
		return markLastVowel(syllable, Acute, true)
	})
}

// RemoveDiacriticAt returns word with the given diacritic removed from
// every character of the n-th syllable counted from the end.
func RemoveDiacriticAt(word string, n int, d rune) string {
	return editSyllable(word, n, func(syllable string) string {
		stripped := strings.Map(func(r rune) rune {
			if r == d {
				return -1
			}
			return r
		}, norm.NFD.String(syllable))
		return norm.NFC.String(stripped)
	})
}

func editSyllable(word string, n int, edit func(string) string) string {
	syllables := Syllabify(word)
	idx := len(syllables) - n
	if idx < 0 || idx >= len(syllables) {
		return word
	}
	syllables[idx] = edit(syllables[idx])
	return strings.Join(syllables, "")
}

// markLastVowel adds the combining mark d to the last vowel of s. With
// replaceAccents set, any existing acute, grave or circumflex on that
// vowel is dropped first.
func markLastVowel(s string, d rune, replaceAccents bool) string {
	runes := []rune(s)
	for i := len(runes) - 1; i >= 0; i-- {
		if !IsVowel(runes[i]) {
			continue
		}
		decomposed := norm.NFD.String(string(runes[i]))
		var out []rune
		for _, r := range decomposed {
			if replaceAccents && (r == Acute || r == Grave || r == Circumflex) {
				continue
			}
			out = append(out, r)
		}
		out = append(out, d)
		marked := norm.NFC.String(string(out))
		return string(runes[:i]) + marked + string(runes[i+1:])
	}
	return s
}

package greek

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Merge selects how aggressively adjacent vowels are merged into one
// syllable nucleus.
type Merge int

const (
	// MergeDefault merges only the standard digraphs (αι, ει, οι, υι,
	// αυ, ευ, ηυ, ου) when the first vowel is unaccented and the second
	// carries no dialytika.
	MergeDefault Merge = iota

	// MergeEvery additionally forces synizesis: an unaccented ι or υ at
	// the end of a nucleus absorbs any following vowel, so δια counts as
	// one syllable.
	MergeEvery
)

var digraphs = map[string]bool{
	"αι": true, "ει": true, "οι": true, "υι": true,
	"αυ": true, "ευ": true, "ηυ": true, "ου": true,
}

// Consonant clusters that can start a Greek word. A cluster between two
// nuclei moves whole to the following syllable when its first two
// consonants appear here; otherwise the first consonant stays behind.
var initialClusters = map[string]bool{
	"βγ": true, "βδ": true, "βλ": true, "βρ": true,
	"γδ": true, "γκ": true, "γλ": true, "γν": true, "γρ": true,
	"δρ": true, "θλ": true, "θν": true, "θρ": true,
	"κλ": true, "κν": true, "κρ": true, "κτ": true,
	"μν": true, "μπ": true, "ντ": true,
	"πλ": true, "πν": true, "πρ": true, "πτ": true,
	"σβ": true, "σγ": true, "σθ": true, "σκ": true, "σλ": true,
	"σμ": true, "σν": true, "σπ": true, "στ": true, "σφ": true, "σχ": true,
	"τζ": true, "τμ": true, "τρ": true, "τσ": true,
	"φθ": true, "φλ": true, "φρ": true, "φτ": true,
	"χλ": true, "χν": true, "χρ": true, "χτ": true,
}

type syllableRune struct {
	r        rune
	base     rune // lowercased base letter
	vowel    bool
	accent   bool // acute, grave or circumflex
	dialytik bool
}

func analyze(word string) []syllableRune {
	runes := []rune(word)
	infos := make([]syllableRune, len(runes))
	for i, r := range runes {
		info := syllableRune{r: r, base: unicode.ToLower(baseLetter(r))}
		info.vowel = IsVowel(r)
		if info.vowel {
			decomposed := norm.NFD.String(string(r))
			info.accent = strings.ContainsRune(decomposed, Acute) ||
				strings.ContainsRune(decomposed, Grave) ||
				strings.ContainsRune(decomposed, Circumflex)
			info.dialytik = strings.ContainsRune(decomposed, Diaeresis)
		}
		infos[i] = info
	}
	return infos
}

// Syllabify splits a Greek word into its syllables using the standard
// digraph rules. Characters that are not Greek vowels (including foreign
// letters and punctuation embedded in the word) are treated as consonants.
// A word with no vowel comes back as a single syllable.
func Syllabify(word string) []string {
	return SyllabifyMode(word, MergeDefault)
}

// SyllabifyMode is Syllabify with an explicit vowel-merging mode.
func SyllabifyMode(word string, mode Merge) []string {
	infos := analyze(word)

	// Nuclei as [start, end) rune index intervals.
	type span struct{ start, end int }
	var nuclei []span
	for i := 0; i < len(infos); {
		if !infos[i].vowel {
			i++
			continue
		}
		start := i
		i++
		for i < len(infos) && infos[i].vowel {
			prev, cur := infos[i-1], infos[i]
			pair := string(prev.base) + string(cur.base)
			joined := false
			if digraphs[pair] && !prev.accent && !cur.dialytik {
				joined = true
			} else if mode == MergeEvery &&
				(prev.base == 'ι' || prev.base == 'υ') &&
				!prev.accent && !prev.dialytik {
				joined = true
			}
			if !joined {
				break
			}
			i++
		}
		nuclei = append(nuclei, span{start, i})
	}

	runes := make([]rune, len(infos))
	for i, info := range infos {
		runes[i] = info.r
	}

	if len(nuclei) == 0 {
		if len(runes) == 0 {
			return nil
		}
		return []string{word}
	}

	// Syllable boundaries: consonants between two nuclei split according
	// to the initial-cluster table.
	var syllables []string
	prevBoundary := 0
	for k := 1; k < len(nuclei); k++ {
		clusterStart := nuclei[k-1].end
		clusterEnd := nuclei[k].start
		boundary := clusterStart
		switch n := clusterEnd - clusterStart; {
		case n <= 1:
			// Zero or one consonant joins the following syllable.
		default:
			pair := string(unicode.ToLower(baseLetter(runes[clusterStart]))) +
				string(unicode.ToLower(baseLetter(runes[clusterStart+1])))
			if !initialClusters[pair] {
				boundary = clusterStart + 1
			}
		}
		syllables = append(syllables, string(runes[prevBoundary:boundary]))
		prevBoundary = boundary
	}
	syllables = append(syllables, string(runes[prevBoundary:]))
	return syllables
}

// CountSyllables returns the number of syllables of a Greek word.
func CountSyllables(word string) int {
	return len(SyllabifyMode(word, MergeDefault))
}

// EndsWithDiphthong reports whether the last two letters of s form one of
// the standard digraphs, regardless of an accent on the first of them.
// πλάι ends with a diphthong; πλά does not.
func EndsWithDiphthong(s string) bool {
	runes := []rune(s)
	if len(runes) < 2 {
		return false
	}
	a := runes[len(runes)-2]
	b := runes[len(runes)-1]
	if !IsVowel(a) || !IsVowel(b) {
		return false
	}
	if runeHasMark(b, Diaeresis) {
		return false
	}
	pair := string(unicode.ToLower(baseLetter(a))) + string(unicode.ToLower(baseLetter(b)))
	return digraphs[pair]
}

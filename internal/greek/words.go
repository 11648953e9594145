package greek

import (
	"strings"
	"unicode"
)

// WithCapitalized returns words followed by their capitalized variants.
func WithCapitalized(words []string) []string {
	out := make([]string, 0, 2*len(words))
	out = append(out, words...)
	for _, w := range words {
		r := []rune(w)
		if len(r) == 0 || unicode.IsUpper(r[0]) {
			continue
		}
		out = append(out, capitalizeFirst(r))
	}
	return out
}

func capitalizeFirst(r []rune) string {
	var b strings.Builder
	b.WriteRune(unicode.ToUpper(r[0]))
	b.WriteString(string(r[1:]))
	return b.String()
}

// MultiplePronunciation lists words whose syllable count depends on
// whether synizesis applies: άδεια reads as both ά-δει-α and ά-δεια.
// Accent position is undecidable for them, so the accent rules leave
// them alone.
var MultiplePronunciation = WithCapitalized([]string{
	"άδεια", "άδειας", "άδειες",
	"άγια", "άγιας", "άγιες",
	"αλήθεια", "αλήθειας", "αλήθειες",
	"βόρεια", "νότια",
	"δίκαια", "μάτια",
	"έννοια", "έννοιας", "έννοιες",
	"ήπια", "ήπιας", "ήπιες",
	"ίσια",
	"περιβόλια",
	"τελώνια",
	"χούγια",
})

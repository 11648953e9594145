package rules

import (
	"strings"

	"github.com/daxida/grs/internal/lint"
	"github.com/daxida/grs/internal/rule"
)

// Some caveats:
// - Without word-boundary logic this could replace chunks inside words.
//   This is fine (for now).
// - The table carries manual uppercase variants: lowercasing the whole
//   input to match against it would cost more than it saves.
var outdatedSpellings = [][2]string{
	// Superfluous diaereses
	{"άϊ", "άι"},
	{"άϋ", "άυ"},
	{"έϊ", "έι"},
	{"έϋ", "έυ"},
	{"όϊ", "όι"},
	{"όϋ", "όυ"},
	{"ούϊ", "ούι"},
	// Capitalized
	{"Άϊ", "Άι"},
	{"Άϋ", "Άυ"},
	{"Έϊ", "Έι"},
	{"Έϋ", "Έυ"},
	{"Όϊ", "Όι"},
	{"Όϋ", "Όυ"},
	{"Ούϊ", "Ούι"},
	// Others
	{"κρεββάτι", "κρεβάτι"},
	{"Κρεββάτι", "Κρεβάτι"},
	{"εξ άλλου", "εξάλλου"},
	{"Εξ άλλου", "Εξάλλου"},
	{"εξ αιτίας", "εξαιτίας"},
	{"Εξ αιτίας", "Εξαιτίας"},
}

// SpellingReplacer scans raw text for outdated spellings. It is immutable
// after construction; one replacer is built per checker and reused across
// passes.
type SpellingReplacer struct {
	// Patterns in longest-first order so the scan is leftmost-longest:
	// ούϊ must win over όϊ wherever both could start a match.
	pairs [][2]string
}

// NewSpellingReplacer builds a replacer over the outdated spelling table.
func NewSpellingReplacer() SpellingReplacer {
	pairs := make([][2]string, len(outdatedSpellings))
	copy(pairs, outdatedSpellings)
	for i := 1; i < len(pairs); i++ {
		for j := i; j > 0 && len(pairs[j][0]) > len(pairs[j-1][0]); j-- {
			pairs[j], pairs[j-1] = pairs[j-1], pairs[j]
		}
	}
	return SpellingReplacer{pairs: pairs}
}

// Apply reports every non-overlapping outdated spelling in text.
func (sr SpellingReplacer) Apply(text string, diags *[]lint.Diagnostic) {
	for pos := 0; pos < len(text); {
		matched := false
		for _, pair := range sr.pairs {
			if strings.HasPrefix(text[pos:], pair[0]) {
				r := lint.NewRange(pos, pos+len(pair[0]))
				*diags = append(*diags, lint.Diagnostic{
					Kind:  rule.OutdatedSpelling,
					Range: r,
					Fix: &lint.Fix{
						Replacement: pair[1],
						Range:       r,
					},
				})
				pos += len(pair[0])
				matched = true
				break
			}
		}
		if !matched {
			pos++
		}
	}
}

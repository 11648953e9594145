package greek

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// ToMonotonic converts polytonic Greek text to the monotonic system:
// breathings and the iota subscript are dropped, the grave and the
// circumflex become an acute, and the dialytika is kept. Everything that
// is not a Greek diacritic passes through unchanged.
func ToMonotonic(text string) string {
	decomposed := norm.NFD.String(text)
	var b strings.Builder
	b.Grow(len(decomposed))

	lastWasAcute := false
	for _, r := range decomposed {
		switch r {
		case Smooth, Rough, IotaSub:
			continue
		case Grave, Circumflex, Acute:
			// Collapse stacked accents left behind by the mapping.
			if lastWasAcute {
				continue
			}
			b.WriteRune(Acute)
			lastWasAcute = true
			continue
		}
		b.WriteRune(r)
		lastWasAcute = false
	}

	return norm.NFC.String(b.String())
}

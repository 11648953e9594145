package rules

import (
	"github.com/samber/lo"

	"github.com/daxida/grs/internal/greek"
	"github.com/daxida/grs/internal/lint"
	"github.com/daxida/grs/internal/rule"
)

// https://el.wiktionary.org/wiki/τίς
var tisVariants = []string{
	"τις", "τινος", "τινι", "τινα", "τι", "τω",
	"τινες", "τινων", "τισι", "τισιν", "τινας", "τινε", "τινοιν",
}

// https://en.wiktionary.org/wiki/εἰμί#Ancient_Greek
var ancientEinai = []string{
	"εἰμι", "ἐστι", "ἐστιν", "εἰσι", "εἰσιν", "ἐσμεν", "ἐστε",
	// And their monotonic counterparts
	"ειμι", "εστι", "εστιν", "εισι", "εισιν", "εσμεν", "εστε",
}

// https://en.wiktionary.org/wiki/φημί#Ancient_Greek
// φατε may conflict with φάω.
var ancientLeo = []string{
	"φημι", "φασι", "φασιν", "φησι", "φησιν", "φαμεν", "φατε",
}

var pronounExpanded = []string{"τηνε", "τονε", "τωνε"}

var otherExtensions = []string{"ποτε", "που", "γε"}

// ancientUnaccented collects the words that legitimately carry no accent.
// Also consulted by MultisyllableNotAccented as an exception list.
var ancientUnaccented = lo.Flatten([][]string{
	tisVariants, ancientEinai, ancientLeo, pronounExpanded, otherExtensions,
})

var pronounVariants = []string{
	// Ancient pronouns
	"των", "τας", "τε", "μοι", "σοι",
	// Abbreviations: καπετάνισσά μ᾿
	"μ", "τ",
}

// The extension over the plain pronouns is intended to cover old Greek.
var allowedAfterDoubleAccent = lo.Flatten([][]string{
	pronounsLowercase, ancientUnaccented, pronounVariants,
})

// ForbiddenAccent reports two kinds of errors: an accent before the
// antepenult, and a double accent not followed by a pronoun. Both need
// the same syllabification, which is the expensive part, so they live in
// one rule. Synizesis is forced to prevent false positives.
//
// Caveats for the first kind: words elongated for emphasis (τίιιποτα)
// and foreign names (Μπάουχαους).
//
// There is no fix for either: the intended accent cannot be guessed.
func ForbiddenAccent(tok *lint.Token, doc *lint.Doc, diags *[]lint.Diagnostic) {
	text := tok.Text()
	// Cheap discard: 12 bytes is about 6 Greek letters.
	if len(text) < 12 || !lo.EveryBy([]rune(text), greek.IsGreekLetter) {
		return
	}

	pos := greek.DiacriticPosMode(text, greek.Acute, greek.MergeEvery)

	bad := false
	if len(pos) > 0 && pos[len(pos)-1] > 3 {
		bad = true
	} else if len(pos) > 1 {
		// Compare against the first Greek word that follows.
		next := doc.NextGreekWord(tok)
		bad = next != nil && !lo.Contains(allowedAfterDoubleAccent, next.Text())
	}

	if bad {
		*diags = append(*diags, lint.Diagnostic{
			Kind:  rule.ForbiddenAccent,
			Range: tok.Range(),
			Fix:   nil,
		})
	}
}

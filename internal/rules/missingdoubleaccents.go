package rules

import (
	"strings"
	"unicode"

	"github.com/samber/lo"

	"github.com/daxida/grs/internal/greek"
	"github.com/daxida/grs/internal/lint"
	"github.com/daxida/grs/internal/rule"
)

// Does not include των or archaic versions like τας.
var pronounsLowercase = []string{
	"με", "σε", "τον", "την", "τη", "το", // Accusative Singular
	"μας", "σας", "τους", "τις", "τα", // Accusative Plural
	"μου", "σου", "του", "της", // Genitive Singular
}

// Punctuation that prevents a positive diagnostic on the second token.
// From \" onward they come from testing against the wikidump, and, even
// if rare, they make sense to keep.
var stokenAmbiguousInitialPunct = []string{
	"...", "…", "«", "\"", "“",
	"[", "]", "{", "}", "(", ")", "*", "<", "#", ":",
	"-", "~",
}

// Words that signify a separation strong enough to detect an error.
var stokenSeparatorWords = []string{
	// Conjunctions
	"και", "κι", "ή", "αλλά", "είτε", "ενώ", "όμως", "ωστόσο", "αφού",
	// Others
	"με", "όταν", "θα", "μήπως", "λοιπόν", "για",
}

// https://el.wiktionary.org/wiki/το
var seToCompounds = []string{
	"στου", "στης", "στον", "στη", "στην",
	"στο", "στων", "στους", "στις", "στα",
}

// Abbreviations which fulfill the role of an ellipsis: κ.τ.λ., κτλ, κτλ.
// Includes common typos like κ.λ.π. instead of κ.λπ. The final dot is
// absent because it tokenizes as trailing punctuation.
var ellipticAbbreviations = []string{
	"κ.τ.λ", "κτλ", "κ.λπ", "κ.λ.π", "κ.τ.ό", "κ.τ.ο", "κ.τ.ρ", "κ.τ.τ", "κ.ά", "κ.α",
}

// isProparoxytoneStrict reports whether word carries only an accent on
// the antepenultimate.
func isProparoxytoneStrict(word string) bool {
	pos := greek.DiacriticPos(word, greek.Acute)
	return len(pos) == 1 && pos[0] == 3
}

// lemmatize strips inflection noise so the syllabification logic can be
// used against the lemma instead of the word.
// Ex. lemmatize("παλιοκατσάριαν") == "κατσάρια"
func lemmatize(s string) string {
	return strings.TrimPrefix(strings.TrimRight(s, "ν"), "παλιο")
}

func missingDoubleAccentsDetect(tok *lint.Token, doc *lint.Doc) bool {
	// Discarded ideas:
	//
	// * σε + τον (or other acc. pronouns)
	// Ex.  σπρώχνοντας τον σε μια καρέγλα κοντά του.
	// CEx. χτύπησε τον σε σύγχυση εχθρό...

	// For an error to exist, the next token must be a pronoun.
	ntoken := doc.NextNotWhitespace(tok)
	if ntoken == nil || ntoken.IsPunctuation() || !lo.Contains(pronounsLowercase, ntoken.Text()) {
		return false
	}

	if lo.Contains(greek.MultiplePronunciation, tok.Text()) ||
		// We do not deal with diminutives at the moment.
		strings.HasSuffix(tok.Text(), "άκια") ||
		strings.HasSuffix(tok.Text(), "ούλια") {
		return false
	}

	nntoken := doc.NextNotWhitespace(ntoken)
	if nntoken == nil {
		return false
	}

	if nntoken.IsPunctuation() {
		first, ok := firstRune(nntoken.Text())
		if !ok {
			return false
		}
		// The token must not start with an ellipsis, quotation marks etc.
		// But a period, a comma, a question mark should indicate an error.
		// Numbers too should be ignored: "ανακαλύφθηκε το 1966" is correct.
		return !lo.SomeBy(stokenAmbiguousInitialPunct, func(p string) bool {
			return strings.HasPrefix(nntoken.Text(), p)
		}) && !greek.IsApostrophe(first) && !unicode.IsNumber(first)
	}

	if lo.Contains(stokenSeparatorWords, nntoken.Text()) ||
		// > επιφυλακτικότητα της της στερούσε
		ntoken.Text() == nntoken.Text() ||
		lo.Contains(seToCompounds, nntoken.Text()) ||
		lo.Contains(ellipticAbbreviations, nntoken.Text()) {
		return true
	}

	// Case να. Ex. Άφησε τον να βρει μόνος του...
	// The only two pronouns that introduce ambiguity are το & του.
	return nntoken.Text() == "να" && ntoken.Text() != "το" && ntoken.Text() != "του"
}

// MissingDoubleAccents reports proparoxytones that should carry a second
// accent before a following pronoun.
//
// While rare enough, the current logic contains false positives. Ex:
// * και το κτήριο του, παλαιού πλέον, Μουσείου Ακρόπολης
func MissingDoubleAccents(tok *lint.Token, doc *lint.Doc, diags *[]lint.Diagnostic) {
	// The proparoxytone test is the most expensive part, so it runs last.
	if missingDoubleAccentsDetect(tok, doc) && isProparoxytoneStrict(lemmatize(tok.Text())) {
		*diags = append(*diags, lint.Diagnostic{
			Kind:  rule.MissingDoubleAccents,
			Range: tok.Range(),
			Fix: &lint.Fix{
				Replacement: greek.AddAcuteAt(tok.Text(), 1),
				Range:       tok.Range(),
			},
		})
	}
}

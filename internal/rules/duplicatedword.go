package rules

import (
	"github.com/samber/lo"

	"github.com/daxida/grs/internal/lint"
	"github.com/daxida/grs/internal/rule"
)

// NOTE: Will not detect duplication of different casing. Ex. Πρώτα πρώτα

// Based on common expressions.
var duplicatedWordExceptions = []string{
	"κάτω", "γύρω", "μπροστά", "πλάι", "πέρα", "πάνω",
	"λίγο", "λίγα", "πολύ", "πάρα",
	"καλά",
	"πρώτα", "πρώτη", "πρώτης", "πρώτον", "πρώτοι",
	"ίσως",
	"πότε",
	"κάπου", "όπως",
	"πρωί", "βράδυ", "νωρίς",
	"γρήγορα", "σιγά", "αργά", "χονδρά",
	"ίσα",
	"ένα", "έναν", "ένας", "μια", "δυο", "τρία", "πενήντα",
	"κούτσα",
	"άκρη",
	"λογής",
	"αγάλι",
	"τσίμα",
}

func duplicatedWordPair(tok *lint.Token, doc *lint.Doc) *lint.Token {
	// Ignore one-letter duplications (cf. s p a c i n g), which also
	// covers the intentionally repeated pronouns:
	// η μητέρα του του 'μεινε. The pronouns are excluded wholesale to
	// not open that can of worms.
	// https://www.babiniotis.gr/lexilogika/leksilogika/leitourgikos-tonismos-sto-monotoniko/
	if len(tok.Text()) < 3 ||
		lo.Contains(duplicatedWordExceptions, tok.Text()) ||
		lo.Contains(pronounsLowercase, tok.Text()) {
		return nil
	}

	next := doc.NextNotWhitespace(tok)
	if next != nil && next.Text() == tok.Text() {
		return next
	}
	return nil
}

// DuplicatedWord reports a word immediately repeating itself and proposes
// collapsing the pair to a single occurrence. Removing the duplicate is
// not always the intended correction ('— Τζωρτζ Τζωρτζ.' may want
// '— Τζωρτζ, Τζωρτζ!'), which is why the rule stays out of the defaults.
func DuplicatedWord(tok *lint.Token, doc *lint.Doc, diags *[]lint.Diagnostic) {
	next := duplicatedWordPair(tok, doc)
	if next == nil {
		return
	}
	r := lint.NewRange(tok.Range().Start(), next.Range().End())
	*diags = append(*diags, lint.Diagnostic{
		Kind:  rule.DuplicatedWord,
		Range: r,
		Fix: &lint.Fix{
			Replacement: tok.Text(),
			Range:       r,
		},
	})
}

// Package rules hosts the rule evaluators and the table binding an
// enabled rule set to them.
package rules

import (
	"github.com/daxida/grs/internal/lint"
	"github.com/daxida/grs/internal/rule"
)

// RawFunc evaluates a rule directly against the raw text.
type RawFunc func(text string, diags *[]lint.Diagnostic)

// TokenFunc evaluates a rule against one token of a tokenized document.
type TokenFunc func(tok *lint.Token, doc *lint.Doc, diags *[]lint.Diagnostic)

// Registry is the evaluator table for one enabled rule set. Raw evaluators
// run once against the text itself; Greek evaluators run on every
// GreekWord token and Word evaluators on every Word token.
type Registry struct {
	Raw   []RawFunc
	Greek []TokenFunc
	Word  []TokenFunc

	needsTokens bool
}

// New builds the evaluator table for the given rules. The table is built
// once per checker, which is also where per-rule state such as the
// spelling replacer gets allocated.
func New(enabled []rule.Rule) *Registry {
	reg := &Registry{}
	for _, r := range enabled {
		if r.RequiresTokenizing() {
			reg.needsTokens = true
		}
		switch r {
		case rule.MissingDoubleAccents:
			reg.Greek = append(reg.Greek, MissingDoubleAccents)
		case rule.MissingAccentCapital:
			reg.Greek = append(reg.Greek, MissingAccentCapital)
		case rule.DuplicatedWord:
			reg.Greek = append(reg.Greek, DuplicatedWord)
		case rule.AddFinalN:
			reg.Greek = append(reg.Greek, AddFinalN)
		case rule.RemoveFinalN:
			reg.Greek = append(reg.Greek, RemoveFinalN)
		case rule.OutdatedSpelling:
			reg.Raw = append(reg.Raw, NewSpellingReplacer().Apply)
		case rule.MonosyllableAccented:
			reg.Greek = append(reg.Greek, MonosyllableAccented)
		case rule.MultisyllableNotAccented:
			reg.Greek = append(reg.Greek, MultisyllableNotAccented)
		case rule.MixedScripts:
			reg.Word = append(reg.Word, MixedScripts)
		case rule.AmbiguousChar:
			reg.Raw = append(reg.Raw, AmbiguousChar)
		case rule.ForbiddenAccent:
			reg.Greek = append(reg.Greek, ForbiddenAccent)
		case rule.ForbiddenChar:
			reg.Raw = append(reg.Raw, ForbiddenChar)
		case rule.Punctuation:
			reg.Greek = append(reg.Greek, Punctuation)
		}
	}
	return reg
}

// RequiresTokenizing reports whether any bound rule needs a tokenized
// document.
func (r *Registry) RequiresTokenizing() bool { return r.needsTokens }

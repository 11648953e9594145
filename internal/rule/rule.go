// Package rule defines the closed set of checkable conditions and their
// static capabilities.
package rule

import "fmt"

// Rule identifies one checkable condition. The set is closed: every rule
// declares at compile time whether it can ever attach a fix and whether
// it needs a tokenized document.
type Rule uint8

const (
	MissingDoubleAccents Rule = iota
	MissingAccentCapital
	DuplicatedWord
	AddFinalN
	RemoveFinalN
	OutdatedSpelling
	MonosyllableAccented
	MultisyllableNotAccented
	MixedScripts
	AmbiguousChar
	ForbiddenAccent
	ForbiddenChar
	Punctuation

	numRules
)

// All returns every rule, in declaration order.
func All() []Rule {
	rules := make([]Rule, 0, numRules)
	for r := Rule(0); r < numRules; r++ {
		rules = append(rules, r)
	}
	return rules
}

// HasFix reports whether the rule can ever attach a fix to a diagnostic.
func (r Rule) HasFix() bool {
	switch r {
	case MultisyllableNotAccented, ForbiddenAccent, ForbiddenChar:
		return false
	}
	return true
}

// RequiresTokenizing reports whether the rule runs over tokens (true) or
// directly against the raw text (false).
func (r Rule) RequiresTokenizing() bool {
	switch r {
	case OutdatedSpelling, AmbiguousChar, ForbiddenChar:
		return false
	}
	return true
}

// Name returns the rule's long name, e.g. "MissingDoubleAccents".
func (r Rule) Name() string {
	switch r {
	case MissingDoubleAccents:
		return "MissingDoubleAccents"
	case MissingAccentCapital:
		return "MissingAccentCapital"
	case DuplicatedWord:
		return "DuplicatedWord"
	case AddFinalN:
		return "AddFinalN"
	case RemoveFinalN:
		return "RemoveFinalN"
	case OutdatedSpelling:
		return "OutdatedSpelling"
	case MonosyllableAccented:
		return "MonosyllableAccented"
	case MultisyllableNotAccented:
		return "MultisyllableNotAccented"
	case MixedScripts:
		return "MixedScripts"
	case AmbiguousChar:
		return "AmbiguousChar"
	case ForbiddenAccent:
		return "ForbiddenAccent"
	case ForbiddenChar:
		return "ForbiddenChar"
	case Punctuation:
		return "Punctuation"
	}
	return fmt.Sprintf("Rule(%d)", uint8(r))
}

// Code returns the rule's short code, the uppercase letters of its name:
// MissingDoubleAccents => MDA.
func (r Rule) Code() string {
	code := make([]byte, 0, 3)
	for _, c := range r.Name() {
		if c >= 'A' && c <= 'Z' {
			code = append(code, byte(c))
		}
	}
	return string(code)
}

// String returns the rule's short code.
func (r Rule) String() string { return r.Code() }

// Parse returns the rule with the given short code.
func Parse(code string) (Rule, error) {
	for _, r := range All() {
		if r.Code() == code {
			return r, nil
		}
	}
	return 0, fmt.Errorf("unknown rule code: %q", code)
}

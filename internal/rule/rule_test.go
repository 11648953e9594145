package rule

import "testing"

func TestCodes(t *testing.T) {
	tests := []struct {
		rule Rule
		name string
		code string
	}{
		{MissingDoubleAccents, "MissingDoubleAccents", "MDA"},
		{MissingAccentCapital, "MissingAccentCapital", "MAC"},
		{DuplicatedWord, "DuplicatedWord", "DW"},
		{AddFinalN, "AddFinalN", "AFN"},
		{RemoveFinalN, "RemoveFinalN", "RFN"},
		{OutdatedSpelling, "OutdatedSpelling", "OS"},
		{MonosyllableAccented, "MonosyllableAccented", "MA"},
		{MultisyllableNotAccented, "MultisyllableNotAccented", "MNA"},
		{MixedScripts, "MixedScripts", "MS"},
		{AmbiguousChar, "AmbiguousChar", "AC"},
		{ForbiddenAccent, "ForbiddenAccent", "FA"},
		{ForbiddenChar, "ForbiddenChar", "FC"},
		{Punctuation, "Punctuation", "P"},
	}
	for _, tt := range tests {
		if got := tt.rule.Name(); got != tt.name {
			t.Errorf("Name() = %q, want %q", got, tt.name)
		}
		if got := tt.rule.Code(); got != tt.code {
			t.Errorf("Code(%s) = %q, want %q", tt.name, got, tt.code)
		}
		parsed, err := Parse(tt.code)
		if err != nil {
			t.Errorf("Parse(%q): %v", tt.code, err)
		} else if parsed != tt.rule {
			t.Errorf("Parse(%q) = %v, want %v", tt.code, parsed, tt.rule)
		}
	}
}

func TestParseUnknown(t *testing.T) {
	if _, err := Parse("ZZZ"); err == nil {
		t.Error("expected error for unknown code")
	}
}

func TestCodesAreUnique(t *testing.T) {
	seen := make(map[string]Rule)
	for _, r := range All() {
		if other, ok := seen[r.Code()]; ok {
			t.Errorf("code %q shared by %s and %s", r.Code(), other.Name(), r.Name())
		}
		seen[r.Code()] = r
	}
}

func TestCapabilities(t *testing.T) {
	for _, r := range []Rule{MultisyllableNotAccented, ForbiddenAccent, ForbiddenChar} {
		if r.HasFix() {
			t.Errorf("%s should not have a fix", r.Name())
		}
	}
	for _, r := range []Rule{MissingDoubleAccents, DuplicatedWord, OutdatedSpelling, Punctuation} {
		if !r.HasFix() {
			t.Errorf("%s should have a fix", r.Name())
		}
	}
	for _, r := range []Rule{OutdatedSpelling, AmbiguousChar, ForbiddenChar} {
		if r.RequiresTokenizing() {
			t.Errorf("%s should not require tokenizing", r.Name())
		}
	}
	if !MissingDoubleAccents.RequiresTokenizing() {
		t.Error("MissingDoubleAccents should require tokenizing")
	}
}

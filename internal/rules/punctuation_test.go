package rules

import (
	"testing"
)

func TestPunctuation(t *testing.T) {
	cases := []struct {
		name string
		text string
		want string // expected replacement, empty for no diagnostic
	}{
		{"ni", "για ν'αναπτυχθεί", "ν' αναπτυχθεί"},
		{"sigma", "αναφέρεται σ'αυτόν ως", "σ' αυτόν"},
		{"oud_capitalized", "Ουδ'η γης", "Ουδ' η"},
		{"koronis", "κ᾿εκρύπτετο", "κ᾿ εκρύπτετο"},
		{"spaced", "παρόμοιο μ' αυτό.", ""},
		{"other_prefix", "δ'αυτό", ""},
		{"no_apostrophe", "και τότε", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			diags := greekDiags(Punctuation, tc.text)
			if tc.want == "" {
				if len(diags) != 0 {
					t.Fatalf("%q: expected no diagnostics, got %+v", tc.text, diags)
				}
				return
			}
			if len(diags) != 1 {
				t.Fatalf("%q: expected 1 diagnostic, got %d", tc.text, len(diags))
			}
			if diags[0].Fix == nil || diags[0].Fix.Replacement != tc.want {
				t.Errorf("expected fix %q, got %+v", tc.want, diags[0].Fix)
			}
		})
	}
}

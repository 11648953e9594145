package rules

import (
	"testing"
)

func TestMixedScripts(t *testing.T) {
	cases := []struct {
		name string
		text string
		want string // expected replacement, empty for no diagnostic
	}{
		{"latin_o", "νέo", "νέο"},
		{"latin_accented", "Áλλα", "Άλλα"},
		{"latin_capital", "AΒΓ", "ΑΒΓ"},
		{"all_latin", "apple", ""},
		{"unmapped_latin", "Ελλάδαw", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			diags := wordDiags(MixedScripts, tc.text)
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

func TestMixedScriptsSkipsPureGreek(t *testing.T) {
	// A pure Greek word tokenizes as GreekWord, which the rule never sees.
	if diags := wordDiags(MixedScripts, "νέο"); len(diags) != 0 {
		t.Fatalf("expected no diagnostics, got %+v", diags)
	}
}

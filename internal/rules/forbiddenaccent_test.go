package rules

import (
	"testing"
)

func TestForbiddenAccent(t *testing.T) {
	cases := []struct {
		name string
		text string
		want int
	}{
		{"before_antepenult", "πρόγραμματισμός", 1},
		{"double_before_noun", "ο άνθρωπός πήγε σπίτι", 1},
		{"double_before_pronoun", "ο άνθρωπός του", 0},
		{"double_before_ancient", "ο φίλτατός τε καί", 0},
		{"single_antepenult", "αυτοκινητόδρομος", 0},
		{"single", "ανακάλυψαν κάτι", 0},
		{"short_word", "λέξη", 0},
		{"double_alone", "άνθρωπός", 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			diags := greekDiags(ForbiddenAccent, tc.text)
			if len(diags) != tc.want {
				t.Fatalf("%q: expected %d diagnostics, got %d: %+v",
					tc.text, tc.want, len(diags), diags)
			}
		})
	}
}

func TestForbiddenAccentHasNoFix(t *testing.T) {
	diags := greekDiags(ForbiddenAccent, "πρόγραμματισμός")
	if len(diags) != 1 {
		t.Fatalf("expected 1 diagnostic, got %d", len(diags))
	}
	if diags[0].Fix != nil {
		t.Errorf("expected no fix, got %+v", diags[0].Fix)
	}
}

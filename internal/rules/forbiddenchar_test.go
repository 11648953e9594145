package rules

import (
	"testing"
)

func TestForbiddenChar(t *testing.T) {
	diags := rawDiags(ForbiddenChar, "πιςτεύοντας")
	if len(diags) != 1 {
		t.Fatalf("expected 1 diagnostic, got %d: %+v", len(diags), diags)
	}
	d := diags[0]
	start := len("πι")
	if d.Range.Start() != start || d.Range.End() != start+len("ς") {
		t.Errorf("unexpected range %s", d.Range)
	}
	if d.Fix != nil {
		t.Errorf("expected no fix, got %+v", d.Fix)
	}
}

func TestForbiddenCharMissingSpace(t *testing.T) {
	if diags := rawDiags(ForbiddenChar, "πιστεύονταςτην"); len(diags) != 1 {
		t.Fatalf("expected 1 diagnostic, got %+v", diags)
	}
}

func TestForbiddenCharValid(t *testing.T) {
	for _, text := range []string{"πιστεύοντας", "ως και", "καλώς"} {
		if diags := rawDiags(ForbiddenChar, text); len(diags) != 0 {
			t.Errorf("%q: expected no diagnostics, got %+v", text, diags)
		}
	}
}

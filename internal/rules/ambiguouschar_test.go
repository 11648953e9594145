package rules

import (
	"testing"
)

func TestAmbiguousChar(t *testing.T) {
	// µ is the micro sign, not the Greek letter.
	diags := rawDiags(AmbiguousChar, "µμ")
	if len(diags) != 1 {
		t.Fatalf("expected 1 diagnostic, got %d: %+v", len(diags), diags)
	}
	d := diags[0]
	if d.Range.Start() != 0 || d.Range.End() != len("µ") {
		t.Errorf("unexpected range %s", d.Range)
	}
	if d.Fix == nil || d.Fix.Replacement != "μ" {
		t.Errorf("expected fix μ, got %+v", d.Fix)
	}
}

func TestAmbiguousCharFirstOccurrenceOnly(t *testing.T) {
	// Later occurrences surface on subsequent fixing passes.
	diags := rawDiags(AmbiguousChar, "µε το µάτι")
	if len(diags) != 1 {
		t.Fatalf("expected 1 diagnostic, got %d: %+v", len(diags), diags)
	}
}

func TestAmbiguousCharClean(t *testing.T) {
	if diags := rawDiags(AmbiguousChar, "με το μάτι"); len(diags) != 0 {
		t.Fatalf("expected no diagnostics, got %+v", diags)
	}
}

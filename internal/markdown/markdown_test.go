package markdown

import (
	"testing"

	"github.com/daxida/grs/internal/engine"
	"github.com/daxida/grs/internal/rule"
)

func TestSegmentsMergesAcrossWhitespace(t *testing.T) {
	source := []byte("# Τίτλος\n\nπρώτη γραμμή\nδεύτερη γραμμή\n")
	segments := Segments(source)
	if len(segments) != 1 {
		t.Fatalf("expected 1 segment, got %d: %+v", len(segments), segments)
	}
	seg := segments[0]
	if seg.Start != len("# ") {
		t.Errorf("expected start %d, got %d", len("# "), seg.Start)
	}
	want := "Τίτλος\n\nπρώτη γραμμή\nδεύτερη γραμμή"
	if seg.Text != want {
		t.Errorf("expected %q, got %q", want, seg.Text)
	}
}

func TestSegmentsSkipCodeSpan(t *testing.T) {
	source := []byte("μέλ `μέλ` μέλ\n")
	segments := Segments(source)
	if len(segments) != 2 {
		t.Fatalf("expected 2 segments, got %d: %+v", len(segments), segments)
	}
	if segments[0].Start != 0 || segments[0].Text != "μέλ " {
		t.Errorf("unexpected first segment %+v", segments[0])
	}
	if segments[1].Text != " μέλ" {
		t.Errorf("unexpected second segment %+v", segments[1])
	}
}

func TestSegmentsSkipFencedCode(t *testing.T) {
	source := []byte("μέλ\n\n```\nμέλ\n```\n")
	segments := Segments(source)
	if len(segments) != 1 {
		t.Fatalf("expected 1 segment, got %d: %+v", len(segments), segments)
	}
	if segments[0].Text != "μέλ" {
		t.Errorf("unexpected segment %+v", segments[0])
	}
}

func TestCheckShiftsRanges(t *testing.T) {
	source := []byte("# Τίτλος\n\nμέλ και\n")
	c := engine.NewChecker([]rule.Rule{rule.MonosyllableAccented})
	diags := Check(c, source)
	if len(diags) != 1 {
		t.Fatalf("expected 1 diagnostic, got %d: %+v", len(diags), diags)
	}
	d := diags[0]
	start := len("# Τίτλος\n\n")
	if d.Range.Start() != start || d.Range.End() != start+len("μέλ") {
		t.Errorf("unexpected range %s", d.Range)
	}
	if d.Fix == nil || d.Fix.Range.Start() != start {
		t.Errorf("fix range not shifted: %+v", d.Fix)
	}
	if string(source[d.Range.Start():d.Range.End()]) != "μέλ" {
		t.Error("range does not point at the flagged word in the source")
	}
}

func TestFixPreservesMarkup(t *testing.T) {
	source := []byte("μέλ `μέλ` μέλ\n")
	f := engine.NewFixer([]rule.Rule{rule.MonosyllableAccented}, nil)
	fixed, counts, aborted := Fix(f, source)
	if fixed != "μελ `μέλ` μελ\n" {
		t.Errorf("expected %q, got %q", "μελ `μέλ` μελ\n", fixed)
	}
	if counts[rule.MonosyllableAccented] != 2 {
		t.Errorf("expected 2 fixes, got %d", counts[rule.MonosyllableAccented])
	}
	if aborted {
		t.Error("unexpected abort")
	}
}

func TestFixLeavesFencedCode(t *testing.T) {
	source := []byte("μέλ\n\n```\nμέλ\n```\n")
	f := engine.NewFixer([]rule.Rule{rule.MonosyllableAccented}, nil)
	fixed, _, _ := Fix(f, source)
	if fixed != "μελ\n\n```\nμέλ\n```\n" {
		t.Errorf("expected the code block untouched, got %q", fixed)
	}
}

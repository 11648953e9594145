package lint

import (
	"testing"
)

func TestRange(t *testing.T) {
	r := NewRange(2, 5)
	if r.Start() != 2 || r.End() != 5 || r.Len() != 3 || r.Empty() {
		t.Errorf("unexpected range %s", r)
	}
	if s := r.Shift(10); s.Start() != 12 || s.End() != 15 {
		t.Errorf("unexpected shifted range %s", s)
	}
	if !NewRange(4, 4).Empty() {
		t.Error("expected an empty range")
	}
	if r.String() != "2..5" {
		t.Errorf("unexpected string %q", r.String())
	}
}

func TestRangeInvalidPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected a panic for end < start")
		}
	}()
	NewRange(5, 2)
}

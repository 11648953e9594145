package config

import (
	"reflect"
	"testing"

	"github.com/daxida/grs/internal/rule"
)

func TestParseSelectors(t *testing.T) {
	got, err := ParseSelectors([]string{"MDA", "MA"})
	if err != nil {
		t.Fatal(err)
	}
	want := []rule.Rule{rule.MissingDoubleAccents, rule.MonosyllableAccented}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestParseSelectorsAll(t *testing.T) {
	got, err := ParseSelectors([]string{"ALL"})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != len(rule.All()) {
		t.Errorf("expected %d rules, got %d", len(rule.All()), len(got))
	}
}

func TestParseSelectorsDeduplicates(t *testing.T) {
	got, err := ParseSelectors([]string{"MA", "ALL", "MA"})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != len(rule.All()) {
		t.Errorf("expected %d rules, got %d: %v", len(rule.All()), len(got), got)
	}
}

func TestParseSelectorsUnknown(t *testing.T) {
	if _, err := ParseSelectors([]string{"NOPE"}); err == nil {
		t.Error("expected an error for an unknown code")
	}
}

func TestResolveDefaults(t *testing.T) {
	got, err := Resolve(nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, DefaultRules()) {
		t.Errorf("expected the defaults, got %v", got)
	}
}

func TestResolveSelectReplacesDefaults(t *testing.T) {
	got, err := Resolve([]string{"DW"}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, []rule.Rule{rule.DuplicatedWord}) {
		t.Errorf("expected only DW, got %v", got)
	}
}

func TestResolveIgnore(t *testing.T) {
	got, err := Resolve(nil, []string{"MA"})
	if err != nil {
		t.Fatal(err)
	}
	for _, r := range got {
		if r == rule.MonosyllableAccented {
			t.Errorf("MA should have been ignored: %v", got)
		}
	}
	if len(got) != len(DefaultRules())-1 {
		t.Errorf("expected %d rules, got %v", len(DefaultRules())-1, got)
	}
}

func TestResolveIgnoreUnselected(t *testing.T) {
	// Ignoring a rule that was never selected is not an error.
	got, err := Resolve([]string{"MA"}, []string{"DW"})
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, []rule.Rule{rule.MonosyllableAccented}) {
		t.Errorf("expected only MA, got %v", got)
	}
}

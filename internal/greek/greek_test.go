package greek

import (
	"reflect"
	"testing"
)

func TestSplitPunctuation(t *testing.T) {
	tests := []struct {
		in                   string
		lpunct, word, rpunct string
	}{
		{"λέξη", "", "λέξη", ""},
		{";?λέξη...", ";?", "λέξη", "..."},
		{"σ'αυτόν", "", "σ'αυτόν", ""},
		{"2ος", "2", "ος", ""},
		{"«ξεκρέμασε", "«", "ξεκρέμασε", ""},
		{"...", "...", "", ""},
		{"του|-πουλος", "", "του|-πουλος", ""},
	}
	for _, tt := range tests {
		l, w, r := SplitPunctuation(tt.in)
		if l != tt.lpunct || w != tt.word || r != tt.rpunct {
			t.Errorf("SplitPunctuation(%q) = (%q, %q, %q), want (%q, %q, %q)",
				tt.in, l, w, r, tt.lpunct, tt.word, tt.rpunct)
		}
	}
}

func TestIsGreekWord(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"Καλημέρα", true},
		{"σ'αυτόν", true},
		{"ἄρ", true}, // polytonic
		{"νέo", false},
		{"hello", false},
		{"του|-πουλος", false},
		{"'", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := IsGreekWord(tt.in); got != tt.want {
			t.Errorf("IsGreekWord(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestIsCapitalized(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"Ηταν", true},
		{"ηταν", false},
		{"ΗΤΑΝ", false},
		{"Ή", true},
		{"", false},
	}
	for _, tt := range tests {
		if got := IsCapitalized(tt.in); got != tt.want {
			t.Errorf("IsCapitalized(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestSyllabify(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"καλημέρα", []string{"κα", "λη", "μέ", "ρα"}},
		{"άνθρωπος", []string{"άν", "θρω", "πος"}},
		{"μέλ", []string{"μέλ"}},
		{"ναι", []string{"ναι"}},
		{"είς", []string{"είς"}},
		{"Ηταν", []string{"Η", "ταν"}},
		// Accent on the first vowel breaks the digraph.
		{"γάιδαρος", []string{"γά", "ι", "δα", "ρος"}},
		// Dialytika breaks the digraph.
		{"γαϊδούρα", []string{"γα", "ϊ", "δού", "ρα"}},
	}
	for _, tt := range tests {
		if got := Syllabify(tt.in); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Syllabify(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestSyllabifyModeSynizesis(t *testing.T) {
	if got := Syllabify("δια"); len(got) != 2 {
		t.Errorf("Syllabify(δια) = %v, want 2 syllables", got)
	}
	if got := SyllabifyMode("δια", MergeEvery); len(got) != 1 {
		t.Errorf("SyllabifyMode(δια, MergeEvery) = %v, want 1 syllable", got)
	}
}

func TestDiacriticPos(t *testing.T) {
	tests := []struct {
		in   string
		want []int
	}{
		{"άνθρωπος", []int{3}},
		{"καλός", []int{1}},
		{"καλημέρα", []int{2}},
		{"πρόσωπό", []int{1, 3}},
		{"καλημερα", nil},
	}
	for _, tt := range tests {
		if got := DiacriticPos(tt.in, Acute); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("DiacriticPos(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestAddAcuteAt(t *testing.T) {
	tests := []struct {
		in   string
		n    int
		want string
	}{
		{"άνθρωπος", 1, "άνθρωπός"},
		{"Ηταν", 2, "Ήταν"},
		{"καλημερα", 4, "κάλημερα"},
		// Accent lands on the second letter of a digraph.
		{"ουρανος", 3, "ούρανος"},
		{"μέλ", 5, "μέλ"}, // out of range
	}
	for _, tt := range tests {
		if got := AddAcuteAt(tt.in, tt.n); got != tt.want {
			t.Errorf("AddAcuteAt(%q, %d) = %q, want %q", tt.in, tt.n, got, tt.want)
		}
	}
}

func TestRemoveDiacriticAt(t *testing.T) {
	tests := []struct {
		in   string
		n    int
		want string
	}{
		{"μέλ", 1, "μελ"},
		{"Ώς", 1, "Ως"},
		{"καλημέρα", 2, "καλημερα"},
	}
	for _, tt := range tests {
		if got := RemoveDiacriticAt(tt.in, tt.n, Acute); got != tt.want {
			t.Errorf("RemoveDiacriticAt(%q, %d) = %q, want %q", tt.in, tt.n, got, tt.want)
		}
	}
}

func TestEndsWithDiphthong(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"πλάι", true},
		{"ναι", true},
		{"καλά", false},
		{"γαϊ", false}, // dialytika
		{"α", false},
	}
	for _, tt := range tests {
		if got := EndsWithDiphthong(tt.in); got != tt.want {
			t.Errorf("EndsWithDiphthong(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestHasDiacritic(t *testing.T) {
	if !HasDiacritic("μέλ", Acute) {
		t.Error("expected acute on μέλ")
	}
	if HasDiacritic("μελ", Acute) {
		t.Error("unexpected acute on μελ")
	}
	if !HasDiacritic("τῆς", Circumflex) {
		t.Error("expected circumflex on τῆς")
	}
	if !HasAnyDiacritic("ϊ") {
		t.Error("expected dialytika to count as a diacritic")
	}
}

func TestToMonotonic(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"ἄρα", "άρα"},
		{"τῆς", "τής"},
		{"καὶ", "καί"},
		{"ᾠδὴ", "ωδή"},
		{"ήδη μονοτονικό", "ήδη μονοτονικό"},
		{"Hello", "Hello"},
	}
	for _, tt := range tests {
		if got := ToMonotonic(tt.in); got != tt.want {
			t.Errorf("ToMonotonic(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

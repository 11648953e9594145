package lint

import (
	"github.com/daxida/grs/internal/greek"
)

// TokenKind is the 4-way token classification.
type TokenKind uint8

const (
	// Whitespace is a maximal run of Unicode whitespace.
	Whitespace TokenKind = iota

	// Word is a word that is not entirely Greek.
	Word

	// GreekWord is a word made of Greek letters (apostrophes allowed).
	GreekWord

	// Punctuation is a run with no letter, or the non-letter edge of a
	// word run. Digits count as punctuation.
	Punctuation
)

func (k TokenKind) String() string {
	switch k {
	case Whitespace:
		return "Whitespace"
	case Word:
		return "Word"
	case GreekWord:
		return "GreekWord"
	case Punctuation:
		return "Punctuation"
	}
	return "Unknown"
}

// Token is a classified, byte-ranged span of the source text.
type Token struct {
	index  int
	text   string
	offset int
	kind   TokenKind
}

// Index returns the token's position in the Doc sequence.
func (t *Token) Index() int { return t.index }

// Text returns the token's text, a slice of the source.
func (t *Token) Text() string { return t.text }

// Kind returns the token's classification.
func (t *Token) Kind() TokenKind { return t.kind }

// Range returns the byte range of the token in the source text.
func (t *Token) Range() TextRange {
	return NewRange(t.offset, t.offset+len(t.text))
}

// IsWhitespace reports whether the token is whitespace.
func (t *Token) IsWhitespace() bool { return t.kind == Whitespace }

// IsWord reports whether the token is a non-Greek word.
func (t *Token) IsWord() bool { return t.kind == Word }

// IsGreekWord reports whether the token is a Greek word.
func (t *Token) IsGreekWord() bool { return t.kind == GreekWord }

// IsPunctuation reports whether the token is punctuation.
func (t *Token) IsPunctuation() bool { return t.kind == Punctuation }

// NumSyllables returns the syllable count of the token text. This is
// expensive; rules should discard cheap cases first.
func (t *Token) NumSyllables() int {
	return greek.CountSyllables(t.text)
}

// isNum reports whether the token is a digit-only punctuation token.
func (t *Token) isNum() bool {
	if !t.IsPunctuation() || t.text == "" {
		return false
	}
	for _, r := range t.text {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// isApostrophe reports whether the token is punctuation starting with an
// apostrophe-class character.
func (t *Token) isApostrophe() bool {
	if !t.IsPunctuation() {
		return false
	}
	for _, r := range t.text {
		return greek.IsApostrophe(r)
	}
	return false
}

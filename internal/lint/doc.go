package lint

import (
	"strings"

	"github.com/daxida/grs/internal/greek"
)

// Doc is the ordered token sequence derived from one text snapshot. It is
// built fresh per check and discarded afterwards.
type Doc struct {
	src    string
	tokens []Token
}

// Source returns the text the Doc was built from.
func (d *Doc) Source() string { return d.src }

// Len returns the number of tokens.
func (d *Doc) Len() int { return len(d.tokens) }

// Tokens returns the token sequence.
func (d *Doc) Tokens() []Token { return d.tokens }

// Get returns the token at index i, or nil when out of bounds.
func (d *Doc) Get(i int) *Token {
	if i < 0 || i >= len(d.tokens) {
		return nil
	}
	return &d.tokens[i]
}

// NextNotWhitespace returns the nearest following token that is not
// whitespace, or nil at the end of the sequence.
func (d *Doc) NextNotWhitespace(t *Token) *Token {
	for i := t.index + 1; i < len(d.tokens); i++ {
		if !d.tokens[i].IsWhitespace() {
			return &d.tokens[i]
		}
	}
	return nil
}

// PrevNotWhitespace returns the nearest preceding token that is not
// whitespace, or nil at the start of the sequence.
func (d *Doc) PrevNotWhitespace(t *Token) *Token {
	for i := t.index - 1; i >= 0; i-- {
		if !d.tokens[i].IsWhitespace() {
			return &d.tokens[i]
		}
	}
	return nil
}

// NextGreekWord returns the nearest following GreekWord token, skipping
// everything else, or nil when none remains.
func (d *Doc) NextGreekWord(t *Token) *Token {
	for i := t.index + 1; i < len(d.tokens); i++ {
		if d.tokens[i].IsGreekWord() {
			return &d.tokens[i]
		}
	}
	return nil
}

// IsAbbreviationOrEndsWithDot reports whether the token immediately
// following t (no intervening whitespace) is punctuation starting with a
// period, an ellipsis, or an apostrophe. όλ' αυτά is an abbreviation;
// όλ ' αυτά is not.
//
// A dot must be treated like a black box: there is no way to tell a
// period from an ellipsis or an abbreviation dot. Checking whether the
// next word is capitalized is not a solution, since an abbreviation might
// be followed by a proper noun. Ex. Λεωφ. Κηφισού.
func (d *Doc) IsAbbreviationOrEndsWithDot(t *Token) bool {
	next := d.Get(t.index + 1)
	if next == nil || !next.IsPunctuation() {
		return false
	}
	for _, r := range next.text {
		return r == '.' || r == '…' || greek.IsApostrophe(r)
	}
	return false
}

// PrevTokenIsNum reports whether the token immediately preceding t is a
// digit-only punctuation token, as in 20ού.
func (d *Doc) PrevTokenIsNum(t *Token) bool {
	prev := d.Get(t.index - 1)
	return prev != nil && prev.isNum()
}

// PrevTokenIsApostrophe reports whether the nearest preceding non-
// whitespace token is an apostrophe, as in να ’λεγε.
func (d *Doc) PrevTokenIsApostrophe(t *Token) bool {
	prev := d.PrevNotWhitespace(t)
	return prev != nil && prev.isApostrophe()
}

// Context stringifies the tokens around t for debug output. Newlines are
// replaced so the context stays on one line.
func (d *Doc) Context(t *Token) string {
	const around = 7

	start := t.index - around
	if start < 0 {
		start = 0
	}
	end := t.index + around
	if end > len(d.tokens)-1 {
		end = len(d.tokens) - 1
	}

	var b strings.Builder
	for i := start; i <= end; i++ {
		b.WriteString(d.tokens[i].text)
	}
	return strings.ReplaceAll(b.String(), "\n", "⏎")
}

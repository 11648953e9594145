package lint

import (
	"unicode"
	"unicode/utf8"

	"github.com/daxida/grs/internal/greek"
)

// Tokenize builds a Doc from text. The tokens are contiguous,
// non-overlapping, and exactly partition [0, len(text)): concatenating
// their texts in order reproduces text. It is total over valid UTF-8.
//
// The text is scanned as alternating maximal runs of whitespace and
// non-whitespace. A whitespace run becomes one Whitespace token. A
// non-whitespace run splits into a leading punctuation prefix, a central
// word from the first to the last letter, and a trailing punctuation
// suffix; the word is a GreekWord when it reads as Greek. A run with no
// letter at all becomes a single Punctuation token.
func Tokenize(text string) *Doc {
	var tokens []Token
	index := 0

	push := func(chunk string, offset int, kind TokenKind) {
		tokens = append(tokens, Token{index: index, text: chunk, offset: offset, kind: kind})
		index++
	}

	for start := 0; start < len(text); {
		run, isSpace := nextRun(text[start:])
		end := start + len(run)

		if isSpace {
			push(run, start, Whitespace)
			start = end
			continue
		}

		lpunct, word, rpunct := greek.SplitPunctuation(run)

		if lpunct != "" {
			push(lpunct, start, Punctuation)
		}
		if word != "" {
			kind := Word
			if greek.IsGreekWord(word) {
				kind = GreekWord
			}
			push(word, start+len(lpunct), kind)
		}
		if rpunct != "" {
			push(rpunct, start+len(lpunct)+len(word), Punctuation)
		}

		start = end
	}

	return &Doc{src: text, tokens: tokens}
}

// nextRun returns the maximal leading run of s that is entirely
// whitespace or entirely non-whitespace.
func nextRun(s string) (run string, isSpace bool) {
	first, _ := utf8.DecodeRuneInString(s)
	isSpace = unicode.IsSpace(first)
	for i, r := range s {
		if unicode.IsSpace(r) != isSpace {
			return s[:i], isSpace
		}
	}
	return s, isSpace
}

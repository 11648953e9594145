// Package lint holds the document model: byte ranges, classified tokens,
// the tokenizer, and the diagnostics the rules produce.
package lint

import "fmt"

// TextRange is a half-open byte interval [Start, End) into one specific
// text snapshot. Ranges computed against different snapshots are never
// comparable; a range is only meaningful against the exact string it was
// derived from.
type TextRange struct {
	start int
	end   int
}

// NewRange builds a TextRange. A range with end < start is a contract
// violation from a broken rule, not bad input, so it panics.
func NewRange(start, end int) TextRange {
	if start > end {
		panic(fmt.Sprintf("lint: invalid range %d..%d", start, end))
	}
	return TextRange{start: start, end: end}
}

// Start returns the first byte of the range.
func (r TextRange) Start() int { return r.start }

// End returns the byte just past the range.
func (r TextRange) End() int { return r.end }

// Len returns the length of the range in bytes.
func (r TextRange) Len() int { return r.end - r.start }

// Empty reports whether the range covers no bytes.
func (r TextRange) Empty() bool { return r.start == r.end }

// Shift returns the range moved n bytes to the right.
func (r TextRange) Shift(n int) TextRange {
	return TextRange{start: r.start + n, end: r.end + n}
}

func (r TextRange) String() string {
	return fmt.Sprintf("%d..%d", r.start, r.end)
}
